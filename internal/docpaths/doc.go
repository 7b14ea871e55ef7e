// Package docpaths extracts documented file references from documentation text.
//
// Extractor matches repository paths of the form "<project prefix>/<segments>"
// and filters out bare references to the audited top-level directories.
package docpaths
