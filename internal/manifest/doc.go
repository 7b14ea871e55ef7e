// Package manifest parses dependency declarations from the two recognized
// manifest formats, go.mod require lists and package.json dependency
// sections, and collects them across the repository tree.
package manifest
