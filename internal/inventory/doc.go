// Package inventory lists the files actually present beneath the audited
// target directories, producing repository-relative slash-separated paths.
package inventory
