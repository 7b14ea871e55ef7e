// Package report renders audit results as a fixed-structure markdown document
// and as a stable machine-readable JSON summary.
package report
