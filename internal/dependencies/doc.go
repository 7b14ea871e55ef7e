// Package dependencies resolves default implementations for the audit
// pipeline collaborators, allowing command builders to accept injected test
// doubles without importing the concrete packages directly.
package dependencies
