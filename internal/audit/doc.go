// Package audit drives the documentation inventory audit.
//
// It exposes CommandBuilder for wiring the audit Cobra command, Service for
// running the extract, list, collect, and render pipeline programmatically,
// ComputeAuditResult for the set diff and count engine, and the persisted
// configuration types including owner assignments.
package audit
