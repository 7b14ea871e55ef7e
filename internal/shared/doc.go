// Package shared defines the data types and collaborator interfaces exchanged
// between the docaudit pipeline stages.
//
// Keeping OwnerMap, AuditResult, and the extractor, lister, collector, and
// renderer contracts here lets the concrete packages and their default
// resolvers depend on a single leaf package without import cycles.
package shared
