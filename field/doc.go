// Package field defines the closed kind enumerations for protocol fields.
//
// Two vocabularies coexist and are deliberately independent:
//
//   - ScalarKind: the runtime's internal value categories used by generic
//     accessors (bool, the 32-bit family, the 64-bit family, message,
//     string, bytes).
//   - WireKind: the schema language's richer wire-format field types,
//     adding fixed/signed variants and groups.
//
// Both are one-based with zero as an invalid sentinel, and their orderings
// differ; code must never index one vocabulary with the other's ordinals.
package field
