// Package driven defines the interfaces that core calls OUT to
// conversion backends.
//
// These are the "driven" or "secondary" ports in hexagonal
// architecture. Core services depend on these interfaces, and
// backend adapters implement them.
//
// All backend interfaces are optional: a nil field in Backends means
// the capability was not probed as present, and the conversion paths
// that need it either degrade to a heuristic or fail with
// domain.ErrBackendUnavailable.
//
// Import rules:
//   - Can Import: domain package only
//   - Cannot Import: any adapter or backend package
package driven
