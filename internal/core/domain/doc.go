// Package domain defines the core entities for sercha-remote.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Draft: A document being composed for indexing
//   - Snapshot: A consistent view of the interactive session state
//   - Notification: A user-visible outcome of an explicit action
//   - AppSettings: Remote service and timing configuration
//   - TransportError / ServiceError: The remote failure taxonomy
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
