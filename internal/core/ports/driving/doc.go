// Package driving defines the interfaces external actors use to
// drive the conversion core.
//
// These are the "driving" or "primary" ports in hexagonal
// architecture. The CLI and MCP adapters depend on these interfaces,
// and core services implement them.
package driving
