// Package types provides the service data structures shared by providers and
// the registry.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter description
//   - Context: Caller identity for a tool call
//   - Result: Standard operation result
package types
