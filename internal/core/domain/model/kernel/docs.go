// Package kernel provides the shared value objects of the RushDrop domain model.
//
// The package includes:
//   - UUID: identifier of flow sessions, wrapping github.com/google/uuid
//   - Address: a validated, trimmed pickup or delivery address
//
// Values are immutable and built through constructors; the zero value of each
// type fails its Validate method.
package kernel
