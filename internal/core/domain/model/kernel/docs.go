// Package kernel provides the value objects shared by every catalog
// aggregate:
//   - UUID: record identifier that rejects the nil UUID
//   - Name: trimmed, length-checked label for names and texts
package kernel
