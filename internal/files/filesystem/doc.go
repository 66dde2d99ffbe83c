// Package filesystem provides the filesystem abstraction used by descriptor generation.
//
// FileSystemProvider covers the four operations a generation run needs: reading
// an existing descriptor, checking whether a path exists, creating output
// directories and writing generated files.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with injectable write failures
package filesystem
