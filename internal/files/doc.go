// Package files groups file-related sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//
// # Usage
//
//	import "github.com/vvka-141/extdesc/internal/files/filesystem"
//
//	fs := filesystem.NewOSFileSystem()
//	data, err := fs.ReadFile("target/classes/META-INF/quarkus-extension.json")
package files
