package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a regular file or a directory
type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths are normalized to forward slashes; relative paths resolve against the root.
type MemoryFileSystem struct {
	mu          sync.Mutex
	root        string
	entries     map[string]*memoryEntry
	writeErrors map[string]error
}

// NewMemoryFileSystem creates a new in-memory filesystem whose root directory exists.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	mfs := &MemoryFileSystem{
		root:        path.Clean(filepath.ToSlash(root)),
		entries:     make(map[string]*memoryEntry),
		writeErrors: make(map[string]error),
	}
	mfs.mkdirAllLocked(mfs.root)
	return mfs
}

// AddFile adds a file, creating its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	mfs.mkdirAllLocked(path.Dir(abs))
	mfs.putFileLocked(abs, []byte(content))
}

// AddDir adds a directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.mkdirAllLocked(mfs.abs(dirPath))
}

// FailWrites makes every later WriteFile or MkdirAll on filePath return err.
func (mfs *MemoryFileSystem) FailWrites(filePath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.writeErrors[mfs.abs(filePath)] = err
}

// Files returns the paths of all regular files, sorted.
func (mfs *MemoryFileSystem) Files() []string {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	var files []string
	for p, e := range mfs.entries {
		if !e.info.isDir {
			files = append(files, p)
		}
	}
	sort.Strings(files)
	return files
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, ok := mfs.entries[mfs.abs(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrInvalid}
	}
	return append([]byte(nil), entry.content...), nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	entry, ok := mfs.entries[mfs.abs(statPath)]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(dirPath)
	if err, ok := mfs.writeErrors[abs]; ok {
		return &fs.PathError{Op: "mkdir", Path: dirPath, Err: err}
	}
	for p := abs; ; p = path.Dir(p) {
		if entry, ok := mfs.entries[p]; ok && !entry.info.isDir {
			return &fs.PathError{Op: "mkdir", Path: dirPath, Err: fs.ErrExist}
		}
		if p == path.Dir(p) {
			break
		}
	}
	mfs.mkdirAllLocked(abs)
	return nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	abs := mfs.abs(filePath)
	if err, ok := mfs.writeErrors[abs]; ok {
		return &fs.PathError{Op: "open", Path: filePath, Err: err}
	}
	parent, ok := mfs.entries[path.Dir(abs)]
	if !ok {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if !parent.info.isDir {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrInvalid}
	}
	if existing, ok := mfs.entries[abs]; ok && existing.info.isDir {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrInvalid}
	}
	mfs.putFileLocked(abs, append([]byte(nil), data...))
	return nil
}

func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if strings.HasPrefix(p, "/") {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) putFileLocked(abs string, content []byte) {
	mfs.entries[abs] = &memoryEntry{
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) mkdirAllLocked(abs string) {
	for p := abs; ; p = path.Dir(p) {
		if _, ok := mfs.entries[p]; ok {
			return
		}
		mfs.entries[p] = &memoryEntry{
			info: &memoryFileInfo{
				name:    path.Base(p),
				mode:    0755 | fs.ModeDir,
				modTime: time.Now(),
				isDir:   true,
			},
		}
		if p == path.Dir(p) || p == "." {
			return
		}
	}
}
