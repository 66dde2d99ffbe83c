package services

import (
	"fmt"
	"path/filepath"

	"github.com/vvka-141/extdesc/internal/descriptor"
	"github.com/vvka-141/extdesc/internal/files/filesystem"
	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// LegacySink receives the migrated descriptor before defaults are applied.
// It exists for builds that still read the descriptor from the resources
// directory and is expected to go away once they have moved to META-INF.
type LegacySink interface {
	Write(doc *descriptor.Document) error
}

// DirSink writes JSON and YAML copies of the descriptor into an existing directory.
// Nothing is written when the directory does not exist.
type DirSink struct {
	fs     filesystem.FileSystemProvider
	dir    string
	format descriptor.Format
	logger extdesc.Logger
}

// NewDirSink creates a sink rooted at dir.
func NewDirSink(fsys filesystem.FileSystemProvider, dir string, format descriptor.Format, logger extdesc.Logger) *DirSink {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &DirSink{fs: fsys, dir: dir, format: format, logger: logger}
}

// Write implements LegacySink.
func (s *DirSink) Write(doc *descriptor.Document) error {
	if !filesystem.IsDir(s.fs, s.dir) {
		s.logger.Verbose("Legacy directory %s does not exist, skipping", s.dir)
		return nil
	}

	jsonData, err := s.format.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render legacy descriptor: %w", err)
	}
	yamlData, err := s.format.MarshalYAML(doc)
	if err != nil {
		return fmt.Errorf("failed to render legacy descriptor: %w", err)
	}

	for _, out := range []struct {
		name string
		data []byte
	}{
		{extdesc.DescriptorFileName, jsonData},
		{extdesc.LegacyYAMLFileName, yamlData},
	} {
		target := filepath.Join(s.dir, out.name)
		if err := s.fs.WriteFile(target, out.data); err != nil {
			return fmt.Errorf("failed to persist %s: %w", target, extdesc.IOError(err))
		}
		s.logger.Verbose("Wrote legacy copy %s", target)
	}
	return nil
}
