package services

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vvka-141/extdesc/internal/descriptor"
	"github.com/vvka-141/extdesc/internal/files/filesystem"
	"github.com/vvka-141/extdesc/internal/propsfile"
	"github.com/vvka-141/extdesc/pkg/extdesc"
)

// Result describes a finished generation run.
type Result struct {
	// Descriptor is the final document after migration and defaulting
	Descriptor *descriptor.Document

	// DescriptorJSON is the rendered descriptor
	DescriptorJSON []byte

	// Properties is the rendered properties record
	Properties []byte

	// PropertiesPath and DescriptorPath are the output locations
	PropertiesPath string
	DescriptorPath string

	// Written lists the files written, in order. Empty for a dry run.
	Written []string
}

// Generator produces the extension descriptor and properties record.
// Thread-Safety: NOT safe for concurrent Generate() calls writing to the same output directory.
type Generator struct {
	fs     filesystem.FileSystemProvider
	logger extdesc.Logger
	format descriptor.Format
	legacy LegacySink
}

// NewGenerator creates a Generator. legacy may be nil, in which case a DirSink
// on Config.LegacyPath() is used for runs that enable legacy sync.
//
// Panics on nil fs or logger: these are wiring mistakes, not runtime conditions.
func NewGenerator(fsys filesystem.FileSystemProvider, logger extdesc.Logger, format descriptor.Format, legacy LegacySink) *Generator {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Generator{fs: fsys, logger: logger, format: format, legacy: legacy}
}

// LoadAndMigrate reads the descriptor at path and migrates it to the current schema.
// A missing file yields an empty, migrated document.
func (g *Generator) LoadAndMigrate(path string) (*descriptor.Document, error) {
	data, err := g.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			g.logger.Verbose("No descriptor at %s, starting from an empty one", path)
			return descriptor.Migrate(descriptor.New()), nil
		}
		return nil, fmt.Errorf("failed to read descriptor %s: %w", path, extdesc.IOError(err))
	}

	doc, err := descriptor.Decode(data, path)
	if err != nil {
		return nil, err
	}
	g.logger.Verbose("Loaded descriptor %s (%d keys)", path, doc.Len())
	return descriptor.Migrate(doc), nil
}

// Generate runs the whole step: properties record, descriptor load and
// migration, legacy copy, defaulting, and the JSON descriptor. The first
// failure aborts the run; files already written are left in place.
func (g *Generator) Generate(cfg extdesc.Config) (*Result, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	metaInf := cfg.MetaInfPath()
	res := &Result{
		PropertiesPath: filepath.Join(metaInf, extdesc.PropertiesFileName),
		DescriptorPath: filepath.Join(metaInf, extdesc.DescriptorFileName),
	}

	record := propsfile.New(extdesc.PropertiesHeader)
	if err := record.Set(extdesc.PropDeploymentArtifact, cfg.Deployment); err != nil {
		return nil, err
	}
	props, err := record.Bytes()
	if err != nil {
		return nil, err
	}
	res.Properties = props

	if !cfg.DryRun {
		if err := g.fs.MkdirAll(metaInf); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", metaInf, extdesc.IOError(err))
		}
		if err := g.write(res, res.PropertiesPath, props); err != nil {
			return nil, err
		}
	}

	doc, err := g.LoadAndMigrate(cfg.DescriptorPath)
	if err != nil {
		return nil, err
	}

	if cfg.LegacySync {
		if err := g.writeLegacy(cfg, doc); err != nil {
			return nil, err
		}
	}

	res.Descriptor = descriptor.Synthesize(doc, cfg.Project, g.logger)
	out, err := g.format.Marshal(res.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to render descriptor: %w", err)
	}
	res.DescriptorJSON = out

	if cfg.DryRun {
		g.logger.Verbose("Dry run: would write %s and %s", res.PropertiesPath, res.DescriptorPath)
		return res, nil
	}
	if err := g.write(res, res.DescriptorPath, out); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *Generator) writeLegacy(cfg extdesc.Config, doc *descriptor.Document) error {
	if cfg.DryRun {
		g.logger.Verbose("Dry run: skipping legacy copy")
		return nil
	}

	sink := g.legacy
	if sink == nil {
		sink = NewDirSink(g.fs, cfg.LegacyPath(), g.format, g.logger)
	}
	err := sink.Write(doc)
	if err == nil {
		return nil
	}
	if cfg.LegacyStrict {
		return err
	}
	g.logger.Warn("Legacy descriptor copy failed, continuing: %v", err)
	return nil
}

func (g *Generator) write(res *Result, path string, data []byte) error {
	if err := g.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("failed to persist %s: %w", path, extdesc.IOError(err))
	}
	res.Written = append(res.Written, path)
	g.logger.Verbose("Wrote %s", path)
	return nil
}
