package scaffold

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"

	"github.com/movekit-dev/movekit/internal/manifest"
)

const (
	// SourcesDir is the package subdirectory holding Move sources.
	SourcesDir = "sources"

	// SourceExt is the extension of the seeded source file.
	SourceExt = ".move"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Request describes one package to generate. It is built once from user
// input and consumed by a single Generate call.
type Request struct {
	// Path is the target directory. Empty means a directory named after the
	// lower-cased package under the generator's working directory.
	Path string

	Name    string
	Version string

	// Dependencies are written in order to [dependencies]; each Value is an
	// opaque TOML fragment copied verbatim.
	Dependencies []manifest.Entry

	// Addresses are written in order to [addresses] as quoted strings.
	Addresses []manifest.Entry

	// SeedContent, when non-empty, is written to sources/<name>.move.
	SeedContent string
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Warnings  []string
}

// Generator writes package skeletons. The zero value is not usable; call New.
type Generator struct {
	fs       afero.Fs
	logger   hclog.Logger
	workDir  func() (string, error)
	reserved map[string]bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem the generator writes to.
func WithFs(fsys afero.Fs) Option {
	return func(g *Generator) { g.fs = fsys }
}

// WithLogger sets the logger used for progress and rollback messages.
func WithLogger(logger hclog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithWorkDir fixes the directory used to resolve requests without a Path.
func WithWorkDir(dir string) Option {
	return func(g *Generator) {
		g.workDir = func() (string, error) { return dir, nil }
	}
}

// WithReservedNames adds names that dependencies and addresses may not use.
func WithReservedNames(names ...string) Option {
	return func(g *Generator) {
		for _, n := range names {
			g.reserved[n] = true
		}
	}
}

// New returns a Generator writing to the OS filesystem relative to the
// process working directory.
func New(opts ...Option) *Generator {
	g := &Generator{
		fs:       afero.NewOsFs(),
		logger:   hclog.NewNullLogger(),
		workDir:  os.Getwd,
		reserved: make(map[string]bool, len(DefaultReservedNames)),
	}
	for _, n := range DefaultReservedNames {
		g.reserved[n] = true
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate validates req, creates the package skeleton and returns what was
// written. Nothing touches the filesystem until validation passes. If a
// write fails, everything this call created is removed again; a failure of
// that cleanup is reported alongside the original error.
func (g *Generator) Generate(req Request) (*Result, error) {
	name := NormalizeName(req.Name)
	if err := validatePackageName(name); err != nil {
		return nil, err
	}
	if err := validateVersion(req.Version); err != nil {
		return nil, err
	}
	if err := validateEntries("dependency", req.Dependencies, dependencyNamePattern, g.reserved); err != nil {
		return nil, err
	}
	if err := validateEntries("address", req.Addresses, addressNamePattern, g.reserved); err != nil {
		return nil, err
	}

	var doc bytes.Buffer
	if err := manifest.Render(&doc, manifest.Document{
		Name:         name,
		Version:      req.Version,
		Dependencies: req.Dependencies,
		Addresses:    req.Addresses,
	}); err != nil {
		return nil, zerr.Wrap(err, "rendering manifest")
	}

	outputDir, err := g.resolveOutputDir(req.Path, name)
	if err != nil {
		return nil, err
	}

	existed, err := g.checkTarget(outputDir)
	if err != nil {
		return nil, err
	}

	tx := &transaction{fs: g.fs, logger: g.logger, root: outputDir, ownsRoot: !existed}
	result := &Result{OutputDir: outputDir}

	if err := g.write(tx, result, name, doc.Bytes(), req.SeedContent); err != nil {
		if rbErr := tx.rollback(); rbErr != nil {
			return nil, multierror.Append(err, rbErr)
		}
		return nil, err
	}

	result.Warnings = g.validateManifest(filepath.Join(outputDir, manifest.FileName))
	return result, nil
}

func (g *Generator) resolveOutputDir(path, name string) (string, error) {
	if path != "" {
		return filepath.Clean(path), nil
	}
	wd, err := g.workDir()
	if err != nil {
		return "", ioError("getwd", ".", err)
	}
	return filepath.Join(wd, name), nil
}

// checkTarget reports whether dir already exists. An existing non-empty
// directory, or any existing non-directory, is ErrAlreadyExists.
func (g *Generator) checkTarget(dir string) (bool, error) {
	info, err := g.fs.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, ioError("stat", dir, err)
	}
	if !info.IsDir() {
		return true, zerr.With(zerr.Wrap(ErrAlreadyExists, dir), "path", dir)
	}
	empty, err := afero.IsEmpty(g.fs, dir)
	if err != nil {
		return true, ioError("readdir", dir, err)
	}
	if !empty {
		return true, zerr.With(zerr.Wrap(ErrAlreadyExists, dir), "path", dir)
	}
	return true, nil
}

func (g *Generator) write(tx *transaction, result *Result, name string, doc []byte, seed string) error {
	if err := tx.mkdir(tx.root); err != nil {
		return err
	}
	sources := filepath.Join(tx.root, SourcesDir)
	if err := tx.mkdir(sources); err != nil {
		return err
	}

	if err := tx.writeFile(filepath.Join(tx.root, manifest.FileName), doc); err != nil {
		return err
	}
	result.Files = append(result.Files, manifest.FileName)
	result.Files = append(result.Files, SourcesDir+"/")

	if seed != "" {
		src := name + SourceExt
		if err := tx.writeFile(filepath.Join(sources, src), []byte(seed)); err != nil {
			return err
		}
		result.Files = append(result.Files, SourcesDir+"/"+src)
	}
	return nil
}

// validateManifest re-reads the written manifest and returns schema issues
// as warnings.
func (g *Generator) validateManifest(path string) []string {
	data, err := afero.ReadFile(g.fs, path)
	if err != nil {
		return []string{"Could not read back manifest: " + err.Error()}
	}
	valResult, err := manifest.Validate(data)
	if err != nil {
		return []string{"Could not validate manifest: " + err.Error()}
	}
	var warnings []string
	for _, issue := range valResult.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}
