package scaffold

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movekit-dev/movekit/internal/manifest"
)

const suiDescriptor = `{ git = "https://github.com/MystenLabs/sui.git", subdir = "crates/sui-framework", rev = "main" }`

func coinRequest(path string) Request {
	return Request{
		Path:         path,
		Name:         "Coin",
		Version:      "0.0.1",
		Dependencies: []manifest.Entry{{Name: "Sui", Value: suiDescriptor}},
		Addresses:    []manifest.Entry{{Name: "coin", Value: "0x0"}},
	}
}

func TestGenerateDefaultPath(t *testing.T) {
	dir := t.TempDir()
	g := New(WithWorkDir(dir))

	result, err := g.Generate(coinRequest(""))
	require.NoError(t, err)

	outDir := filepath.Join(dir, "coin")
	assert.Equal(t, outDir, result.OutputDir)
	assert.Equal(t, []string{"Move.toml", "sources/"}, result.Files)
	assert.Empty(t, result.Warnings)

	info, err := os.Stat(filepath.Join(outDir, SourcesDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content := readGenerated(t, outDir, "Move.toml")
	assertContains(t, content, `name = "coin"`)
	assertContains(t, content, `version = "0.0.1"`)
	assertContains(t, content, "Sui = "+suiDescriptor)
	assertContains(t, content, `coin = "0x0"`)

	m, err := manifest.Parse(filepath.Join(outDir, manifest.FileName))
	require.NoError(t, err)
	assert.Equal(t, "coin", m.Package.Name)
	assert.Equal(t, "0.0.1", m.Package.Version)
	require.Len(t, m.Dependencies, 1)
	assert.Equal(t, "main", m.Dependencies["Sui"].Rev)
	assert.Equal(t, map[string]string{"coin": "0x0"}, m.Addresses)

	// No seed content means no source file.
	entries, err := os.ReadDir(filepath.Join(outDir, SourcesDir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateExplicitPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "my-package")
	g := New(WithWorkDir(t.TempDir()))

	result, err := g.Generate(coinRequest(target))
	require.NoError(t, err)
	assert.Equal(t, target, result.OutputDir)
	assert.FileExists(t, filepath.Join(target, "Move.toml"))
}

func TestGenerateIntoEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	g := New()

	_, err := g.Generate(coinRequest(dir))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "Move.toml"))
}

func TestGenerateSeedContent(t *testing.T) {
	dir := t.TempDir()
	g := New(WithWorkDir(dir))

	req := coinRequest("")
	req.SeedContent = "module coin::coin {\n}\n"

	result, err := g.Generate(req)
	require.NoError(t, err)
	assert.Equal(t, []string{"Move.toml", "sources/", "sources/coin.move"}, result.Files)

	content := readGenerated(t, filepath.Join(dir, "coin", SourcesDir), "coin.move")
	assert.Equal(t, req.SeedContent, content)
}

func TestGenerateNonEmptyDir(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("hello"), 0644))

	g := New()
	_, err := g.Generate(coinRequest(dir))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)
	assert.Contains(t, err.Error(), dir)

	// Target left untouched.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "existing.txt", entries[0].Name())
	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestGenerateTargetIsFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "coin")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	_, err := New().Generate(coinRequest(target))
	assert.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)
}

func TestGenerateTwiceFails(t *testing.T) {
	dir := t.TempDir()
	g := New(WithWorkDir(dir))

	_, err := g.Generate(coinRequest(""))
	require.NoError(t, err)
	before := readGenerated(t, filepath.Join(dir, "coin"), "Move.toml")

	_, err = g.Generate(coinRequest(""))
	assert.True(t, errors.Is(err, ErrAlreadyExists), "got %v", err)
	assert.Equal(t, before, readGenerated(t, filepath.Join(dir, "coin"), "Move.toml"))
}

func TestGenerateInvalidName(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
	}{
		{"empty", ""},
		{"hyphen", "my-coin"},
		{"leading digit", "1coin"},
		{"space", "my coin"},
		{"path separator", "../coin"},
		{"non ascii", "münze"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			g := New(WithFs(fsys), WithWorkDir("/work"))

			req := coinRequest("")
			req.Name = tt.pkg
			_, err := g.Generate(req)
			assert.True(t, errors.Is(err, ErrInvalidName), "got %v", err)

			// Nothing was created.
			exists, err := afero.Exists(fsys, "/work")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestGenerateInvalidVersion(t *testing.T) {
	for _, v := range []string{"", "latest", "1", "v1.0.0"} {
		req := coinRequest("/work/coin")
		req.Version = v
		_, err := New(WithFs(afero.NewMemMapFs())).Generate(req)
		assert.True(t, errors.Is(err, ErrInvalidVersion), "version %q: got %v", v, err)
	}
}

func TestGenerateInvalidEntries(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   string
	}{
		{
			name:   "reserved dependency",
			mutate: func(r *Request) { r.Dependencies = append(r.Dependencies, manifest.Entry{Name: "package", Value: "{}"}) },
			want:   "reserved",
		},
		{
			name:   "reserved address",
			mutate: func(r *Request) { r.Addresses = []manifest.Entry{{Name: "addresses", Value: "0x0"}} },
			want:   "reserved",
		},
		{
			name:   "duplicate address",
			mutate: func(r *Request) { r.Addresses = append(r.Addresses, manifest.Entry{Name: "coin", Value: "0x1"}) },
			want:   "declared twice",
		},
		{
			name:   "malformed address",
			mutate: func(r *Request) { r.Addresses = []manifest.Entry{{Name: "my-coin", Value: "0x0"}} },
			want:   "must match",
		},
		{
			name:   "malformed dependency",
			mutate: func(r *Request) { r.Dependencies = []manifest.Entry{{Name: "", Value: "{}"}} },
			want:   "must match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := coinRequest("/work/coin")
			tt.mutate(&req)
			_, err := New(WithFs(afero.NewMemMapFs())).Generate(req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidName), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGenerateCustomReservedNames(t *testing.T) {
	req := coinRequest("/work/coin")
	req.Addresses = append(req.Addresses, manifest.Entry{Name: "std", Value: "0x1"})

	_, err := New(WithFs(afero.NewMemMapFs()), WithReservedNames("std")).Generate(req)
	assert.True(t, errors.Is(err, ErrInvalidName), "got %v", err)
}

func TestGenerateRollbackOnManifestFailure(t *testing.T) {
	fsys := &failingFs{Fs: afero.NewMemMapFs(), failWrite: manifest.FileName}
	g := New(WithFs(fsys), WithWorkDir("/work"))

	_, err := g.Generate(coinRequest(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO), "got %v", err)
	assert.True(t, errors.Is(err, syscall.ENOSPC), "got %v", err)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "write", ioErr.Op)

	exists, err := afero.Exists(fsys, "/work/coin")
	require.NoError(t, err)
	assert.False(t, exists, "partially generated directory should be removed")
}

func TestGenerateRollbackOnSeedFailureKeepsExistingDir(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/work/coin", 0o755))
	fsys := &failingFs{Fs: mem, failWrite: "coin.move"}

	req := coinRequest("/work/coin")
	req.SeedContent = "module coin::coin {}\n"
	_, err := New(WithFs(fsys)).Generate(req)
	assert.True(t, errors.Is(err, ErrIO), "got %v", err)

	// The pre-existing directory survives, emptied of what was created.
	exists, err := afero.DirExists(mem, "/work/coin")
	require.NoError(t, err)
	assert.True(t, exists)
	empty, err := afero.IsEmpty(mem, "/work/coin")
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestGenerateRollbackFailureIsReported(t *testing.T) {
	fsys := &failingFs{Fs: afero.NewMemMapFs(), failWrite: manifest.FileName, failRemove: true}
	g := New(WithFs(fsys), WithWorkDir("/work"))

	_, err := g.Generate(coinRequest(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write /work/coin/Move.toml")
	assert.Contains(t, err.Error(), "remove /work/coin")
}

func TestGenerateReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	_, err := New(WithFs(fsys), WithWorkDir("/work")).Generate(coinRequest(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO), "got %v", err)
	assert.True(t, errors.Is(err, fs.ErrPermission), "got %v", err)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Coin", "coin"},
		{"MY_COIN", "my_coin"},
		{"already_lower", "already_lower"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// ─── Test Helpers ──────────────────────────────────────────────────

// failingFs fails writes to files with a given base name and, optionally,
// every RemoveAll.
type failingFs struct {
	afero.Fs
	failWrite  string
	failRemove bool
}

func (f *failingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failWrite {
		return nil, &fs.PathError{Op: "open", Path: name, Err: syscall.ENOSPC}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *failingFs) RemoveAll(path string) error {
	if f.failRemove {
		return &fs.PathError{Op: "remove", Path: path, Err: syscall.EBUSY}
	}
	return f.Fs.RemoveAll(path)
}

func readGenerated(t *testing.T, dir, filename string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}
