package landing

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// hashLen is the number of hex characters kept from an asset digest.
const hashLen = 10

// Manifest maps every static asset name to a short content hash so pages can
// reference /public/<name>?v=<hash> and /public can be cached immutably.
// Files in the static dir shadow embedded files of the same name.
type Manifest struct {
	mu       sync.RWMutex
	dir      string
	embedded fs.FS
	hashes   map[string]string
}

// NewManifest creates an empty manifest over dir and the embedded assets.
// Call Build before use.
func NewManifest(dir string, embedded fs.FS) *Manifest {
	return &Manifest{dir: dir, embedded: embedded, hashes: map[string]string{}}
}

// Build rehashes every asset. A missing static dir is not an error.
func (m *Manifest) Build() error {
	hashes := make(map[string]string)
	if m.embedded != nil {
		if err := hashTree(m.embedded, hashes); err != nil {
			return fmt.Errorf("landing: hash embedded assets: %w", err)
		}
	}
	if info, err := os.Stat(m.dir); err == nil && info.IsDir() {
		if err := hashTree(os.DirFS(m.dir), hashes); err != nil {
			return fmt.Errorf("landing: hash %s: %w", m.dir, err)
		}
	}
	m.mu.Lock()
	m.hashes = hashes
	m.mu.Unlock()
	return nil
}

func hashTree(fsys fs.FS, into map[string]string) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(data)
		into[name] = hex.EncodeToString(sum[:])[:hashLen]
		return nil
	})
}

// URL returns the public URL for name, versioned when the asset is known.
func (m *Manifest) URL(name string) string {
	name = strings.TrimPrefix(name, "/")
	if hash, ok := m.Hash(name); ok {
		return "/public/" + name + "?v=" + hash
	}
	return "/public/" + name
}

// Hash returns the content hash recorded for name.
func (m *Manifest) Hash(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.hashes[name]
	return h, ok
}

// Has reports whether name is a known asset.
func (m *Manifest) Has(name string) bool {
	_, ok := m.Hash(strings.TrimPrefix(name, "/"))
	return ok
}

// Names returns every known asset name, sorted.
func (m *Manifest) Names() []string {
	m.mu.RLock()
	names := make([]string, 0, len(m.hashes))
	for n := range m.hashes {
		names = append(names, n)
	}
	m.mu.RUnlock()
	sort.Strings(names)
	return names
}

// ReadFile returns the contents of an asset, preferring the static dir.
func (m *Manifest) ReadFile(name string) ([]byte, error) {
	local, err := m.localPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(local)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) || m.embedded == nil {
		return nil, err
	}
	return fs.ReadFile(m.embedded, path.Clean(name))
}

// localPath resolves name inside the static dir, rejecting escapes and
// hidden files, which the manifest never lists.
func (m *Manifest) localPath(name string) (string, error) {
	clean := path.Clean("/" + name)[1:]
	if clean == "" || !fs.ValidPath(clean) || hidden(clean) {
		return "", fs.ErrNotExist
	}
	return filepath.Join(m.dir, filepath.FromSlash(clean)), nil
}

// hidden reports whether any segment of name starts with a dot.
func hidden(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
