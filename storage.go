package resolver

import (
	"io/fs"
	"sort"
)

// Storage is the collaborator that holds raw template files. The engine
// hands it fully assembled file names ("{context}_{name}{ext}") and expects
// either the bytes or an error satisfying errors.Is(err, fs.ErrNotExist).
type Storage interface {
	// Read returns the content of the named template file.
	Read(name string) ([]byte, error)

	// Exists reports whether the named template file is present.
	Exists(name string) bool

	// List returns the names of all template files, extension included.
	List() ([]string, error)
}

// DirStorage serves templates from the root of an fs.FS, typically
// os.DirFS over the configured template directory.
type DirStorage struct {
	fsys fs.FS
}

// NewDirStorage creates a storage over the given filesystem.
func NewDirStorage(fsys fs.FS) *DirStorage {
	return &DirStorage{fsys: fsys}
}

func (s *DirStorage) Read(name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}

func (s *DirStorage) Exists(name string) bool {
	info, err := fs.Stat(s.fsys, name)
	return err == nil && !info.IsDir()
}

func (s *DirStorage) List() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// MapStorage is an in-memory storage, useful for tests and for engines that
// are populated exclusively through RegisterTemplate or embedded content.
type MapStorage struct {
	files map[string]string
}

// NewMapStorage creates a storage over the given name→content table.
// A nil table yields an empty storage.
func NewMapStorage(files map[string]string) *MapStorage {
	if files == nil {
		files = make(map[string]string)
	}
	return &MapStorage{files: files}
}

// Put adds or replaces a template file.
func (s *MapStorage) Put(name, content string) {
	s.files[name] = content
}

func (s *MapStorage) Read(name string) ([]byte, error) {
	content, ok := s.files[name]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

func (s *MapStorage) Exists(name string) bool {
	_, ok := s.files[name]
	return ok
}

func (s *MapStorage) List() ([]string, error) {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

var (
	_ Storage = (*DirStorage)(nil)
	_ Storage = (*MapStorage)(nil)
)
