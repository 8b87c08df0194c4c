package resolver_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	resolver "github.com/four-bytes/four-template-resolver"
)

func TestDirStorage(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"listing.txt":        &fstest.MapFile{Data: []byte("base")},
		"amazon_listing.txt": &fstest.MapFile{Data: []byte("amazon")},
		"sub/ignored.txt":    &fstest.MapFile{Data: []byte("nested")},
	}
	s := resolver.NewDirStorage(fsys)

	t.Run("reads existing files", func(t *testing.T) {
		t.Parallel()

		data, err := s.Read("listing.txt")
		require.NoError(t, err)
		require.Equal(t, "base", string(data))
	})

	t.Run("missing files satisfy fs.ErrNotExist", func(t *testing.T) {
		t.Parallel()

		_, err := s.Read("missing.txt")
		require.ErrorIs(t, err, fs.ErrNotExist)
		require.False(t, s.Exists("missing.txt"))
	})

	t.Run("lists root files only", func(t *testing.T) {
		t.Parallel()

		names, err := s.List()
		require.NoError(t, err)
		require.Equal(t, []string{"amazon_listing.txt", "listing.txt"}, names)
	})

	t.Run("backs an engine end to end", func(t *testing.T) {
		t.Parallel()

		e := resolver.New(resolver.WithStorage(s))
		out, err := e.Resolve("listing", nil, "amazon")
		require.NoError(t, err)
		require.Equal(t, "amazon", out)
	})
}

func TestMapStorage(t *testing.T) {
	t.Parallel()

	t.Run("put and read round-trip", func(t *testing.T) {
		t.Parallel()

		s := resolver.NewMapStorage(nil)
		require.False(t, s.Exists("a.txt"))

		s.Put("a.txt", "content")
		require.True(t, s.Exists("a.txt"))

		data, err := s.Read("a.txt")
		require.NoError(t, err)
		require.Equal(t, "content", string(data))
	})

	t.Run("missing entries satisfy fs.ErrNotExist", func(t *testing.T) {
		t.Parallel()

		s := resolver.NewMapStorage(nil)
		_, err := s.Read("nope.txt")
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}
