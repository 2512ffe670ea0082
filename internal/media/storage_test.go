package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveProductImage(t *testing.T) {
	root := t.TempDir()
	s := NewStorage(root, "/media")

	stored, err := s.SaveProductImage(strings.NewReader("fake image bytes"), "Rosas Rojas.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored, "media/products/"))
	assert.True(t, strings.HasSuffix(stored, ".jpg"), "extension should be lowercased")

	rel := strings.TrimPrefix(stored, "media/")
	data, err := os.ReadFile(filepath.Join(root, rel))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveProductImage_UniqueNames(t *testing.T) {
	s := NewStorage(t.TempDir(), "/media")

	first, err := s.SaveProductImage(strings.NewReader("a"), "same.png")
	require.NoError(t, err)
	second, err := s.SaveProductImage(strings.NewReader("b"), "same.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRemove(t *testing.T) {
	root := t.TempDir()
	s := NewStorage(root, "/media")

	t.Run("Success", func(t *testing.T) {
		stored, err := s.SaveProductImage(strings.NewReader("x"), "flor.png")
		require.NoError(t, err)

		err = s.Remove(stored)
		require.NoError(t, err)

		rel := strings.TrimPrefix(stored, "media/")
		_, err = os.Stat(filepath.Join(root, rel))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("MissingFile", func(t *testing.T) {
		err := s.Remove("media/products/gone.png")
		assert.NoError(t, err)
	})

	t.Run("TraversalIgnored", func(t *testing.T) {
		outside := filepath.Join(root, "..", "victim.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
		t.Cleanup(func() { os.Remove(outside) })

		err := s.Remove("media/../victim.txt")
		require.NoError(t, err)

		_, err = os.Stat(outside)
		assert.NoError(t, err, "file outside the media root must survive")
	})
}

func TestURLPath(t *testing.T) {
	s := NewStorage("/tmp/media", "media/")
	assert.Equal(t, "/media", s.URLPath())
}
