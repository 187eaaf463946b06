package avatars

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesFileAndReturnsURL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/avatars/")
	require.NoError(t, err)

	url, err := store.Save(7, ".png", strings.NewReader("imagedata"))
	require.NoError(t, err)
	assert.Equal(t, "/avatars/7/avatar.png", url)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "7", "avatar.png"))
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(data))
}

func TestSaveReplacesPreviousAvatar(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/avatars")
	require.NoError(t, err)

	_, err = store.Save(3, ".png", strings.NewReader("old"))
	require.NoError(t, err)
	url, err := store.Save(3, ".jpg", strings.NewReader("new"))
	require.NoError(t, err)
	assert.Equal(t, "/avatars/3/avatar.jpg", url)

	files, err := filepath.Glob(filepath.Join(store.Dir(), "3", "avatar.*"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "avatar.jpg", filepath.Base(files[0]))
}

func TestSaveNormalizesExtensionCase(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/avatars")
	require.NoError(t, err)

	url, err := store.Save(1, ".PNG", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "/avatars/1/avatar.png", url)
}

func TestSaveRejectsUnsupportedFormats(t *testing.T) {
	store, err := NewStore(t.TempDir(), "/avatars")
	require.NoError(t, err)

	for _, ext := range []string{".svg", ".exe", "", "png"} {
		_, err := store.Save(1, ext, strings.NewReader("x"))
		assert.Error(t, err, ext)
	}
}
