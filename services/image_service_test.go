package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemovedURLs(t *testing.T) {
	old := []string{"a", "b", "c"}
	assert.Equal(t, []string{"b"}, RemovedURLs(old, []string{"a", "c"}))
	assert.Nil(t, RemovedURLs(old, old))
	assert.Equal(t, []string{"a", "b", "c"}, RemovedURLs(old, nil))
	assert.Nil(t, RemovedURLs(nil, []string{"x"}))
}

func TestKeyForURL(t *testing.T) {
	s := NewImageServiceAt(t.TempDir(), "https://assets.example.com")

	key, ok := s.KeyForURL("https://assets.example.com/uploads/hotels/a.jpg")
	require.True(t, ok)
	assert.Equal(t, "hotels/a.jpg", key)

	// Host-less paths come from the same static mount.
	key, ok = s.KeyForURL("/uploads/listings/b.jpg")
	require.True(t, ok)
	assert.Equal(t, "listings/b.jpg", key)

	// Foreign hosts cannot be resolved to a storage key.
	_, ok = s.KeyForURL("https://cdn.elsewhere.com/uploads/hotels/a.jpg")
	assert.False(t, ok)

	_, ok = s.KeyForURL("https://assets.example.com/other/a.jpg")
	assert.False(t, ok)

	_, ok = s.KeyForURL("https://assets.example.com/uploads/../secrets")
	assert.False(t, ok)
}

func TestCleanupURLsDeletesOnlyRemoved(t *testing.T) {
	dir := t.TempDir()
	s := NewImageServiceAt(dir, "https://assets.example.com")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "hotels"), 0755))
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "hotels", name), []byte("img"), 0644))
	}

	urlFor := func(name string) string { return "https://assets.example.com/uploads/hotels/" + name }
	old := []string{urlFor("a.jpg"), urlFor("b.jpg"), urlFor("c.jpg")}
	updated := []string{urlFor("a.jpg"), urlFor("c.jpg")}

	s.CleanupURLs(RemovedURLs(old, updated))

	assert.NoFileExists(t, filepath.Join(dir, "hotels", "b.jpg"))
	assert.FileExists(t, filepath.Join(dir, "hotels", "a.jpg"))
	assert.FileExists(t, filepath.Join(dir, "hotels", "c.jpg"))
}

func TestCleanupURLsSwallowsFailures(t *testing.T) {
	s := NewImageServiceAt(t.TempDir(), "https://assets.example.com")
	// Missing files and unresolvable URLs must not panic or error out.
	s.CleanupURLs([]string{
		"https://assets.example.com/uploads/hotels/gone.jpg",
		"https://cdn.elsewhere.com/uploads/x.jpg",
		"::not a url::",
	})
}

func TestSaveBase64RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewImageServiceAt(dir, "https://assets.example.com")

	url, err := s.SaveBase64("data:image/jpeg;base64,aGVsbG8=", "hotels")
	require.NoError(t, err)

	key, ok := s.KeyForURL(url)
	require.True(t, ok)
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Delete(key))
	assert.NoFileExists(t, filepath.Join(dir, filepath.FromSlash(key)))
}

func TestSaveBase64RejectsGarbage(t *testing.T) {
	s := NewImageServiceAt(t.TempDir(), "https://assets.example.com")
	_, err := s.SaveBase64("%%% not base64 %%%", "hotels")
	assert.Error(t, err)
}
