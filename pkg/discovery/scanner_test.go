package discovery_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notia/pkg/discovery"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	t.Run("Filters By Extension Case Insensitive", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.jpg", "b.txt", "c.PNG")

		got := discovery.NewScanner([]string{dir}, discovery.WithSorted(true)).Scan()
		assert.Equal(t, []string{filepath.Join(dir, "a.jpg"), filepath.Join(dir, "c.PNG")}, got)
	})

	t.Run("All Default Extensions", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "1.jpg", "2.JPEG", "3.png", "4.Gif", "5.bmp", "6.webp", "7.tiff", "noext", "8.jpg.bak")

		got := discovery.NewScanner([]string{dir}).Scan()
		assert.Len(t, got, 6)
	})

	t.Run("Not Recursive And Skips Directories", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "album.jpg"), 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
		touch(t, filepath.Join(dir, "sub"), "deep.jpg")
		touch(t, dir, "top.jpg")

		got := discovery.NewScanner([]string{dir}).Scan()
		assert.Equal(t, []string{filepath.Join(dir, "top.jpg")}, got)
	})

	t.Run("Extension Without Stem Is Not A Photo", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, ".jpg", ".PNG", "x.jpg")

		got := discovery.NewScanner([]string{dir}).Scan()
		assert.Equal(t, []string{filepath.Join(dir, "x.jpg")}, got)
	})

	t.Run("Missing Directories Are Skipped", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.jpg")

		s := discovery.NewScanner([]string{filepath.Join(dir, "nope"), dir})
		assert.Equal(t, []string{filepath.Join(dir, "a.jpg")}, s.Scan())
	})

	t.Run("Empty Result Is Not Nil", func(t *testing.T) {
		got := discovery.NewScanner(nil).Scan()
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Duplicate Directories Scanned Once", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.jpg")

		s := discovery.NewScanner([]string{dir, dir + string(filepath.Separator), filepath.Join(dir, ".")})
		assert.Len(t, s.Dirs(), 1)
		assert.Len(t, s.Scan(), 1)
	})

	t.Run("Directory Order Kept", func(t *testing.T) {
		first, second := t.TempDir(), t.TempDir()
		touch(t, first, "z.jpg")
		touch(t, second, "a.jpg")

		got := discovery.NewScanner([]string{first, second}).Scan()
		assert.Equal(t, []string{filepath.Join(first, "z.jpg"), filepath.Join(second, "a.jpg")}, got)

		sorted := discovery.NewScanner([]string{first, second}, discovery.WithSorted(true)).Scan()
		assert.IsIncreasing(t, sorted)
	})

	t.Run("Symlinked Photo", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks need privileges on windows")
		}
		dir := t.TempDir()
		other := t.TempDir()
		touch(t, other, "real.jpg")
		require.NoError(t, os.Symlink(filepath.Join(other, "real.jpg"), filepath.Join(dir, "link.jpg")))
		require.NoError(t, os.Symlink(filepath.Join(other, "gone.jpg"), filepath.Join(dir, "dangling.jpg")))

		got := discovery.NewScanner([]string{dir}).Scan()
		assert.Equal(t, []string{filepath.Join(dir, "link.jpg")}, got)
	})

	t.Run("Idempotent", func(t *testing.T) {
		dir := t.TempDir()
		touch(t, dir, "a.jpg", "b.png")
		s := discovery.NewScanner([]string{dir})
		assert.ElementsMatch(t, s.Scan(), s.Scan())
	})
}

func TestScanner_Extensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg", "b.HEIC", "c.tif")

	s := discovery.NewScanner([]string{dir}, discovery.WithExtensions(".heic", "TIF", "heic", " "), discovery.WithSorted(true))
	assert.Equal(t, []string{"heic", "tif"}, s.Extensions())
	assert.Equal(t, []string{filepath.Join(dir, "b.HEIC"), filepath.Join(dir, "c.tif")}, s.Scan())

	defaults := discovery.NewScanner(nil, discovery.WithExtensions())
	assert.Equal(t, discovery.DefaultExtensions, defaults.Extensions())
}

func TestScanner_Match(t *testing.T) {
	s := discovery.NewScanner(nil)
	assert.True(t, s.Match("/x/y/Photo.JPG"))
	assert.True(t, s.Match("pic.webp"))
	assert.False(t, s.Match("notes.txt"))
	assert.False(t, s.Match("jpg"))
	assert.False(t, s.Match(".jpg"))
	assert.False(t, s.Match("/x/.PNG"))
	assert.True(t, s.Match("a.png"))
}
