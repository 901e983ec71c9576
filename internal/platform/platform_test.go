package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notia/pkg/core"
	"github.com/aretw0/notia/pkg/discovery"
)

// isolate points every XDG lookup at an empty temp home.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_PICTURES_DIR", "")
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestConfig_LoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notia", ConfigFileName)

	t.Run("Missing File Is Empty", func(t *testing.T) {
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, &Config{}, cfg)
	})

	t.Run("Round Trip", func(t *testing.T) {
		in := &Config{
			NotesFile:   "~/notes.json",
			Directories: []string{"/srv/photos"},
			Extensions:  []string{"heic"},
			Sort:        true,
		}
		require.NoError(t, SaveConfig(path, in))

		out, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("directories: [unterminated"), 0644))
		_, err := LoadConfig(bad)
		assert.Error(t, err)
	})
}

func TestWellKnownDirectories(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		home := isolate(t)
		assert.Equal(t, []string{
			filepath.Join(home, "Pictures"),
			filepath.Join(home, "Resimler"),
			filepath.Join(home, "Downloads"),
			filepath.Join(home, "İndirilenler"),
		}, WellKnownDirectories(home))
	})

	t.Run("From Environment", func(t *testing.T) {
		home := isolate(t)
		t.Setenv("XDG_PICTURES_DIR", "~/Fotos")

		dirs := WellKnownDirectories(home)
		assert.Equal(t, filepath.Join(home, "Fotos"), dirs[0])
	})

	t.Run("From user-dirs.dirs", func(t *testing.T) {
		home := isolate(t)
		cfgDir := filepath.Join(home, ".config")
		require.NoError(t, os.MkdirAll(cfgDir, 0755))
		content := "# generated\nXDG_PICTURES_DIR=\"$HOME/Bilder\"\nXDG_DOWNLOAD_DIR=\"$HOME/\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "user-dirs.dirs"), []byte(content), 0644))

		dirs := WellKnownDirectories(home)
		assert.Equal(t, home+"/Bilder", dirs[0])
		// download dir pointing at $HOME is treated as unset
		assert.Len(t, dirs, 5)
	})
}

func TestResolveNotesPath(t *testing.T) {
	assert.Equal(t, "/home/u/.notia_notes.json", ResolveNotesPath("/home/u/.notia_notes.json", false))

	inTemp := filepath.Join(t.TempDir(), "n.json")
	assert.Equal(t, inTemp, ResolveNotesPath(inTemp, true))

	got := ResolveNotesPath("/home/u/.notia_notes.json", true)
	assert.Equal(t, filepath.Join(os.TempDir(), "notia-dev", ".notia_notes.json"), got)
}

func TestResolve(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		home := isolate(t)
		s, err := Resolve(WithHome(home), WithConfigFile(filepath.Join(home, "none.yaml")))
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, NotesFileName), s.NotesFile)
		assert.Equal(t, discovery.DefaultExtensions, s.Extensions)
		assert.False(t, s.Sorted)
		assert.Len(t, s.Directories, 4)
	})

	t.Run("Config File Then Options", func(t *testing.T) {
		home := isolate(t)
		cfgPath := filepath.Join(home, "config.yaml")
		require.NoError(t, SaveConfig(cfgPath, &Config{
			NotesFile:   "~/custom.json",
			Directories: []string{"~/Camera"},
			Extensions:  []string{"heic"},
			Sort:        true,
		}))

		s, err := Resolve(WithHome(home), WithConfigFile(cfgPath))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "custom.json"), s.NotesFile)
		assert.Equal(t, filepath.Join(home, "Camera"), s.Directories[len(s.Directories)-1])
		assert.Equal(t, []string{"heic"}, s.Extensions)
		assert.True(t, s.Sorted)

		s, err = Resolve(WithHome(home), WithConfigFile(cfgPath),
			WithNotesFile(filepath.Join(home, "opt.json")),
			WithExtensions("png"),
			WithSorted(false),
			WithOnlyDirectories("/only"),
		)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "opt.json"), s.NotesFile)
		assert.Equal(t, []string{"png"}, s.Extensions)
		assert.False(t, s.Sorted)
		assert.Equal(t, []string{"/only"}, s.Directories)
	})

	t.Run("Broken Explicit Config Is An Error", func(t *testing.T) {
		home := isolate(t)
		cfgPath := filepath.Join(home, "config.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte("directories: [unterminated"), 0644))

		_, err := Resolve(WithHome(home), WithConfigFile(cfgPath))
		assert.Error(t, err)

		_, err = Resolve(WithHome(home), WithConfigFile(cfgPath), WithoutConfigFile())
		assert.NoError(t, err)
	})

	t.Run("Broken Default Config Falls Back", func(t *testing.T) {
		home := isolate(t)
		cfgPath := DefaultConfigPath()
		require.NoError(t, os.MkdirAll(filepath.Dir(cfgPath), 0755))
		require.NoError(t, os.WriteFile(cfgPath, []byte("directories: [unterminated"), 0644))

		s, err := Resolve(WithHome(home))
		require.NoError(t, err)
		assert.Equal(t, cfgPath, s.ConfigFile)
		assert.Equal(t, discovery.DefaultExtensions, s.Extensions)
		assert.Len(t, s.Directories, 4)

		app, err := Open(WithHome(home))
		require.NoError(t, err)
		assert.NotNil(t, app.Store)
	})

	t.Run("Options Do Not Alias Caller Slices", func(t *testing.T) {
		home := isolate(t)
		dirs := []string{"~/Camera"}
		exts := []string{"png"}

		s, err := Resolve(WithHome(home), WithoutConfigFile(),
			WithOnlyDirectories(dirs...), WithExtensions(exts...))
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(home, "Camera")}, s.Directories)
		assert.Equal(t, []string{"~/Camera"}, dirs)

		s.Extensions[0] = "gif"
		assert.Equal(t, []string{"png"}, exts)
	})
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	home := isolate(t)
	pics := filepath.Join(home, "Pictures")
	require.NoError(t, os.MkdirAll(pics, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(pics, "a.jpg"), []byte("x"), 0644))

	opts := []Option{WithHome(home), WithoutConfigFile(), WithSorted(true)}

	app, err := Open(opts...)
	require.NoError(t, err)
	photos := app.Scanner.Scan()
	require.Equal(t, []string{filepath.Join(pics, "a.jpg")}, photos)

	app.Store.AddOrUpdateNote(ctx, photos[0], "hi")
	assert.FileExists(t, filepath.Join(home, NotesFileName))

	store, err := New(opts...)
	require.NoError(t, err)
	got, ok := store.GetNote(photos[0])
	require.True(t, ok)
	assert.Equal(t, "hi", got.Note)

	scanner, err := NewScanner(opts...)
	require.NoError(t, err)
	assert.Equal(t, photos, scanner.Scan())
}

type stubRepo struct{ saved []core.Annotation }

func (s *stubRepo) Load(context.Context) ([]core.Annotation, error) {
	return []core.Annotation{{Path: "/x.jpg", Note: "stub"}}, nil
}

func (s *stubRepo) Save(_ context.Context, a []core.Annotation) error {
	s.saved = a
	return nil
}

func TestOpen_InjectedRepository(t *testing.T) {
	home := isolate(t)
	repo := &stubRepo{}

	app, err := Open(WithHome(home), WithoutConfigFile(), WithRepository(repo))
	require.NoError(t, err)
	_, ok := app.Store.GetNote("/x.jpg")
	assert.True(t, ok)
	assert.NoFileExists(t, filepath.Join(home, NotesFileName))

	app, err = Open(WithHome(home), WithoutConfigFile(), WithRepository(repo), WithoutLoad())
	require.NoError(t, err)
	assert.Equal(t, 0, app.Store.Len())
}
