package config

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readDocument decodes the raw JSON document at path.
func readDocument(t *testing.T, fs afero.Fs, path string) map[string]interface{} {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, nil)

	cfg, err := store.Load("config.json")

	require.NoError(t, err, "first run must not fail")
	assert.Equal(t, Default(), cfg)

	doc := readDocument(t, fs, "config.json")
	assert.Equal(t, map[string]interface{}{
		"host":       "0.0.0.0",
		"port":       float64(8080),
		"image_root": "./images",
	}, doc)
}

func TestLoadCreatesParentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, nil)

	_, err := store.Load("/etc/randpic/config.json")
	require.NoError(t, err)

	exists, err := afero.Exists(fs, "/etc/randpic/config.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoadExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.json",
		[]byte(`{"host": "127.0.0.1", "port": 9090, "image_root": "/srv/pics"}`), 0o644))

	cfg, err := NewStore(fs, nil).Load("config.json")

	require.NoError(t, err)
	assert.Equal(t, &Config{Host: "127.0.0.1", Port: 9090, ImageRoot: "/srv/pics"}, cfg)
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{name: "malformed json", document: `{"host": "0.0.0.0", "port": 8080,`},
		{name: "not an object", document: `["0.0.0.0", 8080, "./images"]`},
		{name: "empty document", document: ``},
		{name: "missing port", document: `{"host": "0.0.0.0", "image_root": "./images"}`},
		{name: "missing image root", document: `{"host": "0.0.0.0", "port": 8080}`},
		{name: "legacy key name", document: `{"host": "0.0.0.0", "port": 8080, "image_folder": "./images"}`},
		{name: "unknown field", document: `{"host": "0.0.0.0", "port": 8080, "image_root": "./images", "debug": true}`},
		{name: "port as string", document: `{"host": "0.0.0.0", "port": "8080", "image_root": "./images"}`},
		{name: "fractional port", document: `{"host": "0.0.0.0", "port": 80.5, "image_root": "./images"}`},
		{name: "port out of range", document: `{"host": "0.0.0.0", "port": 70000, "image_root": "./images"}`},
		{name: "uppercase key", document: `{"HOST": "0.0.0.0", "port": 8080, "image_root": "./images"}`},
		{name: "invalid host", document: `{"host": "not a host!", "port": 8080, "image_root": "./images"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "config.json", []byte(tc.document), 0o644))

			cfg, err := NewStore(fs, nil).Load("config.json")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfigParse)
			assert.Contains(t, err.Error(), "config.json", "error should name the file")
			assert.Nil(t, cfg)
		})
	}
}

func TestPersistOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, nil)
	require.NoError(t, store.Persist("config.json", Default()))

	updated := &Config{Host: "localhost", Port: 8181, ImageRoot: "/mnt/photos"}
	require.NoError(t, store.Persist("config.json", updated))

	loaded, err := store.Load("config.json")
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestPersistWriteError(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewStore(fs, nil).Persist("config.json", Default())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigWrite)
}

func TestLoadMissingFileOnReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	cfg, err := NewStore(fs, nil).Load("config.json")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigWrite)
	assert.Nil(t, cfg)
}

func TestPersistRejectsInvalidConfig(t *testing.T) {
	fs := afero.NewMemMapFs()

	err := NewStore(fs, nil).Persist("config.json", &Config{Host: "0.0.0.0", Port: 8080})

	assert.ErrorIs(t, err, ErrConfigWrite)
	exists, _ := afero.Exists(fs, "config.json")
	assert.False(t, exists, "invalid config must not reach disk")
}

func TestOverrideThenPersistKeepsHostAndPort(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "config.json",
		[]byte(`{"host": "127.0.0.1", "port": 9090, "image_root": "./images"}`), 0o644))
	store := NewStore(fs, nil)

	cfg, err := store.Load("config.json")
	require.NoError(t, err)
	require.NoError(t, store.Persist("config.json", ApplyOverride(cfg, "/data/new-root")))

	doc := readDocument(t, fs, "config.json")
	assert.Equal(t, "127.0.0.1", doc["host"])
	assert.Equal(t, float64(9090), doc["port"])
	assert.Equal(t, "/data/new-root", doc["image_root"])
	assert.Len(t, doc, 3)
}
