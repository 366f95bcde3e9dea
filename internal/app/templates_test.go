package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"njeeny/internal/config"
	"njeeny/internal/store"
)

func TestOpenTemplatesOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static.tpl"), []byte("from dir"), 0644))

	paths := config.Paths{
		TemplatesDir: dir,
		TemplatesDB:  filepath.Join(t.TempDir(), "t.db"),
	}

	ts, closeFn, err := OpenTemplates(paths, nil)
	require.NoError(t, err)

	got, err := ts.Load("static")
	require.NoError(t, err)
	assert.Equal(t, "from dir", got)

	got, err = ts.Load("server")
	require.NoError(t, err)
	assert.Contains(t, got, "{{DIRECTIVES}}")
	require.NoError(t, closeFn())

	// the database shadows the directory once it holds the name
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static.tpl"), []byte("imported"), 0644))
	changed, err := ImportTemplates(paths, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"static"}, changed)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "static.tpl"), []byte("edited later"), 0644))

	ts, closeFn, err = OpenTemplates(paths, nil)
	require.NoError(t, err)
	defer closeFn()
	got, err = ts.Load("static")
	require.NoError(t, err)
	assert.Equal(t, "imported", got)
}

func TestImportBuiltinAndList(t *testing.T) {
	paths := config.Paths{TemplatesDB: filepath.Join(t.TempDir(), "t.db")}

	changed, err := ImportTemplates(paths, "")
	require.NoError(t, err)
	names, err := store.Builtin().Names()
	require.NoError(t, err)
	assert.Equal(t, names, changed)

	list, err := ListTemplates(paths)
	require.NoError(t, err)
	assert.Len(t, list, len(names))
}

func TestTemplateDBNotConfigured(t *testing.T) {
	_, err := ImportTemplates(config.Paths{}, "")
	assert.Error(t, err)
	_, err = ListTemplates(config.Paths{})
	assert.Error(t, err)
}
