package app

import (
	"fmt"

	"go.uber.org/zap"

	"njeeny/internal/config"
	"njeeny/internal/store"
	"njeeny/internal/store/sqlite"
)

// OpenTemplates builds the template lookup chain: sqlite database (when
// configured), then templates.dir, then the builtin set. The returned func
// releases the database.
func OpenTemplates(paths config.Paths, log *zap.Logger) (store.TemplateStore, func() error, error) {
	if log == nil {
		log = zap.NewNop()
	}
	chain := store.Chain{}
	closeFn := func() error { return nil }

	if paths.TemplatesDB != "" {
		db, err := openDB(paths.TemplatesDB)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, db)
		closeFn = db.Close
		log.Debug("templates: sqlite", zap.String("path", paths.TemplatesDB))
	}
	if paths.TemplatesDir != "" {
		chain = append(chain, store.NewDirStore(paths.TemplatesDir))
		log.Debug("templates: dir", zap.String("dir", paths.TemplatesDir))
	}
	chain = append(chain, store.Builtin())

	return chain, closeFn, nil
}

// ImportTemplates copies <name>.tpl files from dir into the sqlite template
// database. An empty dir imports the builtin set.
func ImportTemplates(paths config.Paths, dir string) ([]string, error) {
	if paths.TemplatesDB == "" {
		return nil, fmt.Errorf("templates.sqlite_path is not configured")
	}
	db, err := openDB(paths.TemplatesDB)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	src := store.Builtin()
	if dir != "" {
		src = store.NewDirStore(dir)
	}
	return db.Import(src)
}

// ListTemplates returns the templates stored in the sqlite database.
func ListTemplates(paths config.Paths) ([]store.Template, error) {
	if paths.TemplatesDB == "" {
		return nil, fmt.Errorf("templates.sqlite_path is not configured")
	}
	db, err := openDB(paths.TemplatesDB)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.List()
}

func openDB(path string) (*sqlite.Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("template db: %w", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("template db migrate: %w", err)
	}
	return db, nil
}
