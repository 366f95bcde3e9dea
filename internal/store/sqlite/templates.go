package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"njeeny/internal/store"
	"njeeny/internal/util/hashx"
)

// Load returns the body of the named template.
func (s *Store) Load(name string) (string, error) {
	var body string
	err := s.db.QueryRow(`SELECT body FROM templates WHERE name=?`, name).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %q in sqlite", store.ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("%w: %q in sqlite: %v", store.ErrTemplateUnreadable, name, err)
	}
	return body, nil
}

// Put inserts or replaces a template. It returns changed=false when the
// stored body is already identical.
func (s *Store) Put(name, body string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("template name is required")
	}
	sum := hashx.Sha256Hex([]byte(body))

	res, err := s.db.Exec(`
		INSERT INTO templates(name, body, checksum)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			body=excluded.body,
			checksum=excluded.checksum,
			updated_at=strftime('%Y-%m-%dT%H:%M:%fZ','now')
		WHERE templates.checksum != excluded.checksum
	`, name, body, sum)
	if err != nil {
		return false, fmt.Errorf("put template %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns every stored template ordered by name.
func (s *Store) List() ([]store.Template, error) {
	rows, err := s.db.Query(`
		SELECT name, body, checksum, updated_at
		FROM templates
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Template
	for rows.Next() {
		var t store.Template
		var updated string
		if err := rows.Scan(&t.Name, &t.Body, &t.Checksum, &updated); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, updated); err == nil {
			t.UpdatedAt = ts
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Import copies every template of src into the database and returns the
// names that changed.
func (s *Store) Import(src Source) ([]string, error) {
	names, err := src.Names()
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	var changed []string
	for _, name := range names {
		body, err := src.Load(name)
		if err != nil {
			return changed, err
		}
		ok, err := s.Put(name, body)
		if err != nil {
			return changed, err
		}
		if ok {
			changed = append(changed, name)
		}
	}
	return changed, nil
}

// Source is a template store that can enumerate its names.
type Source interface {
	store.TemplateStore
	Names() ([]string, error)
}
