package store

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

// Ext is the file extension of template files.
const Ext = ".tpl"

//go:embed defaults/*.tpl
var defaults embed.FS

// FSStore reads <name>.tpl files from a filesystem.
type FSStore struct {
	fsys fs.FS
	desc string
}

func NewFSStore(fsys fs.FS, desc string) *FSStore {
	return &FSStore{fsys: fsys, desc: desc}
}

// NewDirStore reads templates from dir on disk.
func NewDirStore(dir string) *FSStore {
	return NewFSStore(os.DirFS(dir), dir)
}

// Builtin serves the templates compiled into the binary.
func Builtin() *FSStore {
	sub, err := fs.Sub(defaults, "defaults")
	if err != nil {
		// the embed pattern above guarantees the directory exists
		panic(err)
	}
	return NewFSStore(sub, "builtin")
}

func (s *FSStore) Load(name string) (string, error) {
	if !validName(name) {
		return "", fmt.Errorf("%w: invalid template name %q", ErrTemplateNotFound, name)
	}
	b, err := fs.ReadFile(s.fsys, name+Ext)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %q in %s", ErrTemplateNotFound, name, s.desc)
		}
		return "", fmt.Errorf("%w: %q in %s: %v", ErrTemplateUnreadable, name, s.desc, err)
	}
	return string(b), nil
}

// Names lists the template names available in the store, sorted.
// A store whose root does not exist has no names.
func (s *FSStore) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*"+Ext)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, Ext))
	}
	sort.Strings(names)
	return names, nil
}

func validName(name string) bool {
	return name != "" && fs.ValidPath(name) && path.Base(name) == name
}
