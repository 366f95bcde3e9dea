package cms

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the closed set of content management systems the wizard knows about.
type Kind int

const (
	None Kind = iota
	Drupal
	Wordpress
)

// Autodetect is the answer that asks the wizard to resolve the kind from marker files.
const Autodetect = "autodetect"

var kindNames = map[Kind]string{
	None:      "none",
	Drupal:    "drupal",
	Wordpress: "wordpress",
}

// Kinds lists every Kind in a stable order.
func Kinds() []Kind {
	return []Kind{Drupal, Wordpress, None}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("cms(%d)", int(k))
}

// ParseKind maps a choice label ("drupal", "Wordpress", ...) to a Kind.
// The autodetect sentinel is not a kind and is rejected.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return None, fmt.Errorf("unknown cms %q", s)
}

// Detection is the result of probing a site path.
type Detection struct {
	Kind Kind
	// DrupalVersion is 7 or 8 when Kind is Drupal, 0 otherwise.
	// Nothing consumes it yet.
	DrupalVersion int
}

const (
	drupalSettingsMarker = "sites/default/default.settings.php"
	drupalServicesMarker = "sites/default/default.services.yml"
	wordpressMarker      = "wp-config.php"
)

// Detect classifies the site under path by the presence of marker files.
//
// Both probes always run and the Wordpress probe runs last, so a tree carrying
// markers of both systems is reported as Wordpress. An empty path probes the
// current working directory.
func Detect(path string) Detection {
	d := Detection{Kind: None}

	if fileExists(filepath.Join(path, drupalSettingsMarker)) {
		d.Kind = Drupal
		d.DrupalVersion = 7
		if fileExists(filepath.Join(path, drupalServicesMarker)) {
			d.DrupalVersion = 8
		}
	}

	if fileExists(filepath.Join(path, wordpressMarker)) {
		d.Kind = Wordpress
		d.DrupalVersion = 0
	}

	return d
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
