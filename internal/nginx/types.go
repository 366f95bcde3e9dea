package nginx

import (
	"fmt"
	"strings"

	"njeeny/internal/cms"
	"njeeny/internal/schema"
	"njeeny/internal/settings"
)

// RedirectBlock is a server block that answers every request with a 301 to
// the canonical scheme and host.
type RedirectBlock struct {
	Domain            string
	ListenHTTPS       bool
	IncludeSubdomains bool
	ForceWWW          bool
	SecureDestination bool
}

// Directive is one config line: name followed by its values.
type Directive struct {
	Name   string
	Values []string
}

// HTTPSDefaultsFunc returns extra lines for TLS listeners (certificates,
// protocols, HSTS). The text is inserted verbatim, formatted like
// RenderConfigLines output. An empty string adds nothing.
type HTTPSDefaultsFunc func(domain string) string

// NoHTTPSDefaults is the default hook: it adds nothing.
func NoHTTPSDefaults(string) string { return "" }

// Site is everything the renderer needs from one wizard run.
type Site struct {
	Domain     string
	Root       string
	Subdomains bool
	HTTPS      bool
	WWW        bool
	CMS        cms.Kind
	Advagg     bool
	PHP        bool
}

// SiteFromSettings reads the answers the renderer depends on.
// domain, subdomains and https are required; www, advagg and php default to
// "not forced" when absent.
func SiteFromSettings(st settings.Settings) (Site, error) {
	var missing []string

	domain, ok := st.Text(schema.KeyDomain)
	domain = strings.TrimSpace(domain)
	if !ok || domain == "" {
		missing = append(missing, schema.KeyDomain)
	}
	subdomains, ok := st.Flag(schema.KeySubdomains)
	if !ok {
		missing = append(missing, schema.KeySubdomains)
	}
	https, ok := st.Flag(schema.KeyHTTPS)
	if !ok {
		missing = append(missing, schema.KeyHTTPS)
	}
	if len(missing) > 0 {
		return Site{}, fmt.Errorf("%w: missing %s", ErrRedirectIncomplete, strings.Join(missing, ", "))
	}

	www, _ := st.Flag(schema.KeyWWW)
	advagg, _ := st.Flag(schema.KeyAdvagg)
	php, _ := st.Flag(schema.KeyPHP)
	root, _ := st.Text(schema.KeyPath)

	kind := cms.None
	if label, ok := st.Text(schema.KeyCMS); ok {
		k, err := cms.ParseKind(label)
		if err != nil {
			return Site{}, fmt.Errorf("cms answer: %w", err)
		}
		kind = k
	}

	return Site{
		Domain:     strings.ToLower(domain),
		Root:       strings.TrimSpace(root),
		Subdomains: subdomains,
		HTTPS:      https,
		WWW:        www,
		CMS:        kind,
		Advagg:     advagg,
		PHP:        php,
	}, nil
}
