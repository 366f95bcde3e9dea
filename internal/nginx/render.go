package nginx

import (
	"fmt"
	"sort"
	"strings"

	"njeeny/internal/cms"
)

// TemplateLoader returns the raw text of a named template.
type TemplateLoader interface {
	Load(name string) (string, error)
}

// Template placeholders understood by the bundled templates.
const (
	PlaceholderDomain      = "{{DOMAIN}}"
	PlaceholderDirectives  = "{{DIRECTIVES}}"
	PlaceholderLocations   = "{{LOCATIONS}}"
	PlaceholderFastCGIPass = "{{FASTCGI_PASS}}"
)

const requestURI = "$request_uri"

type Renderer struct {
	templates     TemplateLoader
	fastcgiPass   string
	httpsDefaults HTTPSDefaultsFunc
}

// NewRenderer returns a renderer loading templates from tl. A nil hook means
// NoHTTPSDefaults.
func NewRenderer(tl TemplateLoader, fastcgiPass string, hook HTTPSDefaultsFunc) *Renderer {
	if hook == nil {
		hook = NoHTTPSDefaults
	}
	return &Renderer{templates: tl, fastcgiPass: fastcgiPass, httpsDefaults: hook}
}

// RenderConfigLines writes one tab-indented "name v1 v2;" line per directive.
func RenderConfigLines(ds []Directive) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString("\t")
		b.WriteString(d.Name)
		if len(d.Values) > 0 {
			b.WriteString(" ")
			b.WriteString(strings.Join(d.Values, " "))
		}
		b.WriteString(";\n")
	}
	return b.String()
}

// RenderRedirectBlock formats b as a server stanza.
func RenderRedirectBlock(b RedirectBlock, hook HTTPSDefaultsFunc) string {
	if hook == nil {
		hook = NoHTTPSDefaults
	}

	scheme := "http"
	if b.SecureDestination {
		scheme = "https"
	}
	host := b.Domain
	if b.ForceWWW {
		host = "www." + b.Domain
	}

	var out strings.Builder
	out.WriteString("server {\n")
	out.WriteString(RenderConfigLines([]Directive{
		listenDirective(b.ListenHTTPS),
		serverNameDirective(b.Domain, b.IncludeSubdomains),
	}))
	if b.ListenHTTPS {
		out.WriteString(fragment(hook(b.Domain)))
	}
	out.WriteString(RenderConfigLines([]Directive{
		{Name: "return", Values: []string{"301", scheme + "://" + host + requestURI}},
	}))
	out.WriteString("}\n")
	return out.String()
}

// Substitute replaces every occurrence of each key in text by its value.
// Replacement is literal and single pass: inserted values are not scanned again.
func Substitute(text string, subs map[string]string) string {
	if len(subs) == 0 {
		return text
	}

	keys := make([]string, 0, len(subs))
	for k := range subs {
		if k != "" {
			keys = append(keys, k)
		}
	}
	// longest key first so overlapping keys resolve the same way every run
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, subs[k])
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// RenderTemplate loads the named template and applies subs to it.
func (r *Renderer) RenderTemplate(name string, subs map[string]string) (string, error) {
	text, err := r.templates.Load(name)
	if err != nil {
		return "", err
	}
	return Substitute(text, subs), nil
}

// RenderSite renders the redirect blocks followed by the primary server block.
// Nothing is returned unless every part rendered.
func (r *Renderer) RenderSite(s Site) (string, error) {
	if s.Domain == "" {
		return "", fmt.Errorf("%w: missing domain", ErrRedirectIncomplete)
	}
	if s.Root == "" {
		return "", fmt.Errorf("site %s: path is required", s.Domain)
	}

	var blocks []string
	for _, rb := range s.Redirects() {
		blocks = append(blocks, RenderRedirectBlock(rb, r.httpsDefaults))
	}

	locations, err := r.renderLocations(s)
	if err != nil {
		return "", err
	}

	directives := RenderConfigLines(s.directives())
	if s.HTTPS {
		directives += fragment(r.httpsDefaults(s.Domain))
	}

	server, err := r.RenderTemplate("server", map[string]string{
		PlaceholderDirectives: directives,
		PlaceholderLocations:  locations,
		PlaceholderDomain:     s.Domain,
	})
	if err != nil {
		return "", fmt.Errorf("render server block: %w", err)
	}
	blocks = append(blocks, server)

	return fmt.Sprintf("# %s\n", s.Domain) + strings.Join(blocks, "\n"), nil
}

// LocationTemplates lists the location templates for s, in output order.
func (s Site) LocationTemplates() []string {
	switch s.CMS {
	case cms.Drupal:
		if s.Advagg {
			return []string{"advagg", "drupal"}
		}
		return []string{"drupal"}
	case cms.Wordpress:
		return []string{"wordpress"}
	default:
		if s.PHP {
			return []string{"php"}
		}
		return []string{"static"}
	}
}

func (r *Renderer) renderLocations(s Site) (string, error) {
	subs := map[string]string{
		PlaceholderDomain:      s.Domain,
		PlaceholderFastCGIPass: r.fastcgiPass,
	}
	var parts []string
	for _, name := range s.LocationTemplates() {
		text, err := r.RenderTemplate(name, subs)
		if err != nil {
			return "", fmt.Errorf("render %s locations: %w", name, err)
		}
		parts = append(parts, fragment(text))
	}
	return strings.Join(parts, "\n"), nil
}

func (s Site) directives() []Directive {
	host := s.Domain
	if s.WWW {
		host = "www." + s.Domain
	}
	names := []string{host}
	// with www forced the redirect blocks own *.D on every port this block listens on
	if s.Subdomains && !s.WWW {
		names = append(names, "*."+s.Domain)
	}

	index := []string{"index.php"}
	if s.CMS == cms.None && !s.PHP {
		index = []string{"index.html", "index.htm"}
	}

	return []Directive{
		listenDirective(s.HTTPS),
		{Name: "server_name", Values: names},
		{Name: "root", Values: []string{s.Root}},
		{Name: "index", Values: index},
		{Name: "access_log", Values: []string{"/var/log/nginx/" + s.Domain + ".access.log"}},
		{Name: "error_log", Values: []string{"/var/log/nginx/" + s.Domain + ".error.log"}},
	}
}

func listenDirective(https bool) Directive {
	if https {
		return Directive{Name: "listen", Values: []string{"443", "ssl", "http2"}}
	}
	return Directive{Name: "listen", Values: []string{"80"}}
}

func serverNameDirective(domain string, subdomains bool) Directive {
	names := []string{domain}
	if subdomains {
		names = append(names, "*."+domain)
	}
	return Directive{Name: "server_name", Values: names}
}

// fragment makes sure non-empty text ends with a newline.
func fragment(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
