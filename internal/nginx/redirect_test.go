package nginx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"njeeny/internal/schema"
	"njeeny/internal/settings"
)

func TestGenerateRedirectsDecisionTable(t *testing.T) {
	tests := []struct {
		name       string
		subdomains bool
		https      bool
		www        bool
		want       []RedirectBlock
	}{
		{
			name:  "www and https",
			https: true,
			www:   true,
			want: []RedirectBlock{
				{Domain: "example.com", ListenHTTPS: false, ForceWWW: true, SecureDestination: true},
				{Domain: "example.com", ListenHTTPS: true, ForceWWW: true, SecureDestination: true},
			},
		},
		{
			name: "www only",
			www:  true,
			want: []RedirectBlock{
				{Domain: "example.com", ListenHTTPS: false, ForceWWW: true, SecureDestination: false},
			},
		},
		{
			name:       "https only with subdomains",
			subdomains: true,
			https:      true,
			want: []RedirectBlock{
				{Domain: "example.com", ListenHTTPS: false, IncludeSubdomains: true, ForceWWW: false, SecureDestination: true},
			},
		},
		{
			name:       "neither",
			subdomains: true,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateRedirects("example.com", tt.subdomains, tt.https, tt.www)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateRedirectsIsPure(t *testing.T) {
	a := GenerateRedirects("example.com", true, true, true)
	b := GenerateRedirects("example.com", true, true, true)
	assert.Equal(t, a, b)

	a[0].Domain = "mutated"
	c := GenerateRedirects("example.com", true, true, true)
	assert.Equal(t, "example.com", c[0].Domain)
}

func answers(domain string, subdomains, https int, extra map[string]int) settings.Settings {
	st := settings.New()
	st.Set(schema.KeyDomain, settings.TextValue(domain))
	st.Set(schema.KeyPath, settings.TextValue("/srv/"+domain))
	yesNo := []string{"Yes", "No"}
	if subdomains >= 0 {
		st.Set(schema.KeySubdomains, settings.ChoiceValue(subdomains, yesNo[subdomains]))
	}
	if https >= 0 {
		st.Set(schema.KeyHTTPS, settings.ChoiceValue(https, yesNo[https]))
	}
	for k, v := range extra {
		st.Set(k, settings.ChoiceValue(v, yesNo[v]))
	}
	return st
}

func TestRedirectsFromSettings(t *testing.T) {
	// foo.org, no subdomains, https not forced, www forced
	st := answers("foo.org", 1, 1, map[string]int{schema.KeyWWW: 0})
	got, err := RedirectsFromSettings(st)
	require.NoError(t, err)
	assert.Equal(t, []RedirectBlock{
		{Domain: "foo.org", ListenHTTPS: false, IncludeSubdomains: false, ForceWWW: true, SecureDestination: false},
	}, got)
}

func TestRedirectsFromSettingsWWWAbsent(t *testing.T) {
	st := answers("example.com", 0, 1, nil)
	got, err := RedirectsFromSettings(st)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedirectsFromSettingsIncomplete(t *testing.T) {
	tests := []struct {
		name    string
		st      settings.Settings
		missing string
	}{
		{"no https", answers("example.com", 0, -1, nil), "https"},
		{"no subdomains", answers("example.com", -1, 0, nil), "subdomains"},
		{"empty domain", answers("  ", 0, 0, nil), "domain"},
		{"nothing", settings.New(), "domain, subdomains, https"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RedirectsFromSettings(tt.st)
			require.ErrorIs(t, err, ErrRedirectIncomplete)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestSiteFromSettings(t *testing.T) {
	st := answers("Example.COM", 0, 0, map[string]int{schema.KeyWWW: 1, schema.KeyAdvagg: 0})
	st.Set(schema.KeyCMS, settings.TextValue("drupal"))

	site, err := SiteFromSettings(st)
	require.NoError(t, err)
	assert.Equal(t, "example.com", site.Domain)
	assert.Equal(t, "/srv/Example.COM", site.Root)
	assert.True(t, site.Subdomains)
	assert.True(t, site.HTTPS)
	assert.False(t, site.WWW)
	assert.True(t, site.Advagg)
	assert.Equal(t, "drupal", site.CMS.String())
}

func TestSiteFromSettingsUnresolvedCMS(t *testing.T) {
	st := answers("example.com", 0, 0, nil)
	st.Set(schema.KeyCMS, settings.TextValue("autodetect"))
	_, err := SiteFromSettings(st)
	assert.Error(t, err)
}
