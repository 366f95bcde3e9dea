package nginx

import (
	"errors"

	"njeeny/internal/settings"
)

// ErrRedirectIncomplete means the settings lack an answer the generator needs.
var ErrRedirectIncomplete = errors.New("redirect generation incomplete")

// GenerateRedirects returns the redirect blocks needed to canonicalize host
// (www) and scheme (https):
//
//	www  https  blocks
//	yes  yes    :80 -> https://www, :443 -> https://www
//	yes  no     :80 -> http://www
//	no   yes    :80 -> https://
//	no   no     none
func GenerateRedirects(domain string, subdomains, https, www bool) []RedirectBlock {
	switch {
	case www && https:
		return []RedirectBlock{
			{Domain: domain, ListenHTTPS: false, IncludeSubdomains: subdomains, ForceWWW: true, SecureDestination: true},
			{Domain: domain, ListenHTTPS: true, IncludeSubdomains: subdomains, ForceWWW: true, SecureDestination: true},
		}
	case www:
		return []RedirectBlock{
			{Domain: domain, ListenHTTPS: false, IncludeSubdomains: subdomains, ForceWWW: true, SecureDestination: false},
		}
	case https:
		return []RedirectBlock{
			{Domain: domain, ListenHTTPS: false, IncludeSubdomains: subdomains, ForceWWW: false, SecureDestination: true},
		}
	default:
		return nil
	}
}

// RedirectsFromSettings is GenerateRedirects over collected answers.
func RedirectsFromSettings(st settings.Settings) ([]RedirectBlock, error) {
	site, err := SiteFromSettings(st)
	if err != nil {
		return nil, err
	}
	return site.Redirects(), nil
}

func (s Site) Redirects() []RedirectBlock {
	return GenerateRedirects(s.Domain, s.Subdomains, s.HTTPS, s.WWW)
}
