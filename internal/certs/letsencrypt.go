package certs

import (
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"njeeny/internal/nginx"
)

// LetsEncrypt points generated HTTPS blocks at certbot's live directory.
type LetsEncrypt struct {
	Live string // /etc/letsencrypt/live
}

// CertInfo holds certificate information
type CertInfo struct {
	Domain   string
	CertPath string
	KeyPath  string
	NotAfter time.Time
	DaysLeft int
	Exists   bool
}

func NewLetsEncrypt(live string) *LetsEncrypt {
	return &LetsEncrypt{Live: live}
}

func (l *LetsEncrypt) certPath(domain string) string {
	return filepath.Join(l.Live, domain, "fullchain.pem")
}

func (l *LetsEncrypt) keyPath(domain string) string {
	return filepath.Join(l.Live, domain, "privkey.pem")
}

// HTTPSDefaults renders the certificate and TLS directives for a :443 block.
func (l *LetsEncrypt) HTTPSDefaults(domain string) string {
	return nginx.RenderConfigLines([]nginx.Directive{
		{Name: "ssl_certificate", Values: []string{l.certPath(domain)}},
		{Name: "ssl_certificate_key", Values: []string{l.keyPath(domain)}},
		{Name: "ssl_protocols", Values: []string{"TLSv1.2", "TLSv1.3"}},
		{Name: "ssl_prefer_server_ciphers", Values: []string{"off"}},
		{Name: "ssl_session_cache", Values: []string{"shared:SSL:10m"}},
	})
}

// Info reports whether the certificate for domain is present and when it
// expires. A missing certificate is not an error.
func (l *LetsEncrypt) Info(domain string) (*CertInfo, error) {
	info := &CertInfo{
		Domain:   domain,
		CertPath: l.certPath(domain),
		KeyPath:  l.keyPath(domain),
	}

	if _, err := os.Stat(info.CertPath); os.IsNotExist(err) {
		return info, nil
	}
	if _, err := os.Stat(info.KeyPath); os.IsNotExist(err) {
		return info, nil
	}
	info.Exists = true

	certData, err := os.ReadFile(info.CertPath)
	if err != nil {
		return nil, fmt.Errorf("read cert file: %w", err)
	}

	block, _ := pem.Decode(certData)
	if block == nil {
		return nil, fmt.Errorf("failed to decode PEM block in %s", info.CertPath)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	info.NotAfter = cert.NotAfter
	info.DaysLeft = int(time.Until(cert.NotAfter).Hours() / 24)
	return info, nil
}

// Check returns a warning for a missing or soon-expiring certificate, or "".
func (l *LetsEncrypt) Check(domain string, minDays int) string {
	info, err := l.Info(domain)
	switch {
	case err != nil:
		return fmt.Sprintf("certificate for %s: %v", domain, err)
	case !info.Exists:
		return fmt.Sprintf("no certificate for %s in %s (run certbot before enabling)", domain, l.Live)
	case info.DaysLeft <= minDays:
		return fmt.Sprintf("certificate for %s expires in %d days", domain, info.DaysLeft)
	}
	return ""
}
