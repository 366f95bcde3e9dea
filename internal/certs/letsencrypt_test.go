package certs

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCert(t *testing.T, dir string, notAfter time.Time) {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "example.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	require.NoError(t, os.MkdirAll(dir, 0755))
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fullchain.pem"), pemBytes, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "privkey.pem"), []byte("key"), 0600))
}

func TestHTTPSDefaults(t *testing.T) {
	l := NewLetsEncrypt("/etc/letsencrypt/live")
	got := l.HTTPSDefaults("example.com")

	assert.Contains(t, got, "\tssl_certificate /etc/letsencrypt/live/example.com/fullchain.pem;\n")
	assert.Contains(t, got, "\tssl_certificate_key /etc/letsencrypt/live/example.com/privkey.pem;\n")
	assert.Contains(t, got, "\tssl_protocols TLSv1.2 TLSv1.3;\n")
}

func TestInfo(t *testing.T) {
	live := t.TempDir()
	l := NewLetsEncrypt(live)

	info, err := l.Info("example.com")
	require.NoError(t, err)
	assert.False(t, info.Exists)

	writeCert(t, filepath.Join(live, "example.com"), time.Now().Add(90*24*time.Hour))
	info, err = l.Info("example.com")
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.InDelta(t, 89, info.DaysLeft, 1)
}

func TestCheck(t *testing.T) {
	live := t.TempDir()
	l := NewLetsEncrypt(live)

	assert.Contains(t, l.Check("missing.org", 14), "no certificate")

	writeCert(t, filepath.Join(live, "soon.org"), time.Now().Add(3*24*time.Hour))
	assert.Contains(t, l.Check("soon.org", 14), "expires in")

	writeCert(t, filepath.Join(live, "fine.org"), time.Now().Add(60*24*time.Hour))
	assert.Empty(t, l.Check("fine.org", 14))

	require.NoError(t, os.MkdirAll(filepath.Join(live, "broken.org"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(live, "broken.org", "fullchain.pem"), []byte("junk"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(live, "broken.org", "privkey.pem"), []byte("k"), 0600))
	assert.Contains(t, l.Check("broken.org", 14), "PEM")
}
