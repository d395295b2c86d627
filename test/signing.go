package test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// SigningMaterial is a key pair and self-signed certificate written to a
// temporary directory.
type SigningMaterial struct {
	Key      *rsa.PrivateKey
	KeyFile  string
	CertFile string
}

// NewSigningMaterial generates an RSA key and a self-signed certificate for it.
func NewSigningMaterial(t *testing.T) SigningMaterial {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("could not generate RSA key: %v", err)
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(0x55D929413F),
		Subject: pkix.Name{
			CommonName:   "xs2a_sandbox_client_signing",
			Organization: []string{"Open Poen"},
			Country:      []string{"NL"},
		},
		NotBefore: time.Now().Add(-time.Hour),
		NotAfter:  time.Now().Add(24 * time.Hour),
		KeyUsage:  x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("could not create certificate: %v", err)
	}

	dir := t.TempDir()
	m := SigningMaterial{
		Key:      key,
		KeyFile:  filepath.Join(dir, "signing.key"),
		CertFile: filepath.Join(dir, "signing.cer"),
	}

	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	if err := os.WriteFile(m.KeyFile, keyPEM, 0o600); err != nil {
		t.Fatalf("could not write key: %v", err)
	}

	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	if err := os.WriteFile(m.CertFile, certPEM, 0o600); err != nil {
		t.Fatalf("could not write certificate: %v", err)
	}

	return m
}
