package psd2

import (
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/openpoen/backend/internal/config"
)

// signedHeaders are the headers covered by the Signature header, in the
// order they appear in the signing string.
const signedHeaders = "(request-target) date digest x-request-id"

// SignedValues are the header values that go into the signing string.
type SignedValues struct {
	Date      string
	Digest    string
	RequestID string
}

// Signer builds the Digest, Signature and TPP-Signature-Certificate headers.
//
// The key and certificate files are read on every call so that rotated
// files are picked up without a restart.
type Signer struct {
	keyFile  string
	certFile string
	keyID    string
}

func NewSigner(bank config.Bank) Signer {
	return Signer{
		keyFile:  bank.SigningKeyFile,
		certFile: bank.SigningCert,
		keyID:    bank.KeyID,
	}
}

// Digest returns the RFC 3230 digest header value for the body.
func Digest(body []byte) string {
	sum := sha256.Sum256(body)
	return "SHA-256=" + base64.StdEncoding.EncodeToString(sum[:])
}

// SigningString returns the string that is signed for a request.
// target is the path including the query string.
func SigningString(method, target string, v SignedValues) string {
	return strings.Join([]string{
		"(request-target): " + strings.ToLower(method) + " " + target,
		"date: " + v.Date,
		"digest: " + v.Digest,
		"x-request-id: " + v.RequestID,
	}, "\n")
}

// Signature returns the value for the Signature header.
func (s Signer) Signature(method, target string, v SignedValues) (string, error) {
	key, err := s.privateKey()
	if err != nil {
		return "", err
	}

	raw, err := jwt.SigningMethodRS256.Sign(SigningString(method, target, v), key)
	if err != nil {
		return "", fmt.Errorf("%w: signing failed: %w", ErrConfig, err)
	}

	return strings.Join([]string{
		fmt.Sprintf("keyId=%q", s.keyID),
		`algorithm="sha256RSA"`,
		fmt.Sprintf("headers=%q", signedHeaders),
		fmt.Sprintf("signature=%q", base64.StdEncoding.EncodeToString(raw)),
	}, ","), nil
}

// Certificate returns the signing certificate with all line breaks removed.
func (s Signer) Certificate() (string, error) {
	data, err := os.ReadFile(s.certFile)
	if err != nil {
		return "", fmt.Errorf("%w: could not read signing certificate: %w", ErrConfig, err)
	}

	return strings.NewReplacer("\r", "", "\n", "").Replace(string(data)), nil
}

func (s Signer) privateKey() (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(s.keyFile)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read signing key: %w", ErrConfig, err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: could not parse signing key: %w", ErrConfig, err)
	}

	return key, nil
}
