// Package pkcs12test gera arquivos PFX autoassinados para testes
package pkcs12test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"time"

	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

// DefaultSubject é o titular dos certificados gerados
const DefaultSubject = "EMPRESA TESTE LTDA:12345678000199"

// Generate cria um PFX com chave ECDSA e certificado autoassinado válido até notAfter
func Generate(password string, notAfter time.Time) ([]byte, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, err
	}

	template := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject:      pkix.Name{CommonName: DefaultSubject},
		NotBefore:    time.Now().Add(-2 * time.Hour),
		NotAfter:     notAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, err
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, err
	}

	return gopkcs12.Modern.Encode(key, cert, nil, password)
}
