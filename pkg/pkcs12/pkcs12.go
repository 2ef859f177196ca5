package pkcs12

import (
	"errors"
	"fmt"
	"time"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrInvalidPassword ocorre quando a senha não abre o arquivo PKCS#12
var ErrInvalidPassword = errors.New("senha do certificado incorreta")

// Info contém os dados do certificado lidos do arquivo PFX/P12
type Info struct {
	Subject      string
	Issuer       string
	SerialNumber string
	NotBefore    time.Time
	NotAfter     time.Time
	ChainLength  int
}

// Inspect abre um arquivo PKCS#12 e devolve os dados do certificado principal
func Inspect(pfxData []byte, password string) (*Info, error) {
	// Decodificar o arquivo PKCS12
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		if errors.Is(err, pkcs12.ErrIncorrectPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("falha ao ler certificado PKCS#12: %w", err)
	}
	if certificate == nil || privateKey == nil {
		return nil, errors.New("arquivo PKCS#12 sem certificado ou chave privada")
	}

	return &Info{
		Subject:      certificate.Subject.String(),
		Issuer:       certificate.Issuer.String(),
		SerialNumber: certificate.SerialNumber.String(),
		NotBefore:    certificate.NotBefore,
		NotAfter:     certificate.NotAfter,
		ChainLength:  len(caCerts),
	}, nil
}
