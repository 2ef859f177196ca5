package provider

import (
	"context"
	"fmt"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/shopspring/decimal"
)

// DummyProvider simula a autorização sem qualquer comunicação externa.
// Usa o XML genérico já gravado na nota.
type DummyProvider struct {
	settings fiscal.Settings
}

// NewDummyProvider cria o provedor simulado
func NewDummyProvider(settings fiscal.Settings) *DummyProvider {
	return &DummyProvider{settings: settings}
}

// Code identifica o provedor
func (p *DummyProvider) Code() fiscal.ProviderCode {
	return fiscal.ProviderDummy
}

// Send autoriza a nota quando o total é positivo e o ambiente é conhecido
func (p *DummyProvider) Send(ctx context.Context, d *fiscal.Document) (*fiscal.TransmissionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fiscal.NewTransmissionError(p.Code(), "timeout", "envio interrompido", err)
	}

	env := p.settings.Environment
	positive := d.Total.GreaterThan(decimal.Zero)
	authorized := positive && env.IsValid()

	var message string
	switch {
	case authorized:
		message = fmt.Sprintf("Authorized in %s", env)
	case !positive:
		message = "Denied: total must be > 0"
	default:
		message = fmt.Sprintf("Denied: unknown environment %s", env)
	}

	number := d.NumberOr(fiscal.PlaceholderNumber)
	html := fmt.Sprintf("<html><body><h3>DANFE (Dummy)</h3><p>Number: %s</p><p>Total: %s</p></body></html>",
		d.Number, fiscal.Money(d.Total))

	return &fiscal.TransmissionResult{
		Authorized: authorized,
		Status:     statusFor(authorized),
		AccessKey:  "DUMMY-" + number,
		Protocol:   "PROT-" + number,
		Message:    message,
		PDF: &fiscal.Artifact{
			Content:  []byte(html),
			Filename: fiscal.SafeFilename(d.NumberOr(fiscal.PlaceholderFilename)) + "_DANFE.pdf",
		},
	}, nil
}

func statusFor(authorized bool) string {
	if authorized {
		return fiscal.StatusAuthorized
	}
	return fiscal.StatusDenied
}
