package metrics

import (
	"time"

	"github.com/hugohenrick/nota-fiscal/internal/domain/fiscal"
	"github.com/prometheus/client_golang/prometheus"
)

// TransmissionMetrics contabiliza os envios de notas aos provedores
type TransmissionMetrics struct {
	transmissions *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// NewTransmissionMetrics cria e registra as métricas de transmissão
func NewTransmissionMetrics(registerer prometheus.Registerer) (*TransmissionMetrics, error) {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	transmissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fiscal_transmissions_total",
		Help: "Transmissões de notas fiscais por provedor e resultado.",
	}, []string{"provider", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fiscal_transmission_duration_seconds",
		Help:    "Duração da chamada ao provedor fiscal.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"provider"})

	for _, c := range []prometheus.Collector{transmissions, duration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}

	return &TransmissionMetrics{
		transmissions: transmissions,
		duration:      duration,
	}, nil
}

// ObserveTransmission registra o resultado e a duração de um envio
func (m *TransmissionMetrics) ObserveTransmission(provider fiscal.ProviderCode, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transmissions.WithLabelValues(string(provider), outcome).Inc()
	m.duration.WithLabelValues(string(provider)).Observe(elapsed.Seconds())
}
