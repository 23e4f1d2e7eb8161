// Package metrics exposes Prometheus instruments for ledger activity.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	TxTotal           *prometheus.CounterVec
	TxDuration        *prometheus.HistogramVec
	TransfersTotal    *prometheus.CounterVec
	IntegrityFindings *prometheus.GaugeVec
	ImportRows        *prometheus.CounterVec
}

// New registers every instrument on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TxTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catasto_tx_total",
			Help: "Ledger transactions by operation and outcome (committed or error kind)",
		}, []string{"op", "outcome"}),
		TxDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catasto_tx_duration_seconds",
			Help:    "Duration of ledger transactions",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"op"}),
		TransfersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catasto_transfers_total",
			Help: "Committed transfers by variazione tipo",
		}, []string{"tipo"}),
		IntegrityFindings: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "catasto_integrity_findings",
			Help: "Findings of the latest integrity check by kind",
		}, []string{"kind"}),
		ImportRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catasto_import_rows_total",
			Help: "Rows committed by CSV imports by record kind",
		}, []string{"kind"}),
	}
}

// ObserveTx implements catasto.Observer.
func (m *Metrics) ObserveTx(op string, err error, start time.Time) {
	if m == nil {
		return
	}

	outcome := "committed"
	if err != nil {
		outcome = catasto.KindOf(err).String()
	}

	m.TxTotal.WithLabelValues(op, outcome).Inc()
	m.TxDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementTransfers(tipo catasto.TipoVariazione) {
	if m == nil {
		return
	}

	m.TransfersTotal.WithLabelValues(string(tipo)).Inc()
}

// SetIntegrityFindings replaces the gauge values with counts. Kinds listed in
// kinds but absent from counts are reset to zero.
func (m *Metrics) SetIntegrityFindings(kinds []string, counts map[string]int) {
	if m == nil {
		return
	}

	for _, k := range kinds {
		m.IntegrityFindings.WithLabelValues(k).Set(float64(counts[k]))
	}
}

func (m *Metrics) AddImportRows(kind string, n int) {
	if m == nil {
		return
	}

	m.ImportRows.WithLabelValues(kind).Add(float64(n))
}
