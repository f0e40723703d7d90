package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func Register(registry *prometheus.Registry) {
	registry.MustRegister(RequestCount, RequestDuration)
}

func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// Wallet holds the domain counters. A nil *Wallet records nothing.
type Wallet struct {
	WithdrawalsTotal   *prometheus.CounterVec
	WithdrawalDuration *prometheus.HistogramVec
	BalanceLookups     *prometheus.CounterVec
	IngestionsTotal    *prometheus.CounterVec
	KeyExportsTotal    *prometheus.CounterVec
}

func NewWallet(registry prometheus.Registerer) *Wallet {
	m := &Wallet{
		WithdrawalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_withdrawals_total",
				Help: "Total withdrawals by outcome kind.",
			},
			[]string{"outcome", "kind"},
		),
		WithdrawalDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_withdrawal_duration_seconds",
				Help:    "Withdrawal duration from validation to confirmation in seconds.",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"outcome"},
		),
		BalanceLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_balance_lookups_total",
				Help: "Per-token balance lookups.",
			},
			[]string{"symbol", "status"},
		),
		IngestionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_rate_ingestions_total",
				Help: "Rate ingestion triggers by status.",
			},
			[]string{"status"},
		),
		KeyExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_key_exports_total",
				Help: "Private key export attempts by status.",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.WithdrawalsTotal,
		m.WithdrawalDuration,
		m.BalanceLookups,
		m.IngestionsTotal,
		m.KeyExportsTotal,
	)
	return m
}

func (m *Wallet) ObserveWithdrawal(outcome, kind string, started time.Time) {
	if m == nil {
		return
	}
	m.WithdrawalsTotal.WithLabelValues(outcome, kind).Inc()
	m.WithdrawalDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

func (m *Wallet) BalanceLookup(symbol, status string) {
	if m == nil {
		return
	}
	m.BalanceLookups.WithLabelValues(symbol, status).Inc()
}

func (m *Wallet) Ingestion(status string) {
	if m == nil {
		return
	}
	m.IngestionsTotal.WithLabelValues(status).Inc()
}

func (m *Wallet) KeyExport(status string) {
	if m == nil {
		return
	}
	m.KeyExportsTotal.WithLabelValues(status).Inc()
}
