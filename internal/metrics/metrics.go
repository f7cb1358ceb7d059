// Package metrics exposes shop activity as prometheus metrics. A Metrics set
// is registered on a caller-supplied registry so tests and binaries never
// share collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the shop records into
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Events
	EventsPublished *prometheus.CounterVec

	// Business
	PlayerGold       *prometheus.GaugeVec
	ItemsStored      *prometheus.GaugeVec
	ItemsEquipped    *prometheus.GaugeVec
	CatalogAvailable prometheus.Gauge
	CatalogDepleted  prometheus.Gauge
	EquipChanges     *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameHTTPRequestsTotal,
				Help:      HelpTextHTTPRequestsTotal,
			},
			[]string{LabelMethod, LabelPath, LabelStatus},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      MetricNameHTTPRequestDuration,
				Help:      HelpTextHTTPRequestDuration,
				Buckets:   HTTPLatencyBuckets,
			},
			[]string{LabelMethod, LabelPath},
		),
		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameHTTPRequestsInFlight,
				Help:      HelpTextHTTPRequestsInFlight,
			},
		),

		EventsPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameEventsPublished,
				Help:      HelpTextEventsPublished,
			},
			[]string{LabelType},
		),

		PlayerGold: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNamePlayerGold,
				Help:      HelpTextPlayerGold,
			},
			[]string{LabelPlayer},
		),
		ItemsStored: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsStored,
				Help:      HelpTextItemsStored,
			},
			[]string{LabelPlayer},
		),
		ItemsEquipped: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsEquipped,
				Help:      HelpTextItemsEquipped,
			},
			[]string{LabelPlayer},
		),
		CatalogAvailable: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameCatalogAvailable,
				Help:      HelpTextCatalogAvailable,
			},
		),
		CatalogDepleted: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: Namespace,
				Name:      MetricNameCatalogDepleted,
				Help:      HelpTextCatalogDepleted,
			},
		),
		EquipChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameEquipChanges,
				Help:      HelpTextEquipChanges,
			},
			[]string{LabelItem, LabelDirection},
		),
	}
}
