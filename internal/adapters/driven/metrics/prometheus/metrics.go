// Package prometheus records build metrics in a Prometheus registry.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.BuildMetrics = (*Metrics)(nil)

// Build status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Metrics holds build gauges and counters in a private registry.
// Gauges describe the most recent build; counters accumulate across
// builds of one process (watch mode).
type Metrics struct {
	registry *prometheus.Registry

	entities     *prometheus.GaugeVec
	featured     *prometheus.GaugeVec
	warnings     *prometheus.GaugeVec
	missingMedia *prometheus.GaugeVec
	copiedMedia  *prometheus.GaugeVec

	buildsTotal   *prometheus.CounterVec
	buildDuration prometheus.Gauge
	lastBuild     prometheus.Gauge
}

// New creates a metrics recorder with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		entities: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contentbuild_entities",
				Help: "Entities emitted by the last build",
			},
			[]string{"domain"},
		),
		featured: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contentbuild_featured_entities",
				Help: "Featured entities emitted by the last build",
			},
			[]string{"domain"},
		),
		warnings: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contentbuild_warnings",
				Help: "Data quality warnings raised by the last build",
			},
			[]string{"domain"},
		),
		missingMedia: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contentbuild_missing_media",
				Help: "Media references without a file on disk",
			},
			[]string{"domain"},
		),
		copiedMedia: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "contentbuild_copied_media_files",
				Help: "Media files copied into the publish tree",
			},
			[]string{"domain"},
		),
		buildsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentbuild_builds_total",
				Help: "Total number of builds by outcome",
			},
			[]string{"status"},
		),
		buildDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "contentbuild_build_duration_seconds",
			Help: "Wall time of the last build",
		}),
		lastBuild: factory.NewGauge(prometheus.GaugeOpts{
			Name: "contentbuild_last_build_timestamp_seconds",
			Help: "Unix time the last build finished",
		}),
	}
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDomain records the outcome of one content domain.
func (m *Metrics) ObserveDomain(report domain.DomainReport) {
	d := string(report.Domain)
	m.entities.WithLabelValues(d).Set(float64(report.Entities))
	m.featured.WithLabelValues(d).Set(float64(report.Featured))
	m.warnings.WithLabelValues(d).Set(float64(len(report.Warnings)))
	m.missingMedia.WithLabelValues(d).Set(float64(report.MissingMedia))
	m.copiedMedia.WithLabelValues(d).Set(float64(report.CopiedMedia))
}

// ObserveBuild records the outcome of a whole build.
func (m *Metrics) ObserveBuild(report *domain.BuildReport, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.buildsTotal.WithLabelValues(status).Inc()

	if report == nil {
		return
	}
	m.buildDuration.Set(report.Duration().Seconds())
	if !report.FinishedAt.IsZero() {
		m.lastBuild.Set(float64(report.FinishedAt.Unix()))
	}
}

// WriteTextfile writes all metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
