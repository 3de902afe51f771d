// Package metrics holds the prometheus collectors of the catalog service.
package metrics

import (
	"catalog/internal/core/domain/model/entry"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "catalog"

// Collectors groups every catalog metric. Register it once per registry.
type Collectors struct {
	orderingChanges   *prometheus.CounterVec
	shiftedPositions  *prometheus.CounterVec
	orderViolations   prometheus.Gauge
	integrityCheckRun *prometheus.CounterVec
}

// NewCollectors creates the collectors and registers them with reg.
func NewCollectors(reg prometheus.Registerer) (*Collectors, error) {
	c := &Collectors{
		orderingChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ordering_changes_total",
			Help:      "Entry ordering operations by transition.",
		}, []string{"transition"}),
		shiftedPositions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ordering_shifted_positions_total",
			Help:      "Sibling entries renumbered by ordering operations.",
		}, []string{"transition"}),
		orderViolations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "series_order_violations",
			Help:      "Series whose entry positions are not exactly 1..N, as of the last integrity check.",
		}),
		integrityCheckRun: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_integrity_checks_total",
			Help:      "Order integrity check runs by result.",
		}, []string{"result"}),
	}

	for _, collector := range []prometheus.Collector{
		c.orderingChanges, c.shiftedPositions, c.orderViolations, c.integrityCheckRun,
	} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordChange counts a committed ordering change.
func (c *Collectors) RecordChange(change entry.Change) {
	label := string(change.Transition)
	c.orderingChanges.WithLabelValues(label).Inc()
	c.shiftedPositions.WithLabelValues(label).Add(float64(change.Shifted))
}

// RecordIntegrityCheck stores the outcome of an integrity check run. A failed
// run leaves the violation gauge untouched.
func (c *Collectors) RecordIntegrityCheck(violations int, err error) {
	if err != nil {
		c.integrityCheckRun.WithLabelValues("error").Inc()
		return
	}
	c.integrityCheckRun.WithLabelValues("ok").Inc()
	c.orderViolations.Set(float64(violations))
}
