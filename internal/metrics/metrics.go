// Package metrics records tree mutations as Prometheus metrics.
package metrics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/billie-coop/grove/tree"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Collector counts tree operations. It implements tree.Observer.
type Collector struct {
	registry *prometheus.Registry

	// operationsTotal counts completed mutations by operation
	operationsTotal *prometheus.CounterVec

	// moveRetries tracks how often a move had to rebuild its lock plan
	moveRetries prometheus.Histogram

	// errorsTotal counts failed operations by error kind
	errorsTotal *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry, so several
// collectors can coexist in one process (and in tests).
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grove_tree_operations_total",
			Help: "Total tree mutations by operation",
		}, []string{"operation"}),
		moveRetries: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "grove_tree_move_retries",
			Help:    "Lock plan rebuilds per successful move",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "grove_tree_errors_total",
			Help: "Total failed tree operations by error kind",
		}, []string{"kind"}),
	}
	c.registry.MustRegister(c.operationsTotal, c.moveRetries, c.errorsTotal)
	return c
}

// Registry exposes the collector's registry, e.g. for promhttp.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Observe implements tree.Observer.
func (c *Collector) Observe(e tree.Event) {
	c.operationsTotal.WithLabelValues(string(e.Op)).Inc()
	if e.Op == tree.OpMove {
		c.moveRetries.Observe(float64(e.Retries))
	}
}

// RecordError counts a failed operation under its tree error kind.
func (c *Collector) RecordError(err error) {
	if err == nil {
		return
	}
	c.errorsTotal.WithLabelValues(Kind(err)).Inc()
}

// Kind maps an error returned by package tree to a short label.
func Kind(err error) string {
	switch {
	case errors.Is(err, tree.ErrCycle):
		return "cycle"
	case errors.Is(err, tree.ErrDanglingParent):
		return "dangling_parent"
	case errors.Is(err, tree.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, tree.ErrNilNode):
		return "nil_node"
	case errors.Is(err, tree.ErrInvariant):
		return "invariant"
	default:
		return "other"
	}
}

// Sample is one gathered counter or histogram count.
type Sample struct {
	Name   string
	Labels string
	Value  float64
}

// Snapshot gathers the current metric values, sorted by name and labels.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var samples []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := Sample{Name: mf.GetName(), Labels: labelString(m.GetLabel())}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Name += "_count"
				s.Value = float64(m.GetHistogram().GetSampleCount())
			default:
				continue
			}
			samples = append(samples, s)
		}
	}

	sort.Slice(samples, func(i, j int) bool {
		if samples[i].Name != samples[j].Name {
			return samples[i].Name < samples[j].Name
		}
		return samples[i].Labels < samples[j].Labels
	})
	return samples, nil
}

func labelString(pairs []*dto.LabelPair) string {
	s := ""
	for i, p := range pairs {
		if i > 0 {
			s += ","
		}
		s += p.GetName() + "=" + p.GetValue()
	}
	return s
}
