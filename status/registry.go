// Package status holds lock-free runtime metrics published by the loop and games.
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry is the metrics facade shared by loop, game, and display
// Publishers cache metric pointers once and store into them every tick
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Metric is a formatted point-in-time reading
type Metric struct {
	Key   string
	Value string
}

// TotalCount returns the number of registered metrics of all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot formats every metric, grouped by kind and sorted by key within a kind
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.TotalCount())
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, Metric{Key: key, Value: v.Load()})
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{Key: key, Value: fmt.Sprintf("%.1f", v.Get())})
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		out = append(out, Metric{Key: key, Value: strconv.FormatBool(v.Load())})
	})
	return out
}
