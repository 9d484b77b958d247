package status

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Registry is the central metrics facade
// Components cache pointers at construction; tick code writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Fields snapshots every metric as log fields, keys sorted
func (r *Registry) Fields() logrus.Fields {
	fields := make(logrus.Fields, r.TotalCount())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		fields[key] = ptr.Load()
	})
	r.Floats.Range(func(key string, ptr *AtomicFloat) {
		fields[key] = ptr.Get()
	})
	return fields
}
