// Package metrics records the comparison counts reported by the sort
// and search operations of a session as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// A Recorder observes sorts and searches. The zero Recorder is not
// valid; use NewRecorder.
type Recorder struct {
	operationsTotal    *prometheus.CounterVec
	comparisonsTotal   *prometheus.CounterVec
	comparisons        *prometheus.HistogramVec
	searchesFound      prometheus.Counter
	searchesNotFound   prometheus.Counter
	registrationsTotal prometheus.Counter
}

// NewRecorder creates a Recorder and registers its metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	searches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "torre",
			Subsystem: "inventory",
			Name:      "searches_total",
			Help:      "Number of binary searches by name, and whether the key component was found.",
		},
		[]string{"result"})
	r := &Recorder{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "torre",
				Subsystem: "inventory",
				Name:      "operations_total",
				Help:      "Number of sort and search operations performed on the inventory.",
			},
			[]string{"operation"}),
		comparisonsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "torre",
				Subsystem: "inventory",
				Name:      "comparisons_total",
				Help:      "Total number of elementary comparisons performed by sort and search operations.",
			},
			[]string{"operation"}),
		comparisons: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "torre",
				Subsystem: "inventory",
				Name:      "operation_comparisons",
				Help:      "Number of elementary comparisons performed per sort or search operation.",
				Buckets:   prometheus.LinearBuckets(0, 20, 10),
			},
			[]string{"operation"}),
		searchesFound:    searches.WithLabelValues("found"),
		searchesNotFound: searches.WithLabelValues("not_found"),
		registrationsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "torre",
				Subsystem: "inventory",
				Name:      "registrations_total",
				Help:      "Number of times the inventory was registered.",
			}),
	}
	reg.MustRegister(r.operationsTotal, r.comparisonsTotal, r.comparisons, searches, r.registrationsTotal)
	return r
}

func (r *Recorder) observe(operation string, comparisons uint64) {
	r.operationsTotal.WithLabelValues(operation).Inc()
	r.comparisonsTotal.WithLabelValues(operation).Add(float64(comparisons))
	r.comparisons.WithLabelValues(operation).Observe(float64(comparisons))
}

// ObserveSort records a sort by the given key.
func (r *Recorder) ObserveSort(key string, comparisons uint64) {
	r.observe("sort_by_"+key, comparisons)
}

// ObserveSearch records a binary search by name.
func (r *Recorder) ObserveSearch(found bool, comparisons uint64) {
	r.observe("search_by_name", comparisons)
	if found {
		r.searchesFound.Inc()
	} else {
		r.searchesNotFound.Inc()
	}
}

// ObserveRegistration records a successful registration.
func (r *Recorder) ObserveRegistration() {
	r.registrationsTotal.Inc()
}

// WriteTextfile writes all metrics gathered by g to path, in the text
// format understood by the node exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
