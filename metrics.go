package dynarray

import "sync/atomic"

// MetricsCollector defines an interface for collecting buffer metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    reallocs prometheus.Counter
//	    bytes    prometheus.Gauge
//	}
//
//	func (p *PrometheusCollector) RecordReallocation(from, to, bytes int, err error) {
//	    p.reallocs.Inc()
//	    p.bytes.Set(float64(bytes))
//	}
type MetricsCollector interface {
	// RecordReallocation is called after each reallocation attempt.
	// from and to are capacities in slots, bytes is the size of the new
	// buffer, err is nil if successful.
	RecordReallocation(from, to, bytes int, err error)

	// RecordShift is called after an insert or erase that moved elements.
	RecordShift(elements int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReallocation(int, int, int, error) {}
func (NoopMetricsCollector) RecordShift(int)                         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between containers.
type BasicMetricsCollector struct {
	GrowCount          atomic.Int64
	ShrinkCount        atomic.Int64
	ReallocationErrors atomic.Int64
	BytesAllocated     atomic.Int64
	ShiftCount         atomic.Int64
	ShiftedElements    atomic.Int64
}

// RecordReallocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReallocation(from, to, bytes int, err error) {
	if err != nil {
		b.ReallocationErrors.Add(1)
		return
	}
	if to < from {
		b.ShrinkCount.Add(1)
	} else {
		b.GrowCount.Add(1)
	}
	b.BytesAllocated.Add(int64(bytes))
}

// RecordShift implements MetricsCollector.
func (b *BasicMetricsCollector) RecordShift(elements int) {
	b.ShiftCount.Add(1)
	b.ShiftedElements.Add(int64(elements))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:          b.GrowCount.Load(),
		ShrinkCount:        b.ShrinkCount.Load(),
		ReallocationErrors: b.ReallocationErrors.Load(),
		BytesAllocated:     b.BytesAllocated.Load(),
		ShiftCount:         b.ShiftCount.Load(),
		ShiftedElements:    b.ShiftedElements.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount          int64
	ShrinkCount        int64
	ReallocationErrors int64
	BytesAllocated     int64
	ShiftCount         int64
	ShiftedElements    int64
}

// observer forwards engine events to the configured logger and collector.
type observer struct {
	logger  *Logger
	metrics MetricsCollector
}

func (o *observer) OnReallocate(from, to, bytes int, err error) {
	if o.logger != nil {
		o.logger.LogReallocate(from, to, bytes, err)
	}
	if o.metrics != nil {
		o.metrics.RecordReallocation(from, to, bytes, err)
	}
}

func (o *observer) OnShift(elements int) {
	if o.metrics != nil {
		o.metrics.RecordShift(elements)
	}
}
