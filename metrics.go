package hyperlsh

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	// duration is the total time taken, err is nil if successful.
	RecordAdd(duration time.Duration, err error)

	// RecordGroup is called after each group lookup.
	// found reports whether a bucket matched the query's hash code.
	RecordGroup(found bool, duration time.Duration)

	// RecordNearest is called after each nearest-k query.
	// candidates is the number of unique keys scored.
	RecordNearest(k, candidates int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)               {}
func (NoopMetricsCollector) RecordGroup(bool, time.Duration)              {}
func (NoopMetricsCollector) RecordNearest(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount          atomic.Int64
	AddErrors         atomic.Int64
	AddTotalNanos     atomic.Int64
	GroupCount        atomic.Int64
	GroupMisses       atomic.Int64
	NearestCount      atomic.Int64
	NearestErrors     atomic.Int64
	NearestTotalNanos atomic.Int64
	NearestCandidates atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordGroup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGroup(found bool, duration time.Duration) {
	b.GroupCount.Add(1)
	if !found {
		b.GroupMisses.Add(1)
	}
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(k, candidates int, duration time.Duration, err error) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	b.NearestCandidates.Add(int64(candidates))
	if err != nil {
		b.NearestErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	AddCount          int64
	AddErrors         int64
	AddAvgNanos       int64
	GroupCount        int64
	GroupMisses       int64
	NearestCount      int64
	NearestErrors     int64
	NearestAvgNanos   int64
	NearestCandidates int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:          b.AddCount.Load(),
		AddErrors:         b.AddErrors.Load(),
		AddAvgNanos:       avgNanos(b.AddTotalNanos.Load(), b.AddCount.Load()),
		GroupCount:        b.GroupCount.Load(),
		GroupMisses:       b.GroupMisses.Load(),
		NearestCount:      b.NearestCount.Load(),
		NearestErrors:     b.NearestErrors.Load(),
		NearestAvgNanos:   avgNanos(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
		NearestCandidates: b.NearestCandidates.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
