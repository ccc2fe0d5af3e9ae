package bitvec

import (
	"sync/atomic"
)

// MetricsCollector receives storage events from a Vec.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGrow is called when the backing block slice is reallocated.
	RecordGrow(oldBlocks, newBlocks int)

	// RecordAlign is called by AlignBlock with the number of bits padded.
	RecordAlign(padded uint)

	// RecordPushBlock is called after each PushBlock. direct is false when
	// the vector had to be padded first.
	RecordPushBlock(direct bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int)  {}
func (NoopMetricsCollector) RecordAlign(uint)     {}
func (NoopMetricsCollector) RecordPushBlock(bool) {}

// BasicMetricsCollector provides simple in-memory counters.
// It may be shared by vectors used from different goroutines.
type BasicMetricsCollector struct {
	GrowCount       atomic.Int64
	GrowBlocks      atomic.Int64
	AlignCount      atomic.Int64
	AlignBits       atomic.Int64
	PushBlockCount  atomic.Int64
	PushBlockPadded atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldBlocks, newBlocks int) {
	b.GrowCount.Add(1)
	b.GrowBlocks.Add(int64(newBlocks - oldBlocks))
}

// RecordAlign implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlign(padded uint) {
	b.AlignCount.Add(1)
	b.AlignBits.Add(int64(padded))
}

// RecordPushBlock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPushBlock(direct bool) {
	b.PushBlockCount.Add(1)
	if !direct {
		b.PushBlockPadded.Add(1)
	}
}

// GetStats returns a snapshot of the counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:       b.GrowCount.Load(),
		GrowBlocks:      b.GrowBlocks.Load(),
		AlignCount:      b.AlignCount.Load(),
		AlignBits:       b.AlignBits.Load(),
		PushBlockCount:  b.PushBlockCount.Load(),
		PushBlockPadded: b.PushBlockPadded.Load(),
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	GrowCount       int64
	GrowBlocks      int64
	AlignCount      int64
	AlignBits       int64
	PushBlockCount  int64
	PushBlockPadded int64
}
