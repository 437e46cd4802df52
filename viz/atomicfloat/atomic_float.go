// Package atomicfloat provides a lock-free float64 gauge, used by the
// visualizer to hold the search's live (depth, statesVisited, frontierLen)
// counters without a mutex guarding a handful of reads/writes per progress
// tick.
package atomicfloat

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// Gauge encapsulates a float64 for non-locking atomic operations. No unsafe
// pointer derived from val is ever held across a GC-visible suspension
// point, which is what makes storing it through the atomic package safe.
type Gauge struct {
	val float64
}

// New returns a Gauge initialized to val.
func New(val float64) *Gauge {
	return &Gauge{val: val}
}

// Read atomically reads the gauge's value.
func (g *Gauge) Read() float64 {
	bits := atomic.LoadUint64((*uint64)(unsafe.Pointer(&g.val)))
	return math.Float64frombits(bits)
}

// Set atomically sets the gauge's value.
func (g *Gauge) Set(newVal float64) {
	for {
		old := g.Read()
		if atomic.CompareAndSwapUint64(
			(*uint64)(unsafe.Pointer(&g.val)),
			math.Float64bits(old),
			math.Float64bits(newVal),
		) {
			return
		}
	}
}
