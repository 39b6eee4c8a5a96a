package dynarray

import (
	"github.com/hupe1980/dynarray/internal/mem"
	"github.com/hupe1980/dynarray/internal/slots"
	"github.com/hupe1980/dynarray/resource"
)

type options struct {
	allocator        Allocator
	controller       *resource.Controller
	logger           *Logger
	metricsCollector MetricsCollector
	noShrink         bool
}

// Option configures a container at Setup.
type Option func(*options)

// WithAllocator sets the allocator for Raw buffers.
//
// If nil is passed, HeapAllocator is used. Vector always allocates from the
// Go heap because its elements may hold pointers the garbage collector must
// see; it ignores this option.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

// WithMemoryController charges every buffer against a shared resource.Controller.
//
// A buffer the controller refuses surfaces as an *AllocationError that wraps
// resource.ErrMemoryLimitExceeded or resource.ErrAllocRateExceeded. One
// controller may serve many containers.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 64 << 20})
//	a, _ := dynarray.NewRaw(0, 16, dynarray.WithMemoryController(rc))
//	b, _ := dynarray.New[float64](0, dynarray.WithMemoryController(rc))
func WithMemoryController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithLogger configures structured logging of reallocations.
// Pass nil to disable logging (default).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for buffer events.
// Pass nil to disable metrics collection (default).
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = m
	}
}

// WithoutShrink disables the shrink check after PopBack, PopFront and Erase.
//
// Capacity then only decreases through Resize, ShrinkToFit and Clear. This
// trades memory reclamation for fewer reallocations when the size oscillates
// around a quarter of the capacity.
func WithoutShrink() Option {
	return func(o *options) {
		o.noShrink = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) observer() slots.Observer {
	if o.logger == nil && o.metricsCollector == nil {
		return nil
	}
	return &observer{logger: o.logger, metrics: o.metricsCollector}
}

func (o options) rawConfig() slots.Config[byte] {
	var alloc mem.Allocator[byte] = o.allocator
	if o.allocator == nil {
		alloc = mem.Heap[byte]{}
	}
	if o.controller != nil {
		alloc = mem.NewBudget(alloc, o.controller)
	}
	return slots.Config[byte]{
		Allocator: alloc,
		Observer:  o.observer(),
		NoShrink:  o.noShrink,
	}
}

func typedConfig[T any](o options) slots.Config[T] {
	var alloc mem.Allocator[T] = mem.Heap[T]{}
	if o.controller != nil {
		alloc = mem.NewBudget(alloc, o.controller)
	}
	return slots.Config[T]{
		Allocator: alloc,
		Observer:  o.observer(),
		NoShrink:  o.noShrink,
	}
}
