// Package dijkstra defines core types and configuration options
// for the single-source shortest-path Engine.
//
// Errors (sentinel):
//
//	– ErrUnknownNode     node identifier never seen in the edge map.
//	– ErrUnreachable     PathTo target not connected to the run's source.
//	– ErrNotRun          query issued before any successful Run.
//	– ErrNegativeWeight  negative edge weight detected at construction.
//	– ErrBadWeight       NaN edge weight detected at construction.
//	– ErrNilCompare      NewFunc called without a compare function.
//	– ErrOptionViolation invalid option value (negative MaxDistance, etc.).
//	– ErrInternal        priority queue invariant breach during a run.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Engine.
var (
	// ErrUnknownNode indicates a node identifier absent from the edge map.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrUnreachable indicates that no path connects the run's source to the target.
	ErrUnreachable = errors.New("dijkstra: source and target are not connected")

	// ErrNotRun indicates a distance or path query before any successful Run.
	ErrNotRun = errors.New("dijkstra: no run has been performed")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight indicates a weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("dijkstra: edge weight is not a number")

	// ErrNilCompare indicates that NewFunc received a nil compare function.
	ErrNilCompare = errors.New("dijkstra: compare function is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrInternal indicates a broken queue invariant. It is never expected to
	// surface through the public API.
	ErrInternal = errors.New("dijkstra: internal invariant violated")
)

// Weight is the set of numeric types usable as edge weights.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Edge is a directed pair of node identifiers.
type Edge[N comparable] struct {
	From N
	To   N
}

// EdgeWeights maps each directed edge to its non-negative weight.
// A missing reverse pair means the edge is one-way.
type EdgeWeights[N comparable, W Weight] map[Edge[N]]W

// Infinity returns the value reported as the distance of unreachable nodes:
// +Inf for floating point weights, the largest representable value otherwise.
func Infinity[W Weight]() W {
	var half W = 1
	half /= 2
	if half != 0 {
		return W(math.Inf(1))
	}

	var m W
	m--
	if m > 0 {
		return m // unsigned wrap-around
	}
	bits := unsafe.Sizeof(m) * 8

	return W(uint64(1)<<(bits-1) - 1)
}

// IsInfinite reports whether w equals Infinity[W]().
func IsInfinite[W Weight](w W) bool {
	return w == Infinity[W]()
}

// Options configures an Engine.
//
// MaxDistance      – nodes whose distance would exceed this cap stay unreached.
// InfEdgeThreshold – edges with weight ≥ threshold are treated as impassable.
// Logger           – receives one debug entry per run; zap.NewNop() by default.
type Options[W Weight] struct {
	MaxDistance      W
	InfEdgeThreshold W
	Logger           *zap.Logger

	limitDistance bool
	limitEdges    bool

	// err records the first invalid option; New surfaces it.
	err error
}

// Option represents a functional option for configuring an Engine.
type Option[W Weight] func(*Options[W])

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a no-op logger.
func DefaultOptions[W Weight]() Options[W] {
	return Options[W]{
		MaxDistance:      Infinity[W](),
		InfEdgeThreshold: Infinity[W](),
		Logger:           zap.NewNop(),
	}
}

// WithMaxDistance caps exploration: nodes farther than limit from the source are
// left unreached. limit must be non-negative.
func WithMaxDistance[W Weight](limit W) Option[W] {
	return func(o *Options[W]) {
		if limit < 0 || isNaN(limit) {
			o.setErr("MaxDistance must be non-negative")
			return
		}
		o.MaxDistance = limit
		o.limitDistance = true
	}
}

// WithInfEdgeThreshold marks every edge whose weight is ≥ threshold as
// impassable. threshold must be positive.
func WithInfEdgeThreshold[W Weight](threshold W) Option[W] {
	return func(o *Options[W]) {
		if threshold <= 0 || isNaN(threshold) {
			o.setErr("InfEdgeThreshold must be positive")
			return
		}
		o.InfEdgeThreshold = threshold
		o.limitEdges = true
	}
}

// WithLogger sets the logger used for per-run debug summaries.
func WithLogger[W Weight](logger *zap.Logger) Option[W] {
	return func(o *Options[W]) {
		if logger == nil {
			o.setErr("logger is nil")
			return
		}
		o.Logger = logger
	}
}

func (o *Options[W]) setErr(msg string) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", ErrOptionViolation, msg)
	}
}

// isNaN reports whether w is a floating point NaN.
func isNaN[W Weight](w W) bool { return w != w }
