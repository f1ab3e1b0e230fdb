package connect

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvlmap/grid"
)

// ErrUnknownMethod indicates a connectivity method name that is not supported.
var ErrUnknownMethod = errors.New("connect: unknown method")

// Method names a connectivity strategy.
type Method string

// Supported methods.
const (
	MethodSequential Method = "sequential"
	MethodNearest    Method = "nearest"
	MethodChain      Method = "chain"
	MethodMST        Method = "mst"
	MethodRandomWalk Method = "random_walk"
	MethodBridge     Method = "bridge"
)

// Methods lists every supported method in a stable order.
func Methods() []Method {
	return []Method{MethodSequential, MethodNearest, MethodChain, MethodMST, MethodRandomWalk, MethodBridge}
}

// ParseMethod resolves a method name, ignoring case and surrounding space.
// "random-walk" is accepted as an alias of MethodRandomWalk.
func ParseMethod(name string) (Method, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", "_")
	for _, m := range Methods() {
		if string(m) == s {
			return m, nil
		}
	}

	return "", ErrUnknownMethod
}

// Pair is a directed corridor request between two region indices.
// Corridors are drawn From → To.
type Pair struct {
	From, To int
}

// normalized orders the indices ascending, for use as an unordered set key.
func (p Pair) normalized() Pair {
	if p.From > p.To {
		return Pair{From: p.To, To: p.From}
	}

	return p
}

// Options configures a connectivity pass.
type Options struct {
	// Thickness is the corridor half-width; 0 draws one-cell corridors.
	Thickness int

	// Cell is the cell type carved into the grid.
	Cell grid.Cell

	// MaxConnections caps the corridors each region initiates (Nearest).
	MaxConnections int

	// WalkSteps is the number of steps of each random walk (RandomWalk).
	WalkSteps int

	// WalkBias is the probability of stepping toward the target (RandomWalk).
	WalkBias float64

	// Seed drives RandomWalk. 0 selects a fixed default seed.
	Seed int64

	// Logger receives Debug records for every corridor. Nil discards.
	Logger *slog.Logger

	// OnCorridor, if set, is called once per carved corridor or walk with its
	// endpoints.
	OnCorridor func(from, to grid.Point)
}

// Option configures Options.
type Option func(*Options)

// WithThickness sets the corridor half-width.
func WithThickness(t int) Option {
	return func(o *Options) { o.Thickness = t }
}

// WithCell sets the carved cell type.
func WithCell(c grid.Cell) Option {
	return func(o *Options) { o.Cell = c }
}

// WithMaxConnections sets the per-region cap used by Nearest.
func WithMaxConnections(k int) Option {
	return func(o *Options) { o.MaxConnections = k }
}

// WithWalkSteps sets the number of steps per random walk.
func WithWalkSteps(n int) Option {
	return func(o *Options) { o.WalkSteps = n }
}

// WithWalkBias sets the probability of a target-directed step.
func WithWalkBias(p float64) Option {
	return func(o *Options) { o.WalkBias = p }
}

// WithSeed sets the random-walk seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger routes Debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithOnCorridor installs a per-corridor callback.
func WithOnCorridor(fn func(from, to grid.Point)) Option {
	return func(o *Options) { o.OnCorridor = fn }
}

// DefaultOptions returns Options initialised as:
//
//	– Thickness      = 0 (one-cell corridors)
//	– Cell           = grid.Floor
//	– MaxConnections = 1
//	– WalkSteps      = 64
//	– WalkBias       = 0.5
//	– Seed           = 0 (fixed default seed)
//	– Logger         = discard
func DefaultOptions() Options {
	return Options{
		Thickness:      0,
		Cell:           grid.Floor,
		MaxConnections: 1,
		WalkSteps:      64,
		WalkBias:       0.5,
	}
}

// resolve applies opts over the defaults and clamps invalid values.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.Thickness = max(o.Thickness, 0)
	o.MaxConnections = max(o.MaxConnections, 0)
	o.WalkSteps = max(o.WalkSteps, 0)
	o.WalkBias = min(max(o.WalkBias, 0), 1)
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
