package connect

import (
	"log/slog"

	"github.com/katalvlaran/lvlmap/corridor"
	"github.com/katalvlaran/lvlmap/grid"
	"github.com/katalvlaran/lvlmap/region"
)

// Connect runs the strategy named by method and returns the carved grid.
// For an unknown method it returns ErrUnknownMethod and g unchanged.
// Fewer than two regions leave the grid unchanged for every method.
func Connect(g grid.Grid, regions []region.Region, method Method, opts ...Option) (grid.Grid, error) {
	o := resolve(opts)
	switch method {
	case MethodSequential, MethodNearest, MethodChain, MethodMST:
		return carveLines(g, regions, method, o), nil
	case MethodRandomWalk:
		return carveWalks(g, regions, o), nil
	case MethodBridge:
		return carveBridges(g, regions, o), nil
	default:
		return g, ErrUnknownMethod
	}
}

// Sequential joins region i to region i+1 in discovery order.
func Sequential(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveLines(g, regions, MethodSequential, resolve(opts))
}

// Nearest joins every region to its MaxConnections nearest regions,
// skipping pairs that are already connected.
func Nearest(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveLines(g, regions, MethodNearest, resolve(opts))
}

// Chain joins regions in order of ascending centroid x.
func Chain(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveLines(g, regions, MethodChain, resolve(opts))
}

// MST joins regions along the minimum spanning tree of their centroids:
// n-1 corridors, fully connected, no cycles.
func MST(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveLines(g, regions, MethodMST, resolve(opts))
}

// RandomWalk traces a biased random walk from each region's centroid toward
// the next region's centroid and paints the trail. The walk may stop short.
func RandomWalk(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveWalks(g, regions, resolve(opts))
}

// Bridge joins regions along MST pairs, carving each corridor on the path
// that converts the fewest cells.
func Bridge(g grid.Grid, regions []region.Region, opts ...Option) grid.Grid {
	return carveBridges(g, regions, resolve(opts))
}

// Plan returns the pairs method would connect for regions, without carving.
// RandomWalk plans sequential pairs; Bridge plans MST pairs.
func Plan(regions []region.Region, method Method, opts ...Option) ([]Pair, error) {
	o := resolve(opts)
	cs := region.Centroids(regions)
	switch method {
	case MethodSequential, MethodRandomWalk:
		return SequentialPairs(cs), nil
	case MethodNearest:
		return NearestPairs(cs, o.MaxConnections), nil
	case MethodChain:
		return ChainPairs(cs), nil
	case MethodMST, MethodBridge:
		return SpanningPairs(cs), nil
	default:
		return nil, ErrUnknownMethod
	}
}

// carveLines draws one straight corridor per planned pair.
func carveLines(g grid.Grid, regions []region.Region, method Method, o Options) grid.Grid {
	if len(regions) < 2 {
		return g.Clone()
	}
	cs := region.Centroids(regions)
	var pairs []Pair
	switch method {
	case MethodSequential:
		pairs = SequentialPairs(cs)
	case MethodNearest:
		pairs = NearestPairs(cs, o.MaxConnections)
	case MethodChain:
		pairs = ChainPairs(cs)
	case MethodMST:
		pairs = SpanningPairs(cs)
	}

	b := grid.NewBuilder(g)
	for _, p := range pairs {
		from, to := cs[p.From], cs[p.To]
		corridor.Carve(b, from, to, o.Cell, o.Thickness)
		o.corridorDone(method, p, from, to)
	}
	o.passDone(method, len(regions), len(pairs))

	return b.Freeze()
}

// carveWalks paints one random-walk trail per consecutive region pair.
func carveWalks(g grid.Grid, regions []region.Region, o Options) grid.Grid {
	if len(regions) < 2 {
		return g.Clone()
	}
	cs := region.Centroids(regions)
	rng := rngFromSeed(o.Seed)
	h, w := g.Dimensions()

	b := grid.NewBuilder(g)
	pairs := SequentialPairs(cs)
	for _, p := range pairs {
		trail := corridor.Walk(cs[p.From], cs[p.To], o.WalkSteps, o.WalkBias, rng, h, w)
		corridor.StampTrail(b, trail, o.Cell, o.Thickness)
		o.corridorDone(MethodRandomWalk, p, trail[0], trail[len(trail)-1])
	}
	o.passDone(MethodRandomWalk, len(regions), len(pairs))

	return b.Freeze()
}

// carveBridges paints minimum-conversion paths along MST pairs. Each path is
// searched on the grid as carved so far, so later bridges reuse earlier ones.
func carveBridges(g grid.Grid, regions []region.Region, o Options) grid.Grid {
	cur := g.Clone()
	if len(regions) < 2 {
		return cur
	}
	pairs := SpanningPairs(region.Centroids(regions))
	carved := 0
	for _, p := range pairs {
		path, _, ok := region.Bridge(cur, regions[p.From], regions[p.To], o.Cell)
		if !ok {
			continue
		}
		b := grid.NewBuilder(cur)
		for _, pt := range path {
			corridor.Stamp(b, pt, o.Cell, o.Thickness)
		}
		cur = b.Freeze()
		carved++
		o.corridorDone(MethodBridge, p, path[0], path[len(path)-1])
	}
	o.passDone(MethodBridge, len(regions), carved)

	return cur
}

func (o Options) corridorDone(method Method, p Pair, from, to grid.Point) {
	o.Logger.Debug("corridor carved",
		slog.String("method", string(method)),
		slog.Int("from_region", p.From),
		slog.Int("to_region", p.To),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int("thickness", o.Thickness),
	)
	if o.OnCorridor != nil {
		o.OnCorridor(from, to)
	}
}

func (o Options) passDone(method Method, regions, corridors int) {
	o.Logger.Debug("connectivity pass complete",
		slog.String("method", string(method)),
		slog.Int("regions", regions),
		slog.Int("corridors", corridors),
	)
}
