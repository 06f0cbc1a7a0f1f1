// Package builder generates deterministic benchmark graphs for vertex cover
// experiments: paths, cycles, stars, wheels, complete and complete bipartite
// graphs, grids, Erdős–Rényi random graphs and random regular graphs.
//
// What
//
//	Every topology is a Constructor closure applied to a *core.Graph by
//	BuildGraph, so several topologies can be composed into one fixture:
//
//	  g, err := builder.BuildGraph(nil,
//	      []builder.BuilderOption{builder.WithSeed(42)},
//	      builder.RandomSparse(30, 0.1))
//
//	ForTopology maps a topology name ("path", "grid", "random", ...) and a
//	Params value onto a Constructor; the generate command uses it.
//
// Determinism
//
//   - Vertex IDs come from cfg.idFn (decimal by default), added in index order.
//   - Edges are emitted in a documented, stable order, which is the insertion
//     order the cover heuristics scan in.
//   - Stochastic topologies need an RNG (WithSeed / WithRand); the same seed and
//     constructor order yield the same graph.
//
// Layout
//
//	WithPositions() stores "x"/"y" vertex attributes (grid coordinates, or a
//	circle for ring-like topologies) that the SVG renderer uses.
//
// Errors
//
//	Constructors never panic; they return ErrTooFewVertices,
//	ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed wrapped with
//	the constructor name. Option constructors panic on nil functions.
package builder
