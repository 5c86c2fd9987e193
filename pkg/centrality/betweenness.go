// Package centrality implements exact betweenness centrality for undirected,
// unweighted graphs using Brandes' method: one BFS shortest-path pass per
// source followed by a backward dependency-accumulation sweep, O(V*E) overall.
//
// The engine is a pure function of the graph. It holds no cross-call state
// and produces a fresh result mapping on every invocation, so a frozen graph
// may be analysed from any number of goroutines.
package centrality

import (
	"context"
	"sort"
	"time"

	"github.com/dd0wney/sociograph/pkg/graph"
	"github.com/dd0wney/sociograph/pkg/logging"
	"github.com/dd0wney/sociograph/pkg/metrics"
	"github.com/dd0wney/sociograph/pkg/parallel"
	"github.com/dd0wney/sociograph/pkg/validation"
)

// Result maps each node to its normalised betweenness centrality in [0, 1].
type Result map[graph.NodeID]float64

// Options configures a computation. The zero value is valid: one worker per
// CPU, no logging, no metrics.
type Options struct {
	// Workers is the number of goroutines sources are partitioned across.
	// Non-positive means one per CPU.
	Workers int
	// Logger receives per-run debug and timing output.
	Logger logging.Logger
	// Metrics, when set, records computation counters and durations.
	Metrics *metrics.Registry
}

// Validate checks option ranges.
func (o Options) Validate() error {
	return validation.NewConfigValidator("centrality.Options").
		MaxInt("Workers", o.Workers, parallel.MaxWorkers).
		Validate()
}

func (o Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}

// ComputeBetweennessCentrality computes normalised betweenness centrality for
// every node of g with default options. This is the computation half of the
// engine's external surface; graph.BuildGraph is the construction half.
func ComputeBetweennessCentrality(g *graph.Graph) Result {
	result, _ := Compute(context.Background(), g, Options{})
	return result
}

// Compute computes normalised betweenness centrality for every node of g.
// It fails only on invalid options or context cancellation; a well-formed
// graph always yields a full result mapping, including zero entries for
// isolated and peripheral nodes.
func Compute(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := rawBetweenness(ctx, g, opts, nil)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.RecordComputation("betweenness", "cancelled", time.Since(start))
		}
		return nil, err
	}

	result := finalize(g, raw)

	if opts.Metrics != nil {
		opts.Metrics.RecordComputation("betweenness", "success", time.Since(start))
		opts.Metrics.RecordSources(g.NodeCount())
		opts.Metrics.UpdateGraphMetrics(g.NodeCount(), g.EdgeCount())
	}
	opts.logger().Debug("betweenness centrality computed",
		logging.Component("centrality"),
		logging.Count(g.NodeCount()),
		logging.Latency(time.Since(start)))

	return result, nil
}

// rawBetweenness runs the explore-then-accumulate pipeline for every source
// and returns the unnormalised dependency sums. When edgeRaw is non-nil the
// pass additionally accumulates edge betweenness (sequentially).
func rawBetweenness(ctx context.Context, g *graph.Graph, opts Options, edgeRaw map[graph.Edge]float64) (map[graph.NodeID]float64, error) {
	sources := g.NodeIDs()
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	raw := make(map[graph.NodeID]float64, len(sources))
	for _, id := range sources {
		raw[id] = 0.0
	}

	// Nothing can lie between fewer than 3 nodes.
	if len(sources) <= 2 {
		return raw, nil
	}

	// Edge accumulation shares one map and runs sequentially; node-only runs
	// partition the sources across the pool with private partial sums.
	if edgeRaw != nil {
		for _, source := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			sp := exploreFrom(g, source)
			accumulateDependencies(sp, raw, edgeRaw)
		}
		return raw, nil
	}

	pool, err := parallel.NewWorkerPool(opts.Workers)
	if err != nil {
		return nil, err
	}
	if opts.Metrics != nil {
		opts.Metrics.SetWorkers(pool.Workers())
	}

	chunks := parallel.Partition(len(sources), pool.Workers())
	partials := make([]map[graph.NodeID]float64, len(chunks))

	for i, chunk := range chunks {
		i, chunk := i, chunk
		pool.Submit(func() {
			partial := make(map[graph.NodeID]float64, len(sources))
			for _, source := range sources[chunk[0]:chunk[1]] {
				if ctx.Err() != nil {
					return
				}
				sp := exploreFrom(g, source)
				accumulateDependencies(sp, partial, nil)
			}
			partials[i] = partial
		})
	}
	pool.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Merge partial sums pointwise. Addition is commutative, so the chunk
	// layout cannot change the result beyond floating-point rounding.
	for _, partial := range partials {
		for id, value := range partial {
			raw[id] += value
		}
	}
	return raw, nil
}

// finalize rescales raw dependency sums into normalised centrality. Each
// unordered pair was counted from both of its endpoints, hence the division
// by two; the 2/((n-1)(n-2)) factor maps scores into [0, 1].
func finalize(g *graph.Graph, raw map[graph.NodeID]float64) Result {
	n := g.NodeCount()
	result := make(Result, n)

	if n <= 2 {
		for id := range raw {
			result[id] = 0.0
		}
		return result
	}

	factor := 2.0 / float64((n-1)*(n-2))
	for id, value := range raw {
		result[id] = (value / 2.0) * factor
	}
	return result
}
