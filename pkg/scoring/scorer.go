// Package scoring evaluates the Surprise of graph partitions, logging each
// evaluation and recording it in the metrics registry.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-surprise/pkg/algorithms"
	"github.com/dd0wney/cluso-surprise/pkg/graph"
	"github.com/dd0wney/cluso-surprise/pkg/logging"
	"github.com/dd0wney/cluso-surprise/pkg/metrics"
	"github.com/dd0wney/cluso-surprise/pkg/parallel"
	"github.com/dd0wney/cluso-surprise/pkg/surprise"
)

// Candidate is a named partition to score.
type Candidate struct {
	Name      string
	Partition graph.Partition
}

// PartitionScore is the outcome of scoring one candidate.
type PartitionScore struct {
	Name        string
	Communities int
	Stats       surprise.Stats
	Result      *surprise.Result
	Modularity  float64
	Duration    time.Duration
	Err         error
}

// Surprise returns the score, or 0 when scoring failed.
func (ps PartitionScore) Surprise() float64 {
	if ps.Result == nil {
		return 0
	}
	return ps.Result.Score
}

// Run is the outcome of a ScoreAll batch.
type Run struct {
	ID       string
	Scores   []PartitionScore
	Duration time.Duration
}

// Failed returns the number of candidates that could not be scored.
func (r *Run) Failed() int {
	n := 0
	for _, s := range r.Scores {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// Best returns the index of the successfully scored candidate with the
// highest Surprise; ties go to the earliest.
func (r *Run) Best() (int, bool) {
	best := -1
	for i, s := range r.Scores {
		if s.Err != nil {
			continue
		}
		if best < 0 || s.Surprise() > r.Scores[best].Surprise() {
			best = i
		}
	}
	return best, best >= 0
}

// Scorer evaluates statistics and partitions.
type Scorer struct {
	logger  logging.Logger
	metrics *metrics.Registry
	workers int
}

// NewScorer creates a scorer. A nil logger uses logging.DefaultLogger() and a
// nil registry uses metrics.DefaultRegistry().
func NewScorer(logger logging.Logger, registry *metrics.Registry, workers int) *Scorer {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	if workers <= 0 {
		workers = 1
	}
	return &Scorer{
		logger:  logger.With(logging.Component("scoring")),
		metrics: registry,
		workers: workers,
	}
}

// Score evaluates one statistics tuple.
func (s *Scorer) Score(ctx context.Context, name string, stats surprise.Stats) (*surprise.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := surprise.Evaluate(stats)
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, surprise.ErrPreconditionViolation) {
			s.metrics.RecordRejection()
		}
		s.logger.Warn("statistics rejected",
			logging.Partition(name),
			logging.Stats(stats.F, stats.M, stats.N, stats.P),
			logging.Error(err))
		return nil, fmt.Errorf("score %s: %w", name, err)
	}

	s.metrics.RecordEvaluation(result.State.String(), result.Iterations, result.Degenerate, duration)
	s.logger.Debug("evaluated",
		logging.Partition(name),
		logging.Stats(stats.F, stats.M, stats.N, stats.P),
		logging.Score(result.Score),
		logging.String("state", result.State.String()),
		logging.Int("iterations", result.Iterations),
		logging.Bool("degenerate", result.Degenerate),
		logging.Latency(duration))

	return result, nil
}

// ScorePartition extracts the statistics of part on g and scores them.
func (s *Scorer) ScorePartition(ctx context.Context, g *graph.Graph, name string, part graph.Partition) (*PartitionScore, error) {
	start := time.Now()

	stats, err := algorithms.SurpriseStatistics(g, part)
	if err != nil {
		return nil, fmt.Errorf("partition %s: %w", name, err)
	}

	result, err := s.Score(ctx, name, stats)
	if err != nil {
		return nil, err
	}

	ps := &PartitionScore{
		Name:        name,
		Communities: part.Communities(),
		Stats:       stats,
		Result:      result,
		Modularity:  algorithms.Modularity(g, part),
		Duration:    time.Since(start),
	}
	s.metrics.RecordPartition(name, result.Score, ps.Modularity)

	return ps, nil
}

// ErrDuplicateCandidate is returned by ScoreAll when two candidates share a
// name, since results and metrics are keyed by it.
var ErrDuplicateCandidate = errors.New("duplicate candidate name")

// ScoreAll scores every candidate on the worker pool. Scores come back in
// candidate order with per-candidate failures in PartitionScore.Err; the
// returned error is non-nil when names collide or ctx ended the run early.
func (s *Scorer) ScoreAll(ctx context.Context, g *graph.Graph, candidates []Candidate) (*Run, error) {
	seen := make(map[string]int, len(candidates))
	for i, c := range candidates {
		if j, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateCandidate, c.Name, j, i)
		}
		seen[c.Name] = i
	}

	run := &Run{ID: uuid.New().String()}
	logger := s.logger.With(logging.RunID(run.ID))
	timer := logging.StartTimer(logger, "scoring run", logging.Count(len(candidates)))

	pool, err := parallel.NewWorkerPool(s.workers, logger)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	scores, errs := parallel.Map(ctx, pool, candidates, func(ctx context.Context, c Candidate) (PartitionScore, error) {
		ps, err := s.ScorePartition(ctx, g, c.Name, c.Partition)
		if err != nil {
			return PartitionScore{}, err
		}
		return *ps, nil
	})

	for i := range scores {
		if errs[i] != nil {
			scores[i] = PartitionScore{Name: candidates[i].Name, Err: errs[i]}
		}
	}
	run.Scores = scores

	if err := ctx.Err(); err != nil {
		run.Duration = timer.EndError(err)
		s.metrics.RecordRun("cancelled", run.Duration)
		return run, err
	}

	status := "success"
	if run.Failed() > 0 {
		status = "partial"
	}
	run.Duration = timer.End(logging.Int("failed", run.Failed()), logging.String("status", status))
	s.metrics.RecordRun(status, run.Duration)

	return run, nil
}
