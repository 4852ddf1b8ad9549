package Bench

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"golang.org/x/sync/errgroup"
)

// MismatchError is returned when an engine disagrees with the oracle.
type MismatchError struct {
	Engine string
	Key    int
	Size   int
	Found  bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: search of %d among the first %d keys gave %v, want %v", e.Engine, e.Key, e.Size, e.Found, !e.Found)
}

type series struct {
	insert, search []float64
}

// Runner times the configured engines on growing prefixes of one dataset.
type Runner struct {
	cfg *Config
	log *slog.Logger
}

func NewRunner(cfg *Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, log: logger}
}

// StepSizes splits total into steps growing prefix lengths, the last being
// total.
func StepSizes(total, steps int) []int {
	sizes := make([]int, steps)
	for i := range sizes {
		sizes[i] = total * (i + 1) / steps
	}
	return sizes
}

// Run measures every engine on data concurrently, one goroutine each. The
// first engine to fail cancels the others.
func (u *Runner) Run(ctx context.Context, data []int) (*Results, error) {
	if len(data) < u.cfg.Steps {
		return nil, fmt.Errorf("%d keys can't fill %d steps", len(data), u.cfg.Steps)
	}
	sizes := StepSizes(len(data), u.cfg.Steps)

	// key -> index of its first occurrence, so a key is in data[:n] iff its
	// index is below n.
	oracle := hashmap.New[int, int]()
	for i, k := range data {
		oracle.Insert(k, i)
	}

	out := haxmap.New[string, *series]()
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range u.cfg.Engines {
		g.Go(func() error {
			s, err := u.measure(ctx, name, data, sizes, oracle)
			if err != nil {
				return err
			}
			out.Set(name, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Results{
		ExecTimes:   make(map[string][]float64, len(u.cfg.Engines)),
		InsertTimes: make(map[string][]float64, len(u.cfg.Engines)),
		DataSizes:   sizes,
	}
	out.ForEach(func(name string, s *series) bool {
		res.ExecTimes[name] = s.search
		res.InsertTimes[name] = s.insert
		return true
	})
	return res, nil
}

func (u *Runner) measure(ctx context.Context, name string, data, sizes []int, oracle *hashmap.Map[int, int]) (*series, error) {
	tree, err := NewEngine(name, u.cfg.Seed)
	if err != nil {
		return nil, err
	}
	queries := make([]int, u.cfg.Searches)
	found := make([]bool, u.cfg.Searches)
	s := &series{insert: make([]float64, 0, len(sizes)), search: make([]float64, 0, len(sizes))}

	var total time.Duration
	prev := 0
	for _, n := range sizes {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		for _, k := range data[prev:n] {
			if err = tree.Insert(k); err != nil {
				return nil, fmt.Errorf("%s: insert %d: %w", name, k, err)
			}
		}
		total += time.Since(start)
		prev = n

		// half the queries hit, the rest are drawn from the whole key range.
		// The stream depends on the step only, so every engine answers the
		// same lookups.
		rnd := rand.New(rand.NewPCG(u.cfg.Seed, uint64(n)))
		for i := range queries {
			if i&1 == 0 {
				queries[i] = data[rnd.IntN(n)]
			} else {
				queries[i] = rnd.IntN(u.cfg.MaxValue)
			}
		}
		start = time.Now()
		for i, q := range queries {
			if found[i], err = tree.Search(q); err != nil {
				return nil, fmt.Errorf("%s: search %d: %w", name, q, err)
			}
		}
		elapsed := time.Since(start)

		for i, q := range queries {
			first, ok := oracle.Get(q)
			if want := ok && first < n; found[i] != want {
				return nil, &MismatchError{Engine: name, Key: q, Size: n, Found: found[i]}
			}
		}

		mean := 0.
		if len(queries) > 0 {
			mean = elapsed.Seconds() / float64(len(queries))
		}
		s.insert = append(s.insert, total.Seconds())
		s.search = append(s.search, mean)
		u.log.Debug("step done", "engine", name, "size", n, "insert", total, "search", seconds(mean))
	}
	u.log.Info("engine done", "engine", name, "keys", len(data), "insert", total)
	return s, nil
}
