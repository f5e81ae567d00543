package bench

import (
	"context"
	"math/rand"
	"time"

	"github.com/evilsocket/predict/kernel"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// tolerance used to check that every strategy agrees with the first one
const tolerance = 1e-9

// Measurement holds the timings of one strategy for one input size.
type Measurement struct {
	Strategy string
	Size     int
	Rounds   int
	// Setup is the duration of the first, untimed, evaluation: it includes
	// one-time costs like compilation.
	Setup time.Duration
	Total time.Duration
	Min   time.Duration
	Avg   time.Duration
	// Speedup relative to the first strategy of the run.
	Speedup float64
	// Agrees is true when the result matches the first strategy's one.
	Agrees bool
}

// Runner times the configured strategies.
type Runner struct {
	cfg     *Config
	entries []*entry
	metrics *Metrics
	rng     *rand.Rand
}

// NewRunner validates the configuration and resolves its strategies, metrics
// can be nil.
func NewRunner(cfg *Config, metrics *Metrics) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	entries := make([]*entry, 0, len(cfg.Strategies))
	for _, name := range cfg.Strategies {
		e, err := resolve(name, cfg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return &Runner{
		cfg:     cfg,
		entries: entries,
		metrics: metrics,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run evaluates every strategy for every configured size, it stops between
// measurements if ctx is canceled.
func (r *Runner) Run(ctx context.Context) ([]Measurement, error) {
	results := make([]Measurement, 0, len(r.cfg.Sizes)*len(r.entries))

	for _, size := range r.cfg.Sizes {
		x, y, z := Inputs(r.rng, size, r.cfg.MaxX)

		var reference *kernel.Result
		var baseline time.Duration

		for idx, e := range r.entries {
			if err := ctx.Err(); err != nil {
				return results, err
			}

			m, res, err := r.measure(e, x, y, z)
			if err != nil {
				return results, err
			}

			if idx == 0 {
				reference = res
				baseline = m.Avg
				m.Agrees = true
			} else {
				m.Agrees = mat.EqualApprox(reference, res, tolerance)
			}
			if m.Avg > 0 {
				m.Speedup = float64(baseline) / float64(m.Avg)
			}

			log.WithFields(log.Fields{
				"strategy": m.Strategy,
				"size":     m.Size,
				"setup":    m.Setup,
				"avg":      m.Avg,
				"min":      m.Min,
				"speedup":  m.Speedup,
			}).Debug("measured")

			if !m.Agrees {
				log.WithField("strategy", m.Strategy).Warnf("result differs from %s for size %d", r.entries[0].name, size)
			}

			results = append(results, m)
		}
	}

	return results, nil
}

func (r *Runner) measure(e *entry, x, y, z []float64) (Measurement, *kernel.Result, error) {
	m := Measurement{
		Strategy: e.name,
		Size:     len(x),
		Rounds:   r.cfg.Rounds,
	}

	start := time.Now()
	res, err := e.eval(x, y, z, r.cfg.Overlay)
	if err != nil {
		return m, nil, err
	}
	m.Setup = time.Since(start)

	for i := 0; i < r.cfg.Rounds; i++ {
		start = time.Now()
		if _, err := e.eval(x, y, z, r.cfg.Overlay); err != nil {
			return m, nil, err
		}
		elapsed := time.Since(start)

		m.Total += elapsed
		if i == 0 || elapsed < m.Min {
			m.Min = elapsed
		}
		if r.metrics != nil {
			r.metrics.Observe(e.name, m.Size, m.Size*kernel.Steps, elapsed)
		}
	}
	m.Avg = m.Total / time.Duration(r.cfg.Rounds)

	return m, res, nil
}
