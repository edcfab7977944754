/*
Package analysis measures how many comparisons the sorts of an
inventory perform.

Run sorts many randomly generated collections of every size up to the
inventory capacity with each of the three sort keys, and summarizes the
observed comparison counts. The keys and sizes are analyzed
concurrently, and the trials for one key and size are in turn split
into batches that run concurrently. Every batch sorts its own
collections, so no collection is ever shared between goroutines.

Each trial draws its collection from a generator seeded with the
configured seed and the position of the trial, so the result of Run
depends on its configuration but not on how the trials are batched.
*/
package analysis

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/torre/component"
	"github.com/exascience/torre/internal"
	"github.com/exascience/torre/inventory"
	"github.com/exascience/torre/parallel"
)

// Orderings are the sort keys that Run analyzes, in report order.
var Orderings = []inventory.Ordering{inventory.ByName, inventory.ByType, inventory.ByPriority}

// Config determines the workload of Run.
type Config struct {
	// Trials is the number of random collections sorted per key and
	// size. It must be positive.
	Trials int

	// Batches is the number of batches the trials of one key and size
	// are split into. If Batches is 0, a default is used that takes
	// runtime.GOMAXPROCS(0) into account. Batches only affects how the
	// work is scheduled, never the result.
	Batches int

	// MaxSize is the largest collection size to analyze. Sizes from 0
	// to MaxSize are covered. It must be in [0, inventory.Capacity].
	MaxSize int

	// Seed initializes the pseudo-random generators, so that runs with
	// the same configuration are reproducible.
	Seed int64
}

// DefaultConfig returns the configuration used by the command line tool
// when no flags are given.
func DefaultConfig() Config {
	return Config{
		Trials:  1000,
		MaxSize: inventory.Capacity,
		Seed:    1,
	}
}

// Validate reports whether c describes a workload Run can perform.
func (c Config) Validate() error {
	switch {
	case c.Trials <= 0:
		return fmt.Errorf("invalid number of trials: %d", c.Trials)
	case c.Batches < 0:
		return fmt.Errorf("invalid number of batches: %d", c.Batches)
	case c.MaxSize < 0 || c.MaxSize > inventory.Capacity:
		return fmt.Errorf("invalid maximum size: %d is not in [0, %d]", c.MaxSize, inventory.Capacity)
	}
	return nil
}

// A Summary describes the comparison counts observed for one sort key
// and collection size.
type Summary struct {
	Ordering  inventory.Ordering
	Algorithm inventory.Algorithm
	Size      int
	Trials    int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64

	// Quadratic is n(n-1)/2, the number of comparisons bubble and
	// selection sort always perform, and the worst case of insertion
	// sort.
	Quadratic uint64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s by %s, n=%d: mean %.2f, sd %.2f, min %.0f, max %.0f (n(n-1)/2 = %d)",
		s.Algorithm, s.Ordering, s.Size, s.Mean, s.StdDev, s.Min, s.Max, s.Quadratic)
}

// Quadratic returns n(n-1)/2.
func Quadratic(n int) uint64 {
	if n < 2 {
		return 0
	}
	return uint64(n) * uint64(n-1) / 2
}

var (
	partNames = []string{
		"Antena", "Bateria", "Chip", "Cabo", "Motor", "Painel", "Sensor",
		"Turbina", "Visor", "Radio", "Placa", "Lente",
	}
	partTypes = []string{"Controle", "Energia", "Estrutura", "Propulsao", "Sinal"}
)

// RandomComponents returns n valid components with fields drawn from r.
// Names and types are drawn from small pools, so duplicate keys are
// common.
func RandomComponents(r *rand.Rand, n int) []component.Component {
	result := make([]component.Component, n)
	for i := range result {
		result[i] = component.Component{
			Name:     partNames[r.Intn(len(partNames))],
			Type:     partTypes[r.Intn(len(partTypes))],
			Priority: component.MinPriority + r.Intn(component.MaxPriority-component.MinPriority+1),
		}
	}
	return result
}

// runTrials sorts the trials from low to high of one key and size.
// Trial i sorts a collection drawn from a generator seeded with seed+i.
func runTrials(ctx context.Context, o inventory.Ordering, size int, seed int64, samples []float64, low, high int) error {
	r := rand.New(rand.NewSource(seed))
	var c inventory.Collection
	for i := low; i < high; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.Seed(seed + int64(i))
		if err := c.Register(RandomComponents(r, size)...); err != nil {
			return err
		}
		samples[i] = float64(c.Sort(o))
	}
	return nil
}

func summarize(o inventory.Ordering, size int, samples []float64) Summary {
	s := Summary{
		Ordering:  o,
		Algorithm: o.Algorithm(),
		Size:      size,
		Trials:    len(samples),
		Min:       floats.Min(samples),
		Max:       floats.Max(samples),
		Quadratic: Quadratic(size),
	}
	if len(samples) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(samples, nil)
	} else {
		s.Mean = samples[0]
	}
	return s
}

/*
Run performs the analysis described by cfg and returns one Summary per
sort key and size, ordered by key (as in Orderings) and then by size.

Run returns early with the context's error if ctx is canceled, and
converts panics in any batch into errors.
*/
func Run(ctx context.Context, cfg Config) (result []Summary, err error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	defer internal.RecoverPanic(&err)

	sizes := cfg.MaxSize + 1
	samples := make([][]float64, len(Orderings)*sizes)
	err = parallel.Range(0, len(samples), 0, func(low, high int) error {
		for cell := low; cell < high; cell++ {
			o, size := Orderings[cell/sizes], cell%sizes
			seed := cfg.Seed + int64(cell)*int64(cfg.Trials)
			cellSamples := make([]float64, cfg.Trials)
			err := parallel.Range(0, cfg.Trials, cfg.Batches, func(low, high int) error {
				return runTrials(ctx, o, size, seed, cellSamples, low, high)
			})
			if err != nil {
				return err
			}
			samples[cell] = cellSamples
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result = make([]Summary, 0, len(samples))
	for cell, cellSamples := range samples {
		result = append(result, summarize(Orderings[cell/sizes], cell%sizes, cellSamples))
	}
	return result, nil
}
