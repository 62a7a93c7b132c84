package fleet

import (
	"fmt"
	"math/rand/v2"

	"github.com/andrescamacho/carpool-go/internal/domain/shared"
	"github.com/andrescamacho/carpool-go/internal/domain/vehicle"
)

// GeneratorOptions bounds the random tank sizes of a generated fleet
type GeneratorOptions struct {
	MinCapacity int // inclusive
	MaxCapacity int // exclusive
	Step        int
}

// DefaultGeneratorOptions yields capacities 20, 25, ..., 55
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{MinCapacity: 20, MaxCapacity: 60, Step: 5}
}

// Generator builds fleets of distinct petrol vehicles with random tanks.
//
// Business Rules:
// 1. Every vehicle gets a different brand label
// 2. Capacity is a multiple of Step in [MinCapacity, MaxCapacity)
// 3. Initial fuel is a multiple of Step in [0, capacity)
//
// Generator is not safe for concurrent use because *rand.Rand is not.
type Generator struct {
	opts   GeneratorOptions
	brands []string
	rng    *rand.Rand
}

// NewGenerator creates a generator over the default brand list
func NewGenerator(opts GeneratorOptions, rng *rand.Rand) (*Generator, error) {
	if opts.Step <= 0 {
		return nil, shared.NewInvalidArgumentError("step", "must be > 0")
	}
	if opts.MinCapacity <= 0 {
		return nil, shared.NewInvalidArgumentError("min_capacity", "must be > 0")
	}
	if opts.MaxCapacity <= opts.MinCapacity {
		return nil, shared.NewInvalidArgumentError("max_capacity", "must be greater than min_capacity")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	return &Generator{
		opts:   opts,
		brands: Brands,
		rng:    rng,
	}, nil
}

// Generate returns n vehicles with unique brands
func (g *Generator) Generate(n int) ([]*vehicle.Vehicle, error) {
	if n < 0 {
		return nil, shared.NewInvalidArgumentError("size", "must be >= 0")
	}
	if n > len(g.brands) {
		return nil, shared.NewInvalidArgumentError("size",
			fmt.Sprintf("at most %d unique brands are available, requested %d", len(g.brands), n))
	}

	picked := g.rng.Perm(len(g.brands))[:n]
	vehicles := make([]*vehicle.Vehicle, 0, n)
	for _, idx := range picked {
		capacity := g.randRange(g.opts.MinCapacity, g.opts.MaxCapacity)
		fuel := g.randRange(0, capacity)

		v, err := vehicle.NewVehicle(
			g.brands[idx],
			vehicle.FuelTypePetrol,
			vehicle.CapacityOf(float64(capacity)),
			float64(fuel),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to build vehicle %s: %w", g.brands[idx], err)
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}

// randRange picks a multiple of Step offset from lo in [lo, hi)
func (g *Generator) randRange(lo, hi int) int {
	steps := (hi - lo + g.opts.Step - 1) / g.opts.Step
	return lo + g.rng.IntN(steps)*g.opts.Step
}
