package vehicle

import (
	"fmt"
	"math"

	"github.com/andrescamacho/carpool-go/internal/domain/shared"
)

// Capacity is an optional tank volume in litres
type Capacity struct {
	litres float64
	known  bool
}

// UnknownCapacity is the capacity of a tank whose volume was never supplied
var UnknownCapacity = Capacity{}

// CapacityOf marks a capacity as supplied. Validation happens in NewTank.
func CapacityOf(litres float64) Capacity {
	return Capacity{litres: litres, known: true}
}

// CapacityFromPtr maps nil to UnknownCapacity
func CapacityFromPtr(litres *float64) Capacity {
	if litres == nil {
		return UnknownCapacity
	}
	return CapacityOf(*litres)
}

// Litres returns the capacity and whether it is known
func (c Capacity) Litres() (float64, bool) {
	return c.litres, c.known
}

func (c Capacity) IsKnown() bool {
	return c.known
}

func (c Capacity) String() string {
	if !c.known {
		return "unknown"
	}
	return fmt.Sprintf("%g", c.litres)
}

// Tank is a vehicle fuel tank.
//
// Invariants:
// - capacity is positive and never changes once set
// - 0 <= fuel <= capacity after every operation
// - fuel only changes through Fill
//
// A Tank has no internal locking; callers serialize fills per tank.
type Tank struct {
	capacity Capacity
	fuel     float64
	policy   FillPolicy
}

// NewTank creates a tank with validation
func NewTank(capacity Capacity, initialFuel float64, policy FillPolicy) (*Tank, error) {
	if !capacity.known {
		if initialFuel != 0 {
			return nil, shared.NewConfigurationError("tanked fuel requires tank capacity")
		}
		return &Tank{capacity: UnknownCapacity, policy: policy}, nil
	}

	if !isFinite(capacity.litres) || capacity.litres <= 0 {
		return nil, shared.NewConfigurationError("tank capacity must be > 0")
	}
	if math.IsNaN(initialFuel) || initialFuel < 0 {
		return nil, shared.NewConfigurationError("tanked fuel must be >= 0")
	}
	if initialFuel > capacity.litres {
		return nil, shared.NewCapacityExceededError(initialFuel, capacity.litres)
	}

	return &Tank{
		capacity: capacity,
		fuel:     initialFuel,
		policy:   policy,
	}, nil
}

func (t *Tank) Capacity() Capacity {
	return t.capacity
}

func (t *Tank) Fuel() float64 {
	return t.fuel
}

func (t *Tank) Policy() FillPolicy {
	return t.policy
}

// Room returns the litres that still fit, 0 for an unknown capacity
func (t *Tank) Room() float64 {
	if !t.capacity.known {
		return 0
	}
	return t.capacity.litres - t.fuel
}

// PercentFilled returns fuel as percentage of capacity (0-100).
// It is computed on every call so it never goes stale.
func (t *Tank) PercentFilled() float64 {
	if !t.capacity.known {
		return 0.0
	}
	return t.fuel / t.capacity.litres * 100.0
}

// IsFull checks if fuel is at capacity
func (t *Tank) IsFull() bool {
	return t.capacity.known && t.fuel == t.capacity.litres
}

// Fill applies a fill request and returns the litres actually added.
// On error the tank is left untouched.
func (t *Tank) Fill(req FillRequest) (float64, error) {
	if !t.policy.AcceptsFuel() {
		return 0, shared.NewFuelUnavailableError(dieselUnavailableMessage)
	}
	if !t.capacity.known {
		return 0, shared.NewUnknownCapacityError()
	}

	mode := req.Mode()
	if mode == FillModeInvalid {
		return 0, shared.NewInvalidRequestError("target fraction and litres are not allowed together")
	}

	switch mode {
	case FillModePercentage:
		return t.fillToFraction(*req.TargetFraction)
	case FillModeLitres:
		return t.fillLitres(*req.Litres)
	default:
		added := t.capacity.litres - t.fuel
		t.fuel = t.capacity.litres
		return added, nil
	}
}

func (t *Tank) fillToFraction(fraction float64) (float64, error) {
	if !isFinite(fraction) || fraction < 0 {
		return 0, shared.NewInvalidArgumentError("target_fraction", "must be a number >= 0")
	}
	if fraction > 1 {
		return 0, shared.NewInvalidArgumentError("target_fraction", "must be in range (0, 1]")
	}
	if fraction == 0 {
		return 0, nil
	}

	target := t.capacity.litres * fraction
	added := target - t.fuel
	// Already at or above the target: nothing is drained, nothing is added.
	if added <= 0 {
		return 0, nil
	}
	t.fuel = target
	return added, nil
}

func (t *Tank) fillLitres(litres float64) (float64, error) {
	if !isFinite(litres) || litres < 0 {
		return 0, shared.NewInvalidArgumentError("litres", "must be a number >= 0")
	}
	if litres == 0 {
		return 0, nil
	}
	if t.fuel+litres > t.capacity.litres {
		return 0, shared.NewCapacityExceededError(litres, t.Room())
	}
	t.fuel += litres
	return litres, nil
}

func (t *Tank) String() string {
	return fmt.Sprintf("Tank(%g/%s)", t.fuel, t.capacity)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
