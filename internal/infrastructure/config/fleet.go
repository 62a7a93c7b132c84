package config

// FleetConfig holds random fleet generation settings
type FleetConfig struct {
	// Smallest tank capacity in litres (inclusive)
	MinCapacity int `mapstructure:"min_capacity" validate:"min=1"`

	// Largest tank capacity in litres (exclusive)
	MaxCapacity int `mapstructure:"max_capacity" validate:"gtfield=MinCapacity"`

	// Capacity and initial fuel are multiples of Step
	Step int `mapstructure:"step" validate:"min=1"`

	// Random seed, 0 = seed from the clock
	Seed uint64 `mapstructure:"seed"`

	// Fleet size used when the CLI gets no --size
	DefaultSize int `mapstructure:"default_size" validate:"min=0"`
}
