package config

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Fleet defaults
	if cfg.Fleet.MinCapacity == 0 {
		cfg.Fleet.MinCapacity = 20
	}
	if cfg.Fleet.MaxCapacity == 0 {
		cfg.Fleet.MaxCapacity = 60
	}
	if cfg.Fleet.Step == 0 {
		cfg.Fleet.Step = 5
	}
	if cfg.Fleet.DefaultSize == 0 {
		cfg.Fleet.DefaultSize = 5
	}
}
