package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/andrescamacho/carpool-go/internal/adapters/metrics"
	"github.com/andrescamacho/carpool-go/internal/adapters/persistence"
	"github.com/andrescamacho/carpool-go/internal/application/common"
	"github.com/andrescamacho/carpool-go/internal/application/setup"
	"github.com/andrescamacho/carpool-go/internal/domain/fleet"
	"github.com/andrescamacho/carpool-go/internal/infrastructure/config"
	"github.com/andrescamacho/carpool-go/internal/infrastructure/logging"
)

// app is the per-invocation wiring: config, logger, registry and metrics
type app struct {
	cfg       *config.Config
	ctx       context.Context
	logCloser io.Closer
	metricsOn bool
}

func newApp(opts *rootOptions) (*app, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}

	logger, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:       cfg,
		ctx:       logger.WithContext(context.Background()),
		logCloser: closer,
	}

	if cfg.Metrics.Enabled || opts.showMetrics {
		if _, err := metrics.Enable(); err != nil {
			_ = closer.Close()
			return nil, fmt.Errorf("failed to enable metrics: %w", err)
		}
		a.metricsOn = true
	}

	return a, nil
}

// mediator builds a fresh registry and mediator. seed 0 falls back to the configured seed.
func (a *app) mediator(seed uint64) (common.Mediator, error) {
	repo, err := persistence.NewMemDBVehicleRepository()
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = a.cfg.Fleet.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	zerolog.Ctx(a.ctx).Debug().Uint64("seed", seed).Msg("fleet random source seeded")

	generator, err := fleet.NewGenerator(fleet.GeneratorOptions{
		MinCapacity: a.cfg.Fleet.MinCapacity,
		MaxCapacity: a.cfg.Fleet.MaxCapacity,
		Step:        a.cfg.Fleet.Step,
	}, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		return nil, err
	}

	return setup.NewHandlerRegistry(repo, generator).CreateConfiguredMediator()
}

func (a *app) close() {
	if a.metricsOn {
		metrics.Reset()
	}
	_ = a.logCloser.Close()
}
