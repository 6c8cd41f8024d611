package app

import (
	"context"

	"github.com/sheldir/provsh/internal/infrastructure/config"
	"github.com/sheldir/provsh/internal/infrastructure/history"
	"github.com/sheldir/provsh/internal/infrastructure/settings"
	"github.com/sheldir/provsh/internal/infrastructure/shellenv"
	"github.com/sheldir/provsh/internal/pkg/logger"
	"github.com/sheldir/provsh/internal/ports"
	"github.com/sheldir/provsh/internal/services"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	ProvisionService *services.ProvisionService
	StatusService    *services.StatusService
	ConfigLoader     *config.FileLoader
	Settings         ports.SettingsProvider
	ProvisionLog     ports.ProvisionLog
	Logger           ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	settingsStore := settings.NewStore(cfg.Provision.SettingsFile)

	var provisionLog ports.ProvisionLog
	if cfg.History.Store == "file" {
		provisionLog = history.NewFileStore("")
	} else {
		provisionLog = history.NewSQLiteStore("")
	}

	env := shellenv.SnapshotEnv()
	engine := &shellenv.Provisioner{Env: env, Logger: log}

	provisionService := &services.ProvisionService{
		ConfigProvider: cfgLoader,
		Settings:       settingsStore,
		Provisioner:    engine,
		Log:            provisionLog,
		Logger:         log,
	}

	statusService := &services.StatusService{
		ConfigProvider: cfgLoader,
		Inspector:      engine,
	}

	return &Container{
		ProvisionService: provisionService,
		StatusService:    statusService,
		ConfigLoader:     cfgLoader,
		Settings:         settingsStore,
		ProvisionLog:     provisionLog,
		Logger:           log,
	}, nil
}
