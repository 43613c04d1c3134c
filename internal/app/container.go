// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"studyflow/internal/domain"
	"studyflow/internal/infra/config"
	"studyflow/internal/infra/jsonstore"
	"studyflow/internal/infra/logging"
	"studyflow/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	DataDir      string // Directory holding the snapshot and logs
	SnapshotPath string // Path to the JSON snapshot file
}

// defaultDataDir returns the default data directory.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "studyflow")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	Store  domain.SnapshotStore
	Clock  domain.Clock
	Logger domain.Logger

	AppConfig *domain.Config
	Config    Config
}

// New creates a new Container by loading the user configuration and wiring
// the file-backed implementations.
func New() (*Container, error) {
	appConfig, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	dataDir := appConfig.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o750); err != nil {
			return nil, err
		}
	}

	cfg := Config{
		DataDir:      dataDir,
		SnapshotPath: domain.SnapshotPath(dataDir),
	}

	return &Container{
		Store:     jsonstore.New(cfg.SnapshotPath),
		Clock:     domain.RealClock{},
		Logger:    logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level)),
		AppConfig: appConfig,
		Config:    cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.SnapshotStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Store:     store,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// UseCase factory methods

// StartSessionUseCase returns a new StartSession use case.
func (c *Container) StartSessionUseCase() *usecase.StartSession {
	return usecase.NewStartSession(c.Store, c.Clock, c.Logger)
}

// StopSessionUseCase returns a new StopSession use case.
func (c *Container) StopSessionUseCase() *usecase.StopSession {
	return usecase.NewStopSession(c.Store, c.Clock, c.Logger)
}

// StatusUseCase returns a new Status use case.
func (c *Container) StatusUseCase() *usecase.Status {
	return usecase.NewStatus(c.Store, c.Clock)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Clock, c.Logger)
}

// RenameTaskUseCase returns a new RenameTask use case.
func (c *Container) RenameTaskUseCase() *usecase.RenameTask {
	return usecase.NewRenameTask(c.Store, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Clock)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store, c.Clock)
}

// ReportUseCase returns a new Report use case.
func (c *Container) ReportUseCase() *usecase.Report {
	return usecase.NewReport(c.Store, c.Clock)
}

// ResetDataUseCase returns a new ResetData use case.
func (c *Container) ResetDataUseCase() *usecase.ResetData {
	return usecase.NewResetData(c.Store, c.Logger)
}
