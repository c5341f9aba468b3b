package api

import (
	"context"
	"os"

	"github.com/google/uuid"

	"kgeyst.com/dataprep/pkg/common"
	"kgeyst.com/dataprep/pkg/dataprep/domain"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/filesystem"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/gonum"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/imaging"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/labelapi"
	"kgeyst.com/dataprep/pkg/dataprep/infrastructure/logging"
)

// API is the entrypoint to the dataset builder. It shouldn't contain any logic of its own; it glues the
// components together and provides a public interface for domain.Pipeline.
type API interface {
	// Run builds the dataset once. The report is returned even when the run is aborted.
	Run(ctx context.Context) (*domain.Report, error)
	// RunID identifies the run in logs and in the report.
	RunID() string
}

type api struct {
	pipeline *domain.Pipeline
	config   domain.Config
	runID    string
	logger   common.Logger
}

// NewLogger returns the logger configured by `config`: a file logger if a log path is set, the console otherwise.
func NewLogger(config domain.Config) common.Logger {
	if config.LogPath != "" {
		return common.NewFileLogger(config.LogPath)
	}
	return common.NewConsoleLogger(os.Stdout)
}

func NewAPI(config domain.Config, logger common.Logger) (API, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}
	transformer, err := imaging.NewTransformer(config.Interpolation)
	if err != nil {
		return nil, err
	}
	labelResolver := logging.NewLabelResolverDecorator(
		labelapi.NewResolver(
			config.RequestTimeout,
			labelapi.WithServerErrorsAsFailures(config.ServerErrorsAsFailures),
		),
		logger,
	)
	runID := uuid.NewString()
	return &api{
		pipeline: domain.NewPipeline(
			filesystem.NewScanner(),
			transformer,
			labelResolver,
			filesystem.NewDatasetWriter(),
			gonum.NewStatistics(),
			config,
			runID,
			logger,
		),
		config: config,
		runID:  runID,
		logger: logger,
	}, nil
}

func (a *api) Run(ctx context.Context) (*domain.Report, error) {
	report, runErr := a.pipeline.Run(ctx)
	if a.config.ReportPath != "" {
		err := filesystem.WriteReport(a.config.ReportPath, report)
		if err != nil {
			a.logger.Error("failed to write the run report: " + err.Error())
		} else {
			a.logger.Info("Run report written to " + a.config.ReportPath)
		}
	}
	return report, runErr
}

func (a *api) RunID() string {
	return a.runID
}
