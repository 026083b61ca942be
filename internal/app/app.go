// Package app wires configuration, the calc engine and the presentation
// layers into the bigcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/bignum/internal/arith"
	"github.com/agbru/bignum/internal/calc"
	"github.com/agbru/bignum/internal/calibration"
	"github.com/agbru/bignum/internal/cli"
	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
	"github.com/agbru/bignum/internal/server"
	"github.com/agbru/bignum/internal/sysmon"
	"github.com/agbru/bignum/internal/ui"
)

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger of the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "bigcalc")
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	// A saved calibration profile wins over the hardware estimates; explicit
	// flags and environment values win over both.
	if !cfg.Calibrate {
		if calibrated, ok := calibration.LoadCachedCalibration(cfg, cfg.CalibrationProfile); ok {
			app.Logger.Debug("loaded calibration profile")
			cfg = calibrated
		}
	}
	app.Config = config.ApplyAdaptiveThresholds(cfg)
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.Info:
		return a.runInfo(out)
	case a.Config.Calibrate:
		ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return calibration.RunCalibration(ctx, a.Config, calibration.Options{ProfilePath: a.Config.CalibrationProfile}, out)
	case a.Config.Serve != "":
		return a.runServe(ctx, out)
	default:
		return a.runCalculate(ctx, out)
	}
}

// runInfo prints the host features and the effective thresholds.
func (a *Application) runInfo(out io.Writer) int {
	fmt.Fprintf(out, "bigcalc %s\n", Version)
	cli.PrintHostInfo(arith.HostFeatures(), sysmon.Sample(), out)
	fmt.Fprintf(out, "Thresholds (%d-bit digits): Karatsuba=%d, Newton=%d, Parallel=%d\n",
		a.Config.DigitBits, a.Config.KaratsubaThreshold, a.Config.NewtonThreshold, a.Config.ParallelThreshold)
	return apperrors.ExitSuccess
}

// runServe runs the HTTP server until ctx ends or a signal arrives.
func (a *Application) runServe(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	reg := metrics.NewRegistry()
	engineCfg := calc.Config{Options: a.Config.ToOptions(), Logger: a.Logger, Metrics: reg}
	var eval server.Evaluator
	if a.Config.DigitBits == 32 {
		eval = server.NewEngineEvaluator(calc.NewEngine[uint32](engineCfg), a.Config.MaxOperandBits)
	} else {
		eval = server.NewEngineEvaluator(calc.NewEngine[uint64](engineCfg), a.Config.MaxOperandBits)
	}

	srv := server.New(server.Config{
		Addr:     a.Config.Serve,
		Timeout:  a.Config.Timeout,
		Security: server.DefaultSecurityConfig(),
		Version:  Version,
	}, eval, server.NewMetricsWithRegistry(reg), a.Logger)

	if !a.Config.Quiet {
		fmt.Fprintf(out, "Serving bigcalc on %s%s%s (%d-bit digits)\n",
			ui.ColorCyan(), a.Config.Serve, ui.ColorReset(), a.Config.DigitBits)
	}
	if err := srv.ListenAndServe(ctx); err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
