package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	config "github.com/tupyy/either/configuration"
	"github.com/tupyy/either/either"
	"github.com/tupyy/either/internal/evaluator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	variables  []string
)

var rootCmd = &cobra.Command{
	Use:   "either-eval",
	Short: "Evaluate profile conditions against a set of variables",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfiguration(cmd, configFile)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(config.GetLogLevel()).With(zap.String("run_id", uuid.NewString()))
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		return run(cmd.Context(), config.GetProfilesFile(), variables, cmd.OutOrStdout())
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "configuration file")
	rootCmd.Flags().String("profiles", "", "yaml file with profiles and variables")
	rootCmd.Flags().StringArrayVar(&variables, "var", []string{}, "variable in the form name=value. Can be repeated")
	rootCmd.Flags().String("log-level", "info", "log level")
}

func run(ctx context.Context, path string, vars []string, out io.Writer) error {
	if path == "" {
		return fmt.Errorf("no profiles file. use --profiles")
	}

	file, err := either.ToResult(readProfiles(path))
	if err != nil {
		return err
	}

	e := evaluator.New()
	e.SetProfiles(file.Profiles)

	for name, value := range file.Variables {
		e.SetValue(name, value)
	}

	// variables from the command line override the ones from the file
	for _, s := range vars {
		v, err := either.ToResult(parseVariable(s))
		if err != nil {
			return err
		}
		e.SetValue(v.name, v.value)
	}

	zap.S().Debugw("evaluating profiles", "profiles", len(file.Profiles), "file", path)

	o, err := e.Evaluate(ctx)
	if err != nil {
		return err
	}

	results, ok := o.Get()
	if !ok {
		zap.S().Info("no profiles to evaluate")
		return nil
	}

	for _, p := range results {
		for _, c := range p.Conditions {
			fmt.Fprintf(out, "%s.%s: %s\n", p.Name, c.Name, c.Result)
		}
	}

	return evaluator.Failures(results)
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}
