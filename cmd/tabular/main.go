package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/config"
	"github.com/ajitpratap0/tabular/pkg/encoder"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/schema"
	"github.com/ajitpratap0/tabular/pkg/table"
	"github.com/ajitpratap0/tabular/pkg/tableio"
)

var version = "0.1.0"

func main() {
	var configFile, delimiter, logLevel string
	var dtypes []string

	root := &cobra.Command{
		Use:   "tabular",
		Short: "Tabular - one-hot encoding for CSV data",
		Long: `Tabular one-hot encodes the categorical columns of CSV files with a
schema fixed at fit time, so training and prediction data always produce
the same feature columns.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML configuration file (optional)")
	root.PersistentFlags().StringVar(&delimiter, "delimiter", ",", "CSV field delimiter")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringSliceVar(&dtypes, "dtypes", nil, "Column types treated as categorical (string, categorical)")

	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		cfg := config.New()
		if configFile != "" {
			if err := config.Load(configFile, cfg); err != nil {
				return nil, err
			}
		}
		if cmd.Flags().Changed("delimiter") || configFile == "" {
			cfg.CSV.Delimiter = delimiter
		}
		if cmd.Flags().Changed("log-level") || configFile == "" {
			cfg.Logging.Level = logLevel
		}
		if cmd.Flags().Changed("dtypes") {
			cfg.Encoder.DTypes = dtypes
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}

		if err := logger.Init(logger.Config{
			Level:       cfg.Logging.Level,
			Encoding:    cfg.Logging.Encoding,
			Development: cfg.Logging.Development,
		}); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Tabular v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Encode command: fit and transform one file
	var encodeInput, encodeOutput, encodeState string
	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Fit on a CSV file and write its one-hot encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runEncode(cfg, encodeInput, encodeOutput, encodeState)
		},
	}
	encodeCmd.Flags().StringVarP(&encodeInput, "input", "i", "", "Path to input CSV file (required)")
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Path to encoded output CSV file (required)")
	encodeCmd.Flags().StringVar(&encodeState, "state", "", "Path to write fitted encoder state JSON (optional)")
	_ = encodeCmd.MarkFlagRequired("input")
	_ = encodeCmd.MarkFlagRequired("output")
	root.AddCommand(encodeCmd)

	// Fit command: learn the output schema only
	var fitInput, fitState string
	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit an encoder on a CSV file and save its state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runFit(cfg, fitInput, fitState)
		},
	}
	fitCmd.Flags().StringVarP(&fitInput, "input", "i", "", "Path to input CSV file (required)")
	fitCmd.Flags().StringVar(&fitState, "state", "", "Path to write fitted encoder state JSON (required)")
	_ = fitCmd.MarkFlagRequired("input")
	_ = fitCmd.MarkFlagRequired("state")
	root.AddCommand(fitCmd)

	// Transform command: apply saved state to new data
	var transformInput, transformOutput, transformState string
	transformCmd := &cobra.Command{
		Use:   "transform",
		Short: "Encode a CSV file using previously fitted state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runTransform(cfg, transformInput, transformOutput, transformState)
		},
	}
	transformCmd.Flags().StringVarP(&transformInput, "input", "i", "", "Path to input CSV file (required)")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "Path to encoded output CSV file (required)")
	transformCmd.Flags().StringVar(&transformState, "state", "", "Path to fitted encoder state JSON (required)")
	_ = transformCmd.MarkFlagRequired("input")
	_ = transformCmd.MarkFlagRequired("output")
	_ = transformCmd.MarkFlagRequired("state")
	root.AddCommand(transformCmd)

	err := root.Execute()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// runLogger returns a logger tagged with the command stage and input dataset
func runLogger(stage, input string) *zap.Logger {
	ctx := context.WithValue(context.Background(), logger.DatasetKey, input)
	ctx = context.WithValue(ctx, logger.StageKey, stage)
	return logger.WithContext(ctx)
}

// warnIfNoCategoricals notes when the fitted encoder matched no columns
func warnIfNoCategoricals(log *zap.Logger, enc *encoder.OneHotEncoder) {
	st, err := enc.State()
	if err == nil && len(st.CategoricalColumns) == 0 {
		log.Warn("no categorical columns matched the configured dtypes")
	}
}

// csvOptions translates config into CSV reading options
func csvOptions(cfg *config.Config) tableio.CSVOptions {
	return tableio.CSVOptions{
		Delimiter: cfg.CSV.DelimiterRune(),
		HasHeader: cfg.CSV.HasHeader,
		Infer: schema.InferOptions{
			SampleSize:           cfg.CSV.SampleSize,
			CategoricalMaxLevels: cfg.CSV.CategoricalMaxLevels,
		},
	}
}

// newEncoder builds an encoder from configuration
func newEncoder(cfg *config.Config) (*encoder.OneHotEncoder, error) {
	types, err := cfg.Encoder.DTypeSelectors()
	if err != nil {
		return nil, err
	}
	return encoder.New(encoder.WithDTypes(types...)), nil
}

// readInput loads a CSV file into a typed table
func readInput(cfg *config.Config, path string) (*table.Table, error) {
	t, s, err := tableio.ReadCSV(path, csvOptions(cfg))
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded csv",
		zap.String("path", path),
		zap.Int("rows", t.NumRows()),
		zap.Int("columns", len(s.Fields)))
	return t, nil
}

// runEncode fits on the input file and writes its encoding
func runEncode(cfg *config.Config, input, output, statePath string) error {
	log := runLogger("encode", input)

	t, err := readInput(cfg, input)
	if err != nil {
		return err
	}

	enc, err := newEncoder(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	out, err := enc.FitTransform(t)
	if err != nil {
		return err
	}

	if err := tableio.WriteCSV(out, output); err != nil {
		return err
	}

	if statePath != "" {
		if err := writeState(enc, statePath); err != nil {
			return err
		}
	}

	warnIfNoCategoricals(log, enc)
	log.Info("encoded",
		zap.Int("rows", out.NumRows()),
		zap.Int("feature_columns", out.NumCols()),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// runFit fits an encoder and saves its state
func runFit(cfg *config.Config, input, statePath string) error {
	log := runLogger("fit", input)

	t, err := readInput(cfg, input)
	if err != nil {
		return err
	}

	enc, err := newEncoder(cfg)
	if err != nil {
		return err
	}
	if _, err := enc.Fit(t); err != nil {
		return err
	}

	if err := writeState(enc, statePath); err != nil {
		return err
	}

	names, err := enc.FeatureNames()
	if err != nil {
		return err
	}
	warnIfNoCategoricals(log, enc)
	log.Info("fitted",
		zap.String("state", statePath),
		zap.Int("feature_columns", len(names)))
	return nil
}

// runTransform applies saved state to new data
func runTransform(cfg *config.Config, input, output, statePath string) error {
	log := runLogger("transform", input)

	f, err := os.Open(statePath) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("failed to open state file %s: %w", statePath, err)
	}
	enc, err := encoder.ReadState(f)
	f.Close()
	if err != nil {
		return err
	}

	t, err := readInput(cfg, input)
	if err != nil {
		return err
	}

	out, err := enc.Transform(t)
	if err != nil {
		return err
	}

	if err := tableio.WriteCSV(out, output); err != nil {
		return err
	}

	log.Info("transformed",
		zap.String("output", output),
		zap.Int("rows", out.NumRows()))
	return nil
}

// writeState saves fitted encoder state as JSON
func writeState(enc *encoder.OneHotEncoder, path string) error {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the CLI flag
	if err != nil {
		return fmt.Errorf("failed to create state file %s: %w", path, err)
	}
	if err := enc.WriteState(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
