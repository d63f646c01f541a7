package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexgraph/internal/config"
	"dexgraph/internal/graph"
	"dexgraph/internal/introspect"
	"dexgraph/internal/storage"
)

func runSchema(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSchema(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	endpointURL, err := introspect.EndpointURL(args[0])
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		logger.Warn("no api key configured, using free-tier quota")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := graph.NewClient(endpointURL, cfg.APIKey, logger)

	logger.Info("introspect start", zap.String("endpoint", endpointURL))

	schema, raw, err := introspect.Fetch(ctx, client)
	if err != nil {
		return err
	}

	switch {
	case cfg.Output != "":
		if err := storage.WriteJSON(cfg.Output, raw); err != nil {
			return err
		}
		logger.Info("schema saved", zap.String("output", cfg.Output), zap.Int("types", len(schema.Types)))
	case cfg.JSON:
		if _, err := os.Stdout.Write(append(raw, '\n')); err != nil {
			return err
		}
	default:
		introspect.WriteSummary(os.Stdout, schema)
	}

	return nil
}
