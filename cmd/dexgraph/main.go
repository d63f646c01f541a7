package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Optional .env for GRAPH_API_KEY and friends.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "dexgraph",
		Short:        "DEX trading data downloader for The Graph subgraphs",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Download pools, swaps, or tokens from a configured subgraph",
		RunE:  runDownload,
	}

	downloadCmd.Flags().String("subgraph", "uniswap_v3_ethereum", "subgraph key (see --list-subgraphs)")
	downloadCmd.Flags().String("query-type", "swaps", "data to download (pools, swaps, tokens, pool-day-data)")
	downloadCmd.Flags().Int("limit", 100, "maximum records to download, 0 means all")
	downloadCmd.Flags().Int("page-size", 100, "records per request")
	downloadCmd.Flags().String("pool-id", "", "pool/pair address filter")
	downloadCmd.Flags().Float64("min-amount-usd", 0, "minimum swap amount in USD")
	downloadCmd.Flags().String("start-time", "", "start time (unix seconds, YYYY-MM-DD, or RFC3339)")
	downloadCmd.Flags().String("end-time", "", "end time (unix seconds, YYYY-MM-DD, or RFC3339)")
	downloadCmd.Flags().String("output", "", "output JSON path (default <query-type>.json)")
	downloadCmd.Flags().String("api-key", "", "The Graph API key (or GRAPH_API_KEY env)")
	downloadCmd.Flags().String("pg-dsn", "", "optional Postgres DSN to persist records")
	downloadCmd.Flags().Bool("list-subgraphs", false, "list available subgraphs and exit")
	downloadCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(downloadCmd)

	schemaCmd := &cobra.Command{
		Use:   "schema <subgraph-id-or-url>",
		Short: "Introspect a subgraph's GraphQL schema",
		Args:  cobra.ExactArgs(1),
		RunE:  runSchema,
	}

	schemaCmd.Flags().StringP("output", "o", "", "save full schema JSON to a file")
	schemaCmd.Flags().Bool("json", false, "print full schema JSON instead of a summary")
	schemaCmd.Flags().String("api-key", "", "The Graph API key (or GRAPH_API_KEY env)")
	schemaCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(schemaCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
