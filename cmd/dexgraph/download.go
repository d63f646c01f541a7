package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dexgraph/internal/config"
	"dexgraph/internal/graph"
	"dexgraph/internal/model"
	"dexgraph/internal/normalize"
	"dexgraph/internal/query"
	"dexgraph/internal/registry"
	"dexgraph/internal/storage"
	"dexgraph/internal/storage/postgres"
)

func runDownload(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadDownload(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.ListSubgraphs {
		listSubgraphs()
		return nil
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	queryType, err := query.ParseType(cfg.QueryType)
	if err != nil {
		return err
	}

	endpoint, err := registry.Resolve(cfg.Subgraph)
	if err != nil {
		return err
	}

	poolID, err := normalizePoolID(cfg.PoolID)
	if err != nil {
		return err
	}

	startTime, err := config.ParseTimestamp(cfg.StartTime)
	if err != nil {
		return fmt.Errorf("parse start-time: %w", err)
	}
	endTime, err := config.ParseTimestamp(cfg.EndTime)
	if err != nil {
		return fmt.Errorf("parse end-time: %w", err)
	}

	built, err := query.Build(query.Request{
		Type:         queryType,
		Endpoint:     endpoint,
		PoolID:       poolID,
		MinAmountUSD: cfg.MinAmountUSD,
		StartTime:    startTime,
		EndTime:      endTime,
	})
	if err != nil {
		return err
	}

	if cfg.APIKey == "" {
		logger.Warn("no api key configured, using free-tier quota")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := graph.NewClient(endpoint.URL(), cfg.APIKey, logger)

	logger.Info("download start",
		zap.String("subgraph", endpoint.Key),
		zap.String("endpoint", endpoint.Name),
		zap.String("version", string(endpoint.Version)),
		zap.String("query_type", string(queryType)),
		zap.Int("limit", cfg.Limit),
		zap.Int("page_size", cfg.PageSize),
	)

	raw, err := client.FetchAll(ctx, built, cfg.PageSize, cfg.Limit)
	if err != nil {
		return err
	}

	records, count, err := normalizeRecords(queryType, raw, endpoint.Version)
	if err != nil {
		return err
	}

	if cfg.PGDSN != "" {
		if err := persist(ctx, cfg.PGDSN, endpoint.Key, queryType, records); err != nil {
			return fmt.Errorf("persist to postgres: %w", err)
		}
		logger.Info("records persisted", zap.Int("count", count), zap.String("pg_dsn", redactDSN(cfg.PGDSN)))
	}

	output := cfg.Output
	if output == "" {
		output = defaultOutput(queryType)
	}
	if err := storage.WriteJSON(output, records); err != nil {
		return err
	}

	logger.Info("download complete",
		zap.Int("records", count),
		zap.String("output", output),
	)
	return nil
}

func normalizeRecords(queryType query.Type, raw []json.RawMessage, version registry.Version) (any, int, error) {
	switch queryType {
	case query.Pools:
		pools, err := normalize.Pools(raw, version)
		return pools, len(pools), err
	case query.Swaps:
		swaps, err := normalize.Swaps(raw, version)
		return swaps, len(swaps), err
	case query.Tokens:
		tokens, err := normalize.Tokens(raw, version)
		return tokens, len(tokens), err
	case query.PoolDayData:
		days, err := normalize.PoolDays(raw, version)
		return days, len(days), err
	default:
		return nil, 0, fmt.Errorf("%w: %s", query.ErrUnsupportedQueryType, queryType)
	}
}

func persist(ctx context.Context, dsn, endpointKey string, queryType query.Type, records any) error {
	store, err := postgres.NewStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer store.Close()

	switch typed := records.(type) {
	case []model.Pool:
		return store.UpsertPools(ctx, endpointKey, typed)
	case []model.Swap:
		return store.InsertSwaps(ctx, endpointKey, typed)
	case []model.Token:
		return store.UpsertTokens(ctx, endpointKey, typed)
	case []model.PoolDay:
		return store.UpsertPoolDays(ctx, endpointKey, typed)
	default:
		return fmt.Errorf("no store for query type %s", queryType)
	}
}

// normalizePoolID validates the pool/pair filter and canonicalizes it to the
// lowercase hex form subgraph ids use.
func normalizePoolID(input string) (string, error) {
	if input == "" {
		return "", nil
	}
	if !common.IsHexAddress(input) {
		return "", fmt.Errorf("invalid pool id: %s", input)
	}
	return strings.ToLower(common.HexToAddress(input).Hex()), nil
}

func defaultOutput(queryType query.Type) string {
	switch queryType {
	case query.Pools:
		return "pools.json"
	case query.Tokens:
		return "tokens.json"
	case query.PoolDayData:
		return "pool_day_data.json"
	default:
		return "swaps.json"
	}
}

func listSubgraphs() {
	fmt.Println("Available subgraphs:")
	for _, ep := range registry.All() {
		fmt.Printf("\n  %s\n", ep.Key)
		fmt.Printf("    Name: %s\n", ep.Name)
		fmt.Printf("    Description: %s\n", ep.Description)
		fmt.Printf("    Subgraph ID: %s\n", ep.SubgraphID)
	}
	fmt.Println()
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
