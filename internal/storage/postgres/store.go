package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dexgraph/internal/model"
)

// Store provides optional Postgres persistence for downloaded records.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch, count int) error {
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < count; i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// UpsertPools inserts or updates pool records keyed by endpoint and pool id.
func (s *Store) UpsertPools(ctx context.Context, endpoint string, pools []model.Pool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range pools {
		batch.Queue(`
			INSERT INTO pools (
				endpoint, pool_id, token0, token0_symbol, token1, token1_symbol,
				liquidity_usd, volume_usd, tx_count, fee_tier, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())
			ON CONFLICT (endpoint, pool_id)
			DO UPDATE SET
				liquidity_usd = EXCLUDED.liquidity_usd,
				volume_usd = EXCLUDED.volume_usd,
				tx_count = EXCLUDED.tx_count,
				updated_at = now()
		`,
			endpoint,
			p.ID,
			p.Token0.ID,
			p.Token0.Symbol,
			p.Token1.ID,
			p.Token1.Symbol,
			p.LiquidityUSD,
			p.VolumeUSD,
			p.TxCount,
			p.FeeTier,
		)
	}
	return s.sendBatch(ctx, batch, len(pools))
}

// InsertSwaps inserts swap records; a swap id is immutable, so conflicts are
// skipped.
func (s *Store) InsertSwaps(ctx context.Context, endpoint string, swaps []model.Swap) error {
	if len(swaps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, swap := range swaps {
		batch.Queue(`
			INSERT INTO swaps (
				endpoint, swap_id, pool_id, pair, tx_hash, block_number, ts,
				amount0, amount1, amount_usd, sender, recipient, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
			ON CONFLICT (endpoint, swap_id) DO NOTHING
		`,
			endpoint,
			swap.ID,
			swap.PoolID,
			swap.Pair,
			swap.TxHash,
			swap.BlockNumber,
			swap.Timestamp,
			swap.Amount0,
			swap.Amount1,
			swap.AmountUSD,
			swap.Sender,
			swap.Recipient,
		)
	}
	return s.sendBatch(ctx, batch, len(swaps))
}

// UpsertTokens inserts or updates token records keyed by endpoint and token
// address.
func (s *Store) UpsertTokens(ctx context.Context, endpoint string, tokens []model.Token) error {
	if len(tokens) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range tokens {
		batch.Queue(`
			INSERT INTO tokens (
				endpoint, token_id, symbol, name, decimals,
				volume_usd, total_liquidity, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			ON CONFLICT (endpoint, token_id)
			DO UPDATE SET
				symbol = EXCLUDED.symbol,
				name = EXCLUDED.name,
				volume_usd = EXCLUDED.volume_usd,
				total_liquidity = EXCLUDED.total_liquidity,
				updated_at = now()
		`,
			endpoint,
			t.ID,
			t.Symbol,
			t.Name,
			t.Decimals,
			t.VolumeUSD,
			t.TotalLiquidity,
		)
	}
	return s.sendBatch(ctx, batch, len(tokens))
}

// UpsertPoolDays inserts or updates daily pool aggregates.
func (s *Store) UpsertPoolDays(ctx context.Context, endpoint string, days []model.PoolDay) error {
	if len(days) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, d := range days {
		batch.Queue(`
			INSERT INTO pool_day_data (
				endpoint, day_id, pool_id, day_date, volume_usd, liquidity_usd,
				tx_count, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
			ON CONFLICT (endpoint, day_id)
			DO UPDATE SET
				volume_usd = EXCLUDED.volume_usd,
				liquidity_usd = EXCLUDED.liquidity_usd,
				tx_count = EXCLUDED.tx_count,
				updated_at = now()
		`,
			endpoint,
			d.ID,
			d.PoolID,
			d.Date,
			d.VolumeUSD,
			d.LiquidityUSD,
			d.TxCount,
		)
	}
	return s.sendBatch(ctx, batch, len(days))
}
