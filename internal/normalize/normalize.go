// Package normalize projects raw subgraph records onto the
// version-independent output shapes in internal/model. Values pass through
// as the decimal strings the subgraph returns; the only computation is the
// V2 swap sign derivation.
package normalize

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"dexgraph/internal/model"
	"dexgraph/internal/registry"
)

type rawToken struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals string `json:"decimals"`
}

type rawPool struct {
	ID                  string   `json:"id"`
	Token0              rawToken `json:"token0"`
	Token1              rawToken `json:"token1"`
	FeeTier             string   `json:"feeTier"`
	VolumeUSD           string   `json:"volumeUSD"`
	TxCount             string   `json:"txCount"`
	TotalValueLockedUSD string   `json:"totalValueLockedUSD"`
	ReserveUSD          string   `json:"reserveUSD"`
}

// Pools maps raw pool (V3) or pair (V2) records onto model.Pool.
func Pools(raw []json.RawMessage, version registry.Version) ([]model.Pool, error) {
	out := make([]model.Pool, 0, len(raw))
	for i, item := range raw {
		var p rawPool
		if err := json.Unmarshal(item, &p); err != nil {
			return nil, fmt.Errorf("decode pool record %d: %w", i, err)
		}

		pool := model.Pool{
			ID:        p.ID,
			Token0:    model.TokenRef(p.Token0),
			Token1:    model.TokenRef(p.Token1),
			VolumeUSD: p.VolumeUSD,
			TxCount:   p.TxCount,
		}
		if version == registry.V2 {
			pool.LiquidityUSD = p.ReserveUSD
		} else {
			pool.LiquidityUSD = p.TotalValueLockedUSD
			feeTier := p.FeeTier
			pool.FeeTier = &feeTier
		}
		out = append(out, pool)
	}
	return out, nil
}

type rawSwap struct {
	ID          string `json:"id"`
	Transaction struct {
		ID          string `json:"id"`
		BlockNumber string `json:"blockNumber"`
	} `json:"transaction"`
	Timestamp string `json:"timestamp"`
	Pool      *struct {
		ID     string   `json:"id"`
		Token0 rawToken `json:"token0"`
		Token1 rawToken `json:"token1"`
	} `json:"pool"`
	Pair *struct {
		ID     string   `json:"id"`
		Token0 rawToken `json:"token0"`
		Token1 rawToken `json:"token1"`
	} `json:"pair"`
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	To         string `json:"to"`
	Amount0    string `json:"amount0"`
	Amount1    string `json:"amount1"`
	Amount0In  string `json:"amount0In"`
	Amount1In  string `json:"amount1In"`
	Amount0Out string `json:"amount0Out"`
	Amount1Out string `json:"amount1Out"`
	AmountUSD  string `json:"amountUSD"`
}

// Swaps maps raw swap records onto model.Swap. V3 amounts are already
// signed; V2 amounts are derived from the mutually exclusive in/out legs:
// a positive inflow becomes a negative amount, otherwise the outflow is
// taken as is.
func Swaps(raw []json.RawMessage, version registry.Version) ([]model.Swap, error) {
	out := make([]model.Swap, 0, len(raw))
	for i, item := range raw {
		var s rawSwap
		if err := json.Unmarshal(item, &s); err != nil {
			return nil, fmt.Errorf("decode swap record %d: %w", i, err)
		}

		ts, err := strconv.ParseInt(s.Timestamp, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("swap %s: parse timestamp: %w", s.ID, err)
		}

		swap := model.Swap{
			ID:          s.ID,
			TxHash:      s.Transaction.ID,
			BlockNumber: s.Transaction.BlockNumber,
			Timestamp:   ts,
			AmountUSD:   s.AmountUSD,
			Sender:      s.Sender,
		}

		if version == registry.V2 {
			if s.Pair != nil {
				swap.PoolID = s.Pair.ID
				swap.Pair = s.Pair.Token0.Symbol + "/" + s.Pair.Token1.Symbol
			}
			swap.Recipient = s.To
			swap.Amount0, err = signedAmount(s.Amount0In, s.Amount0Out)
			if err != nil {
				return nil, fmt.Errorf("swap %s: amount0: %w", s.ID, err)
			}
			swap.Amount1, err = signedAmount(s.Amount1In, s.Amount1Out)
			if err != nil {
				return nil, fmt.Errorf("swap %s: amount1: %w", s.ID, err)
			}
		} else {
			if s.Pool != nil {
				swap.PoolID = s.Pool.ID
				swap.Pair = s.Pool.Token0.Symbol + "/" + s.Pool.Token1.Symbol
			}
			swap.Recipient = s.Recipient
			swap.Amount0 = s.Amount0
			swap.Amount1 = s.Amount1
		}

		out = append(out, swap)
	}
	return out, nil
}

// signedAmount turns a V2 in/out pair into a signed value. The legs are
// mutually exclusive per swap side: a non-zero inflow negates, otherwise the
// outflow passes through.
func signedAmount(in, out string) (string, error) {
	inDec, err := decimal.NewFromString(orZero(in))
	if err != nil {
		return "", fmt.Errorf("parse inflow %q: %w", in, err)
	}
	if inDec.IsPositive() {
		return inDec.Neg().String(), nil
	}

	outDec, err := decimal.NewFromString(orZero(out))
	if err != nil {
		return "", fmt.Errorf("parse outflow %q: %w", out, err)
	}
	return outDec.String(), nil
}

func orZero(value string) string {
	if value == "" {
		return "0"
	}
	return value
}

type rawTokenRecord struct {
	ID               string `json:"id"`
	Symbol           string `json:"symbol"`
	Name             string `json:"name"`
	Decimals         string `json:"decimals"`
	VolumeUSD        string `json:"volumeUSD"`
	TradeVolumeUSD   string `json:"tradeVolumeUSD"`
	TotalValueLocked string `json:"totalValueLocked"`
	TotalLiquidity   string `json:"totalLiquidity"`
}

// Tokens maps raw token records onto model.Token.
func Tokens(raw []json.RawMessage, version registry.Version) ([]model.Token, error) {
	out := make([]model.Token, 0, len(raw))
	for i, item := range raw {
		var t rawTokenRecord
		if err := json.Unmarshal(item, &t); err != nil {
			return nil, fmt.Errorf("decode token record %d: %w", i, err)
		}

		token := model.Token{
			ID:       t.ID,
			Symbol:   t.Symbol,
			Name:     t.Name,
			Decimals: t.Decimals,
		}
		if version == registry.V2 {
			token.VolumeUSD = t.TradeVolumeUSD
			token.TotalLiquidity = t.TotalLiquidity
		} else {
			token.VolumeUSD = t.VolumeUSD
			token.TotalLiquidity = t.TotalValueLocked
		}
		out = append(out, token)
	}
	return out, nil
}

type rawPoolDay struct {
	ID   string `json:"id"`
	Date int64  `json:"date"`
	Pool *struct {
		ID string `json:"id"`
	} `json:"pool"`
	PairAddress    string `json:"pairAddress"`
	VolumeUSD      string `json:"volumeUSD"`
	TvlUSD         string `json:"tvlUSD"`
	ReserveUSD     string `json:"reserveUSD"`
	DailyVolumeUSD string `json:"dailyVolumeUSD"`
	TxCount        string `json:"txCount"`
	DailyTxns      string `json:"dailyTxns"`
}

// PoolDays maps raw poolDayData (V3) or pairDayData (V2) records onto
// model.PoolDay.
func PoolDays(raw []json.RawMessage, version registry.Version) ([]model.PoolDay, error) {
	out := make([]model.PoolDay, 0, len(raw))
	for i, item := range raw {
		var d rawPoolDay
		if err := json.Unmarshal(item, &d); err != nil {
			return nil, fmt.Errorf("decode day record %d: %w", i, err)
		}

		day := model.PoolDay{
			ID:   d.ID,
			Date: d.Date,
		}
		if version == registry.V2 {
			day.PoolID = d.PairAddress
			day.VolumeUSD = d.DailyVolumeUSD
			day.LiquidityUSD = d.ReserveUSD
			day.TxCount = d.DailyTxns
		} else {
			if d.Pool != nil {
				day.PoolID = d.Pool.ID
			}
			day.VolumeUSD = d.VolumeUSD
			day.LiquidityUSD = d.TvlUSD
			day.TxCount = d.TxCount
		}
		out = append(out, day)
	}
	return out, nil
}
