package normalize

import (
	"encoding/json"
	"reflect"
	"testing"

	"dexgraph/internal/registry"
)

func TestSwapsV2SignDerivation(t *testing.T) {
	raw := []json.RawMessage{[]byte(`{
		"id": "0xswap-1",
		"transaction": {"id": "0xtx", "blockNumber": "123"},
		"timestamp": "1700000000",
		"pair": {"id": "0xpair", "token0": {"symbol": "WBNB"}, "token1": {"symbol": "USDT"}},
		"sender": "0xsender",
		"to": "0xto",
		"amount0In": "5",
		"amount0Out": "0",
		"amount1In": "0",
		"amount1Out": "3",
		"amountUSD": "1234.5"
	}`)}

	swaps, err := Swaps(raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(swaps) != 1 {
		t.Fatalf("got %d swaps", len(swaps))
	}

	swap := swaps[0]
	if swap.Amount0 != "-5" {
		t.Fatalf("amount0 = %s, want -5", swap.Amount0)
	}
	if swap.Amount1 != "3" {
		t.Fatalf("amount1 = %s, want 3", swap.Amount1)
	}
	if swap.PoolID != "0xpair" {
		t.Fatalf("pool_id = %s", swap.PoolID)
	}
	if swap.Pair != "WBNB/USDT" {
		t.Fatalf("pair = %s", swap.Pair)
	}
	if swap.Recipient != "0xto" {
		t.Fatalf("recipient = %s", swap.Recipient)
	}
	if swap.Timestamp != 1700000000 {
		t.Fatalf("timestamp = %d", swap.Timestamp)
	}
}

func TestSwapsV3Passthrough(t *testing.T) {
	raw := []json.RawMessage{[]byte(`{
		"id": "0xswap-2",
		"transaction": {"id": "0xtx", "blockNumber": "456"},
		"timestamp": "1700000001",
		"pool": {"id": "0xpool", "token0": {"symbol": "USDC"}, "token1": {"symbol": "WETH"}},
		"sender": "0xsender",
		"recipient": "0xrecipient",
		"amount0": "-2500.123456",
		"amount1": "1.04987",
		"amountUSD": "2500.99"
	}`)}

	swaps, err := Swaps(raw, registry.V3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	swap := swaps[0]
	// V3 amounts pass through untouched, no re-parsing.
	if swap.Amount0 != "-2500.123456" || swap.Amount1 != "1.04987" {
		t.Fatalf("amounts = %s / %s", swap.Amount0, swap.Amount1)
	}
	if swap.Recipient != "0xrecipient" {
		t.Fatalf("recipient = %s", swap.Recipient)
	}
	if swap.AmountUSD != "2500.99" {
		t.Fatalf("amount_usd = %s", swap.AmountUSD)
	}
}

func TestPoolsV3(t *testing.T) {
	raw := []json.RawMessage{[]byte(`{
		"id": "0xpool",
		"token0": {"id": "0xusdc", "symbol": "USDC", "name": "USD Coin", "decimals": "6"},
		"token1": {"id": "0xweth", "symbol": "WETH", "name": "Wrapped Ether", "decimals": "18"},
		"feeTier": "500",
		"volumeUSD": "1000000",
		"txCount": "42",
		"totalValueLockedUSD": "98765.43"
	}`)}

	pools, err := Pools(raw, registry.V3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool := pools[0]
	if pool.LiquidityUSD != "98765.43" {
		t.Fatalf("liquidity_usd = %s", pool.LiquidityUSD)
	}
	if pool.FeeTier == nil || *pool.FeeTier != "500" {
		t.Fatalf("fee_tier = %v", pool.FeeTier)
	}
	if pool.Token0.Symbol != "USDC" || pool.Token1.Decimals != "18" {
		t.Fatalf("token refs = %+v / %+v", pool.Token0, pool.Token1)
	}
}

func TestPoolsV2(t *testing.T) {
	raw := []json.RawMessage{[]byte(`{
		"id": "0xpair",
		"token0": {"id": "0xwbnb", "symbol": "WBNB", "name": "Wrapped BNB", "decimals": "18"},
		"token1": {"id": "0xusdt", "symbol": "USDT", "name": "Tether USD", "decimals": "18"},
		"reserveUSD": "55555.5",
		"volumeUSD": "777",
		"txCount": "9"
	}`)}

	pools, err := Pools(raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pool := pools[0]
	if pool.LiquidityUSD != "55555.5" {
		t.Fatalf("liquidity_usd = %s", pool.LiquidityUSD)
	}
	if pool.FeeTier != nil {
		t.Fatalf("v2 fee_tier should be nil, got %v", *pool.FeeTier)
	}
}

func TestTokensVersionMapping(t *testing.T) {
	v2Raw := []json.RawMessage{[]byte(`{
		"id": "0xcake", "symbol": "CAKE", "name": "PancakeSwap Token", "decimals": "18",
		"tradeVolumeUSD": "123", "totalLiquidity": "456"
	}`)}
	v3Raw := []json.RawMessage{[]byte(`{
		"id": "0xuni", "symbol": "UNI", "name": "Uniswap", "decimals": "18",
		"volumeUSD": "321", "totalValueLocked": "654"
	}`)}

	v2Tokens, err := Tokens(v2Raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2Tokens[0].VolumeUSD != "123" || v2Tokens[0].TotalLiquidity != "456" {
		t.Fatalf("v2 token = %+v", v2Tokens[0])
	}

	v3Tokens, err := Tokens(v3Raw, registry.V3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v3Tokens[0].VolumeUSD != "321" || v3Tokens[0].TotalLiquidity != "654" {
		t.Fatalf("v3 token = %+v", v3Tokens[0])
	}
}

func TestPoolDaysVersionMapping(t *testing.T) {
	v3Raw := []json.RawMessage{[]byte(`{
		"id": "0xpool-19700", "date": 1702166400,
		"pool": {"id": "0xpool"},
		"volumeUSD": "100", "tvlUSD": "200", "txCount": "3"
	}`)}
	v2Raw := []json.RawMessage{[]byte(`{
		"id": "0xpair-19700", "date": 1702166400,
		"pairAddress": "0xpair",
		"dailyVolumeUSD": "111", "reserveUSD": "222", "dailyTxns": "4"
	}`)}

	v3Days, err := PoolDays(v3Raw, registry.V3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v3Days[0].PoolID != "0xpool" || v3Days[0].LiquidityUSD != "200" {
		t.Fatalf("v3 day = %+v", v3Days[0])
	}

	v2Days, err := PoolDays(v2Raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v2Days[0].PoolID != "0xpair" || v2Days[0].VolumeUSD != "111" || v2Days[0].TxCount != "4" {
		t.Fatalf("v2 day = %+v", v2Days[0])
	}
}

// Normalization is a pure projection: running it twice over the same input
// yields identical output.
func TestNormalizeIsPureProjection(t *testing.T) {
	raw := []json.RawMessage{[]byte(`{
		"id": "0xswap", "transaction": {"id": "0xtx", "blockNumber": "1"},
		"timestamp": "1700000000",
		"pair": {"id": "0xpair", "token0": {"symbol": "A"}, "token1": {"symbol": "B"}},
		"sender": "0xs", "to": "0xt",
		"amount0In": "0", "amount0Out": "7.5",
		"amount1In": "2.25", "amount1Out": "0",
		"amountUSD": "10"
	}`)}

	first, err := Swaps(raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Swaps(raw, registry.V2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("projection not stable: %+v != %+v", first, second)
	}
	if first[0].Amount0 != "7.5" || first[0].Amount1 != "-2.25" {
		t.Fatalf("amounts = %s / %s", first[0].Amount0, first[0].Amount1)
	}
}
