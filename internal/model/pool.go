package model

// TokenRef is the embedded token description carried by a pool record.
type TokenRef struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals string `json:"decimals"`
}

// Pool is the version-independent shape of a liquidity venue. V3 calls it a
// pool, V2 a pair; LiquidityUSD maps totalValueLockedUSD or reserveUSD.
// FeeTier is nil on V2, which has no per-pool fee tiers.
type Pool struct {
	ID           string   `json:"id"`
	Token0       TokenRef `json:"token0"`
	Token1       TokenRef `json:"token1"`
	LiquidityUSD string   `json:"liquidity_usd"`
	VolumeUSD    string   `json:"volume_usd"`
	TxCount      string   `json:"tx_count"`
	FeeTier      *string  `json:"fee_tier"`
}
