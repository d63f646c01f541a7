package model

// PoolDay is one day of aggregated activity for a pool or pair.
// LiquidityUSD maps tvlUSD (V3) or reserveUSD (V2); VolumeUSD maps
// volumeUSD (V3) or dailyVolumeUSD (V2).
type PoolDay struct {
	ID           string `json:"id"`
	Date         int64  `json:"date"`
	PoolID       string `json:"pool_id"`
	VolumeUSD    string `json:"volume_usd"`
	LiquidityUSD string `json:"liquidity_usd"`
	TxCount      string `json:"tx_count"`
}
