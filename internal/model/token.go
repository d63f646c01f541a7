package model

// Token is the version-independent shape of an ERC20 token record.
// VolumeUSD maps volumeUSD (V3) or tradeVolumeUSD (V2); TotalLiquidity maps
// totalValueLocked (V3) or totalLiquidity (V2).
type Token struct {
	ID             string `json:"id"`
	Symbol         string `json:"symbol"`
	Name           string `json:"name"`
	Decimals       string `json:"decimals"`
	VolumeUSD      string `json:"volume_usd"`
	TotalLiquidity string `json:"total_liquidity"`
}
