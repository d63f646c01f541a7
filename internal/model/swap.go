package model

// Swap is the version-independent shape of one swap. Amounts are signed
// decimal strings: negative means the token entered the pool. V3 subgraphs
// report them signed already; V2 amounts are derived from the in/out pairs.
type Swap struct {
	ID          string `json:"id"`
	PoolID      string `json:"pool_id"`
	Pair        string `json:"pair"`
	TxHash      string `json:"tx_hash"`
	BlockNumber string `json:"block_number"`
	Timestamp   int64  `json:"timestamp"`
	Amount0     string `json:"amount0"`
	Amount1     string `json:"amount1"`
	AmountUSD   string `json:"amount_usd"`
	Sender      string `json:"sender"`
	Recipient   string `json:"recipient"`
}
