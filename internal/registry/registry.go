package registry

import (
	"errors"
	"fmt"
	"sort"
)

// GatewayBaseURL is the endpoint prefix for The Graph decentralized network.
// The API key is sent as a bearer token, never embedded in the URL.
const GatewayBaseURL = "https://gateway.thegraph.com/api/subgraphs/id/"

// ErrUnknownEndpoint is returned by Resolve for keys not in the registry.
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Version selects the subgraph schema shape for an endpoint.
type Version string

const (
	// V2 schemas expose "pairs" with reserve fields and in/out swap amounts.
	V2 Version = "v2"
	// V3 schemas expose "pools" with TVL fields and signed swap amounts.
	V3 Version = "v3"
)

// Endpoint describes one DEX/chain subgraph deployment.
type Endpoint struct {
	Key         string
	Name        string
	SubgraphID  string
	Description string
	Version     Version
}

// URL returns the full GraphQL endpoint URL for the deployment.
func (e Endpoint) URL() string {
	return GatewayBaseURL + e.SubgraphID
}

// endpoints is the static registry. Adding a DEX/chain combination is a
// data-entry change only; behavioral differences hang off Version.
var endpoints = map[string]Endpoint{
	"uniswap_v3_ethereum": {
		Name:        "Uniswap V3 Ethereum",
		SubgraphID:  "5zvR82QoaXYFyDEKLZ9t6v9adgnptxYpKpSbxtgVENFV",
		Description: "Uniswap V3 protocol on Ethereum mainnet",
		Version:     V3,
	},
	"uniswap_v3_arbitrum": {
		Name:        "Uniswap V3 Arbitrum",
		SubgraphID:  "FbCGRftH4a3yZugY7TnbYgPJVEv2LvMT6oF1fxPe9aJM",
		Description: "Uniswap V3 protocol on Arbitrum One",
		Version:     V3,
	},
	"uniswap_v3_polygon": {
		Name:        "Uniswap V3 Polygon",
		SubgraphID:  "3hCPRGf4z88VC5rsBKU5AA9FBBq5nF3jbKJG7VZCbhjm",
		Description: "Uniswap V3 protocol on Polygon",
		Version:     V3,
	},
	"uniswap_v3_base": {
		Name:        "Uniswap V3 Base",
		SubgraphID:  "43Hwfi3dJSoGpyas9VwNoDAv55yjgGrPpNSmbQZArzMG",
		Description: "Uniswap V3 protocol on Base",
		Version:     V3,
	},
	"uniswap_v3_optimism": {
		Name:        "Uniswap V3 Optimism",
		SubgraphID:  "Cghf4LfVqPiFw6fp6Y5X5Ubc8UpmUhSfJL82zwiBFLaj",
		Description: "Uniswap V3 protocol on Optimism",
		Version:     V3,
	},
	"uniswap_v3_celo": {
		Name:        "Uniswap V3 Celo",
		SubgraphID:  "ESdrTJ3twMwWVoQ1hUE2u7PugEHX3QkenudD6aXCkDQ4",
		Description: "Uniswap V3 protocol on Celo",
		Version:     V3,
	},
	"uniswap_v3_avalanche": {
		Name:        "Uniswap V3 Avalanche",
		SubgraphID:  "GVH9h9KZ9CqheUEL93qMbq7QwgoBu32QXQDPR6bev4Eo",
		Description: "Uniswap V3 protocol on Avalanche",
		Version:     V3,
	},
	"uniswap_v3_bsc": {
		Name:        "Uniswap V3 BSC",
		SubgraphID:  "F85MNzUGYqgSHSHRGgeVMNsdnW1KtZSVgFULumXRZTw2",
		Description: "Uniswap V3 protocol on BNB Smart Chain",
		Version:     V3,
	},
	"pancakeswap_v3_bsc": {
		Name:        "PancakeSwap V3 BSC",
		SubgraphID:  "Hv1GncLY5docZoGtXjo4kwbTvxm3MAhVZqBZE4sUT9eZ",
		Description: "PancakeSwap V3 on BNB Smart Chain",
		Version:     V3,
	},
	"pancakeswap_v3_ethereum": {
		Name:        "PancakeSwap V3 Ethereum",
		SubgraphID:  "CJYGNhb7RvnhfBDjqpRnD3oxgyhibzc7fkAMa38YV3oS",
		Description: "PancakeSwap V3 on Ethereum mainnet",
		Version:     V3,
	},
	"pancakeswap_v3_arbitrum": {
		Name:        "PancakeSwap V3 Arbitrum",
		SubgraphID:  "251MHFNN1rwjErXD2efWMpNS73SANZN8Ua192zw6iXve",
		Description: "PancakeSwap V3 on Arbitrum One",
		Version:     V3,
	},
	"pancakeswap_v3_polygon_zkevm": {
		Name:        "PancakeSwap V3 Polygon zkEVM",
		SubgraphID:  "7HroSeAFxfJtYqpbgcfAnNSgkzzcZXZi6c75qLPheKzQ",
		Description: "PancakeSwap V3 on Polygon zkEVM",
		Version:     V3,
	},
	"pancakeswap_v3_zksync": {
		Name:        "PancakeSwap V3 zkSync",
		SubgraphID:  "3dKr3tYxTuwiRLkU9vPj3MvZeUmeuGgWURbFC72ZBpYY",
		Description: "PancakeSwap V3 on zkSync Era",
		Version:     V3,
	},
	"pancakeswap_v3_linea": {
		Name:        "PancakeSwap V3 Linea",
		SubgraphID:  "6gCTVX98K3A9Hf9zjvgEKwjz7rtD4C1V173RYEdbeMFX",
		Description: "PancakeSwap V3 on Linea",
		Version:     V3,
	},
	"pancakeswap_v3_base": {
		Name:        "PancakeSwap V3 Base",
		SubgraphID:  "BHWNsedAHtmTCzXxCCDfhPmm6iN9rxUhoRHdHKyujic3",
		Description: "PancakeSwap V3 on Base",
		Version:     V3,
	},
	"pancakeswap_v2_ethereum": {
		Name:        "PancakeSwap V2 Ethereum",
		SubgraphID:  "9opY17WnEPD4REcC43yHycQthSeUMQE26wyoeMjZTLEx",
		Description: "PancakeSwap V2 on Ethereum mainnet",
		Version:     V2,
	},
	"pancakeswap_v2_arbitrum": {
		Name:        "PancakeSwap V2 Arbitrum",
		SubgraphID:  "EsL7geTRcA3LaLLM9EcMFzYbUgnvf8RixoEEGErrodB3",
		Description: "PancakeSwap V2 on Arbitrum One",
		Version:     V2,
	},
	"pancakeswap_v2_polygon_zkevm": {
		Name:        "PancakeSwap V2 Polygon zkEVM",
		SubgraphID:  "37WmH5kBu6QQytRpMwLJMGPRbXvHgpuZsWqswW4Finc2",
		Description: "PancakeSwap V2 on Polygon zkEVM",
		Version:     V2,
	},
	"pancakeswap_v2_zksync": {
		Name:        "PancakeSwap V2 zkSync",
		SubgraphID:  "6dU6WwEz22YacyzbTbSa3CECCmaD8G7oQ8aw6MYd5VKU",
		Description: "PancakeSwap V2 on zkSync Era",
		Version:     V2,
	},
	"pancakeswap_v2_linea": {
		Name:        "PancakeSwap V2 Linea",
		SubgraphID:  "Eti2Z5zVEdARnuUzjCbv4qcimTLysAizsqH3s6cBfPjB",
		Description: "PancakeSwap V2 on Linea",
		Version:     V2,
	},
	"pancakeswap_v2_base": {
		Name:        "PancakeSwap V2 Base",
		SubgraphID:  "2NjL7L4CmQaGJSacM43ofmH6ARf6gJoBeBaJtz9eWAQ9",
		Description: "PancakeSwap V2 on Base",
		Version:     V2,
	},
}

// Resolve looks up an endpoint by key.
func Resolve(key string) (Endpoint, error) {
	ep, ok := endpoints[key]
	if !ok {
		return Endpoint{}, fmt.Errorf("%w: %s", ErrUnknownEndpoint, key)
	}
	ep.Key = key
	return ep, nil
}

// All returns every endpoint in key order.
func All() []Endpoint {
	keys := make([]string, 0, len(endpoints))
	for key := range endpoints {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]Endpoint, 0, len(keys))
	for _, key := range keys {
		ep := endpoints[key]
		ep.Key = key
		out = append(out, ep)
	}
	return out
}
