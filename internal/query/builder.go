package query

import (
	"errors"
	"fmt"
	"strconv"

	"dexgraph/internal/registry"
)

var (
	// ErrUnsupportedQueryType is returned for query types outside the
	// recognized set.
	ErrUnsupportedQueryType = errors.New("unsupported query type")
	// ErrMissingPoolID is returned when a query type requires a pool id
	// filter and none was supplied.
	ErrMissingPoolID = errors.New("pool id is required")
)

// Type identifies what kind of data a request downloads.
type Type string

const (
	Pools       Type = "pools"
	Swaps       Type = "swaps"
	Tokens      Type = "tokens"
	PoolDayData Type = "pool-day-data"
)

// ParseType validates a query type string.
func ParseType(input string) (Type, error) {
	switch Type(input) {
	case Pools, Swaps, Tokens, PoolDayData:
		return Type(input), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedQueryType, input)
	}
}

// Request carries everything needed to build one query against one endpoint.
type Request struct {
	Type         Type
	Endpoint     registry.Endpoint
	PoolID       string
	MinAmountUSD float64
	StartTime    uint64
	EndTime      uint64
}

// Query is a ready-to-send GraphQL document with its variables. Entity names
// the list field the response carries the records under.
type Query struct {
	Document  string
	Variables map[string]any
	Entity    string
}

// The Graph rejects null values in _gte/_lte filters, so unset time bounds
// collapse to the full range.
const (
	defaultStartTime = 0
	defaultEndTime   = 9999999999
)

// Build constructs the GraphQL document and variables for a request. It is a
// pure function of its inputs; the version tag on the endpoint decides every
// V2/V3 naming difference.
func Build(req Request) (Query, error) {
	isV2 := req.Endpoint.Version == registry.V2

	switch req.Type {
	case Pools:
		q := Query{
			Document: v3Pools,
			Entity:   "pools",
			Variables: map[string]any{
				"orderBy":        "volumeUSD",
				"orderDirection": "desc",
			},
		}
		if isV2 {
			q.Document = v2Pairs
			q.Entity = "pairs"
		}
		return q, nil

	case Swaps:
		start := req.StartTime
		end := req.EndTime
		if start == 0 {
			start = defaultStartTime
		}
		if end == 0 {
			end = defaultEndTime
		}
		vars := map[string]any{
			"minAmountUSD": strconv.FormatFloat(req.MinAmountUSD, 'f', -1, 64),
			"startTime":    strconv.FormatUint(start, 10),
			"endTime":      strconv.FormatUint(end, 10),
		}

		doc := v3SwapsAll
		if req.PoolID != "" {
			doc = v3Swaps
			vars["poolId"] = req.PoolID
			if isV2 {
				doc = v2Swaps
				delete(vars, "poolId")
				vars["pairId"] = req.PoolID
			}
		} else if isV2 {
			doc = v2SwapsAll
		}
		return Query{Document: doc, Variables: vars, Entity: "swaps"}, nil

	case Tokens:
		q := Query{
			Document: v3Tokens,
			Entity:   "tokens",
			Variables: map[string]any{
				"orderBy":        "volumeUSD",
				"orderDirection": "desc",
			},
		}
		if isV2 {
			q.Document = v2Tokens
			q.Variables["orderBy"] = "tradeVolumeUSD"
		}
		return q, nil

	case PoolDayData:
		if req.PoolID == "" {
			return Query{}, fmt.Errorf("%w for query type %s", ErrMissingPoolID, req.Type)
		}
		q := Query{
			Document:  v3PoolDayData,
			Entity:    "poolDayDatas",
			Variables: map[string]any{"poolId": req.PoolID},
		}
		if isV2 {
			q.Document = v2PairDayData
			q.Entity = "pairDayDatas"
			q.Variables = map[string]any{"pairId": req.PoolID}
		}
		return q, nil

	default:
		return Query{}, fmt.Errorf("%w: %s", ErrUnsupportedQueryType, req.Type)
	}
}
