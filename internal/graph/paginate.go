package graph

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"dexgraph/internal/query"
)

// FetchAll drives a skip/first pagination loop over a single query until the
// data runs out or limit records have accumulated. A limit <= 0 means no
// cap. Each page requests min(pageSize, limit-fetched) records and the skip
// offset advances by the count actually returned. The loop stops on an empty
// page or a page shorter than requested; any request failure aborts the
// whole fetch.
func (c *Client) FetchAll(ctx context.Context, q query.Query, pageSize, limit int) ([]json.RawMessage, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be greater than zero")
	}

	var all []json.RawMessage
	skip := 0

	for {
		first := pageSize
		if limit > 0 {
			remaining := limit - len(all)
			if remaining <= 0 {
				break
			}
			if remaining < first {
				first = remaining
			}
		}

		vars := make(map[string]any, len(q.Variables)+2)
		for k, v := range q.Variables {
			vars[k] = v
		}
		vars["first"] = first
		vars["skip"] = skip

		c.logger.Info("fetch page", zap.String("entity", q.Entity), zap.Int("skip", skip), zap.Int("first", first))

		data, err := c.Execute(ctx, q.Document, vars)
		if err != nil {
			return nil, fmt.Errorf("fetch %s page at offset %d: %w", q.Entity, skip, err)
		}

		var envelope map[string][]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("parse %s page: %w", q.Entity, err)
		}
		items := envelope[q.Entity]
		if len(items) == 0 {
			break
		}

		all = append(all, items...)
		skip += len(items)

		if len(items) < first {
			break
		}
	}

	return all, nil
}
