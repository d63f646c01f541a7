// Package introspect fetches and renders the GraphQL schema of an arbitrary
// subgraph endpoint.
package introspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"dexgraph/internal/graph"
	"dexgraph/internal/registry"
)

// ErrMalformedURL is returned when the input is neither a gateway URL with a
// /subgraphs/id/ segment nor a plausible bare subgraph id.
var ErrMalformedURL = errors.New("malformed subgraph URL or id")

var (
	urlIDPattern  = regexp.MustCompile(`/subgraphs/id/([^/?\s]+)`)
	bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{30,}$`)
)

// ExtractSubgraphID pulls the subgraph id out of a gateway URL, or validates
// a bare id. Subgraph ids are long alphanumeric strings.
func ExtractSubgraphID(input string) (string, error) {
	if len(input) >= 4 && input[:4] == "http" {
		match := urlIDPattern.FindStringSubmatch(input)
		if match == nil {
			return "", fmt.Errorf("%w: no /subgraphs/id/ segment in %s", ErrMalformedURL, input)
		}
		return match[1], nil
	}

	if bareIDPattern.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: %s", ErrMalformedURL, input)
}

// EndpointURL builds the gateway URL for a subgraph id or full URL input.
func EndpointURL(input string) (string, error) {
	id, err := ExtractSubgraphID(input)
	if err != nil {
		return "", err
	}
	return registry.GatewayBaseURL + id, nil
}

type schemaEnvelope struct {
	Schema Schema `json:"__schema"`
}

// Fetch runs the introspection query and returns the decoded schema plus
// the raw data payload for JSON output.
func Fetch(ctx context.Context, client *graph.Client) (*Schema, json.RawMessage, error) {
	data, err := client.Execute(ctx, introspectionQuery, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("introspection query: %w", err)
	}

	var envelope schemaEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, nil, fmt.Errorf("decode schema: %w", err)
	}

	return &envelope.Schema, data, nil
}
