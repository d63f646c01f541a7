package introspect

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dexgraph/internal/graph"
)

func TestExtractSubgraphID(t *testing.T) {
	id, err := ExtractSubgraphID("https://gateway.thegraph.com/api/subgraphs/id/ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "ABC123" {
		t.Fatalf("id = %s", id)
	}
}

func TestExtractSubgraphIDWithKeyInPath(t *testing.T) {
	id, err := ExtractSubgraphID("https://gateway.thegraph.com/api/some-key/subgraphs/id/5zvR82QoaXYFyDEKLZ9t6v9adgnptxYpKpSbxtgVENFV")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "5zvR82QoaXYFyDEKLZ9t6v9adgnptxYpKpSbxtgVENFV" {
		t.Fatalf("id = %s", id)
	}
}

func TestExtractSubgraphIDBare(t *testing.T) {
	bare := "HMuAwufqZ1YCRmzL2SfHTVkzZovC9VL2UAKhjvRqKiR1"
	id, err := ExtractSubgraphID(bare)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != bare {
		t.Fatalf("id = %s", id)
	}
}

func TestExtractSubgraphIDMalformed(t *testing.T) {
	for _, input := range []string{
		"https://gateway.thegraph.com/api/subgraphs/name/uniswap",
		"not-a-subgraph-id",
		"short",
	} {
		if _, err := ExtractSubgraphID(input); !errors.Is(err, ErrMalformedURL) {
			t.Fatalf("expected ErrMalformedURL for %q, got %v", input, err)
		}
	}
}

func TestTypeRefString(t *testing.T) {
	cases := []struct {
		ref  TypeRef
		want string
	}{
		{TypeRef{Kind: "SCALAR", Name: "String"}, "String"},
		{TypeRef{Kind: "NON_NULL", OfType: &TypeRef{Kind: "SCALAR", Name: "ID"}}, "ID!"},
		{TypeRef{Kind: "LIST", OfType: &TypeRef{Kind: "OBJECT", Name: "Swap"}}, "[Swap]"},
		{
			TypeRef{Kind: "NON_NULL", OfType: &TypeRef{Kind: "LIST", OfType: &TypeRef{Kind: "NON_NULL", OfType: &TypeRef{Kind: "OBJECT", Name: "Pool"}}}},
			"[Pool!]!",
		},
		{TypeRef{Kind: "NON_NULL"}, "Unknown"},
	}

	for _, tc := range cases {
		if got := tc.ref.String(); got != tc.want {
			t.Fatalf("%+v rendered %s, want %s", tc.ref, got, tc.want)
		}
	}
}

func TestFetchAndSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data": {"__schema": {
			"queryType": {"name": "Query"},
			"types": [
				{"kind": "OBJECT", "name": "Query", "fields": []},
				{"kind": "OBJECT", "name": "Pool", "fields": [
					{"name": "id", "type": {"kind": "NON_NULL", "ofType": {"kind": "SCALAR", "name": "ID"}}},
					{"name": "token0", "type": {"kind": "OBJECT", "name": "Token"}},
					{"name": "token1", "type": {"kind": "OBJECT", "name": "Token"}},
					{"name": "feeTier", "type": {"kind": "SCALAR", "name": "BigInt"}},
					{"name": "liquidity", "type": {"kind": "SCALAR", "name": "BigInt"}},
					{"name": "volumeUSD", "type": {"kind": "SCALAR", "name": "BigDecimal"}},
					{"name": "txCount", "type": {"kind": "SCALAR", "name": "BigInt"}}
				]},
				{"kind": "SCALAR", "name": "BigInt"},
				{"kind": "SCALAR", "name": "__InternalThing"}
			]
		}}}`))
	}))
	defer server.Close()

	client := graph.NewClient(server.URL, "", nil)
	schema, raw, err := Fetch(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("raw payload is empty")
	}
	if schema.QueryType == nil || schema.QueryType.Name != "Query" {
		t.Fatalf("query type = %+v", schema.QueryType)
	}

	var buf bytes.Buffer
	WriteSummary(&buf, schema)
	out := buf.String()

	if !strings.Contains(out, "Query Type: Query") {
		t.Fatalf("summary missing query type:\n%s", out)
	}
	if !strings.Contains(out, "Pool (7 fields)") {
		t.Fatalf("summary missing Pool entity:\n%s", out)
	}
	if !strings.Contains(out, "- id: ID!") {
		t.Fatalf("summary missing rendered field type:\n%s", out)
	}
	if !strings.Contains(out, "... and 2 more fields") {
		t.Fatalf("summary missing overflow line:\n%s", out)
	}
	if strings.Contains(out, "__InternalThing") {
		t.Fatalf("summary leaks internal types:\n%s", out)
	}
	// The Query root itself is not listed as an entity.
	if strings.Contains(out, "Query (0 fields)") {
		t.Fatalf("summary lists the Query root:\n%s", out)
	}
}
