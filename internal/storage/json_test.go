package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"dexgraph/internal/model"
)

func TestWriteJSONCreatesDirsAndRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data", "tokens.json")

	tokens := []model.Token{
		{ID: "0xusdc", Symbol: "USDC", Name: "USD Coin", Decimals: "6", VolumeUSD: "1", TotalLiquidity: "2"},
		{ID: "0xweth", Symbol: "WETH", Name: "Wrapped Ether", Decimals: "18", VolumeUSD: "3", TotalLiquidity: "4"},
	}

	if err := WriteJSON(path, tokens); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded []model.Token
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if !reflect.DeepEqual(tokens, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", tokens, decoded)
	}
}

func TestWriteJSONEmptySlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swaps.json")

	if err := WriteJSON(path, []model.Swap{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "[]\n" {
		t.Fatalf("empty output = %q", string(data))
	}
}
