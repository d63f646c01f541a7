package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DownloadConfig holds settings for the download command, merged from flags,
// environment, and an optional config file.
type DownloadConfig struct {
	Subgraph      string
	QueryType     string
	Limit         int
	PageSize      int
	PoolID        string
	MinAmountUSD  float64
	StartTime     string
	EndTime       string
	Output        string
	APIKey        string
	PGDSN         string
	ListSubgraphs bool
	LogLevel      string
}

// LoadDownload merges config file, environment variables, and flags into
// DownloadConfig.
func LoadDownload(cfgFile string, flags *pflag.FlagSet) (DownloadConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]any{
		"subgraph":   "uniswap_v3_ethereum",
		"query-type": "swaps",
		"limit":      100,
		"page-size":  100,
		"log-level":  "info",
	})
	if err != nil {
		return DownloadConfig{}, err
	}

	cfg := DownloadConfig{
		Subgraph:      v.GetString("subgraph"),
		QueryType:     v.GetString("query-type"),
		Limit:         v.GetInt("limit"),
		PageSize:      v.GetInt("page-size"),
		PoolID:        v.GetString("pool-id"),
		MinAmountUSD:  v.GetFloat64("min-amount-usd"),
		StartTime:     v.GetString("start-time"),
		EndTime:       v.GetString("end-time"),
		Output:        v.GetString("output"),
		APIKey:        v.GetString("api-key"),
		PGDSN:         v.GetString("pg-dsn"),
		ListSubgraphs: v.GetBool("list-subgraphs"),
		LogLevel:      v.GetString("log-level"),
	}

	return cfg, nil
}

// SchemaConfig holds settings for the schema command.
type SchemaConfig struct {
	Output   string
	JSON     bool
	APIKey   string
	LogLevel string
}

// LoadSchema merges config file, environment variables, and flags into
// SchemaConfig.
func LoadSchema(cfgFile string, flags *pflag.FlagSet) (SchemaConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]any{
		"log-level": "info",
	})
	if err != nil {
		return SchemaConfig{}, err
	}

	cfg := SchemaConfig{
		Output:   v.GetString("output"),
		JSON:     v.GetBool("json"),
		APIKey:   v.GetString("api-key"),
		LogLevel: v.GetString("log-level"),
	}

	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]any) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("DEXGRAPH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// The Graph's conventional variable name, kept alongside the prefixed
	// form.
	if err := v.BindEnv("api-key", "DEXGRAPH_API_KEY", "GRAPH_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

// ParseTimestamp parses a timestamp value (unix seconds or RFC3339). An
// empty input parses to zero.
func ParseTimestamp(input string) (uint64, error) {
	if strings.TrimSpace(input) == "" {
		return 0, nil
	}

	if isNumeric(input) {
		val, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return 0, err
		}
		return val, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if tm, err := time.Parse(layout, input); err == nil {
			return uint64(tm.Unix()), nil
		}
	}
	return 0, fmt.Errorf("cannot parse time %q: use unix seconds, YYYY-MM-DD, or RFC3339", input)
}

func isNumeric(input string) bool {
	for _, r := range input {
		if r < '0' || r > '9' {
			return false
		}
	}
	return input != ""
}
