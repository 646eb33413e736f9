// Package config loads service configuration from the environment. The
// resulting struct is built once at startup and handed to constructors;
// nothing mutates it afterwards.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Host string
	Port int

	// NarrativeAPIURL is the base URL of the narrative detection feed.
	NarrativeAPIURL string
	// PriceAPIURL is the Jupiter price API endpoint.
	PriceAPIURL string

	// RPCEndpoint is the Solana JSON-RPC node used for wallet queries.
	RPCEndpoint string
	// Network is the label echoed in wallet responses (mainnet-beta, devnet).
	Network string
	// WalletSecret is the base58 secret key; empty means an ephemeral
	// identity gets generated at startup.
	WalletSecret string

	// TokenMapFile optionally overrides the embedded narrative→mint table.
	TokenMapFile string

	// RequestTimeout bounds each outbound upstream call.
	RequestTimeout time.Duration
}

// Load reads configuration from the environment, falling back to defaults
// suitable for local development.
func Load() Config {
	return Config{
		Host:            envString("HTTP_HOST", "0.0.0.0"),
		Port:            envInt("PORT", 3000),
		NarrativeAPIURL: envString("NARRATIVE_API_URL", "http://localhost:3001"),
		PriceAPIURL:     envString("PRICE_API_URL", "https://api.jup.ag/price/v2"),
		RPCEndpoint:     envString("SOLANA_RPC_URL", "https://api.mainnet-beta.solana.com"),
		Network:         envString("SOLANA_NETWORK", "mainnet-beta"),
		WalletSecret:    os.Getenv("WALLET_SECRET_KEY"),
		TokenMapFile:    os.Getenv("TOKEN_MAP_FILE"),
		RequestTimeout:  envDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
