package config

import (
	"gobridgeflow/types"
)

type Configuration struct {
	// Server config
	Server struct {
		Port      int    `yaml:"port"`
		UseSSL    bool   `yaml:"ssl" envconfig:"ssl"`
		CertFile  string `yaml:"cert_file" split_words:"true"`
		KeyFile   string `yaml:"key_file" split_words:"true"`
		RedisPort int    `yaml:"redis_port" split_words:"true"`
		RedisHost string `yaml:"redis_host" split_words:"true"`
		// seconds a stored user profile is kept
		ProfileTTL int `yaml:"profile_ttl" envconfig:"profile_ttl"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
	} `yaml:"log"`
	Flow struct {
		HomeChain string `yaml:"home_chain" split_words:"true"`
		// seconds an untouched flow is kept before it is discarded
		IdleTimeout int `yaml:"idle_timeout" split_words:"true"`
	} `yaml:"flow"`
}

var Config Configuration

// environment variables are read with this prefix, e.g. BRIDGEFLOW_SERVER_REDIS_HOST
const ENV_PREFIX = "BRIDGEFLOW"

const DEFAULT_HOME_CHAIN = "sui"

// display-only estimates, the bridge is simulated
const (
	BRIDGE_PROGRESS_PERCENT  = 65
	FEE_ESTIMATE             = "~0.001 SUI"
	TIME_ESTIMATE            = "2-5 minutes"
	BRIDGE_COMPLETE_ESTIMATE = "~2 min"
	VALIDATORS_SIGNED        = "12/15"
	CONFIRMATIONS            = "8/12"
	TOTAL_FEES               = "0.003 SUI"
	TOTAL_TIME               = "3m 24s"
)

var Chains = map[types.ChainID]types.Chain{
	"sui":      {ID: "sui", Name: "Sui", Family: types.FamilyMove},
	"ethereum": {ID: "ethereum", Name: "Ethereum", Family: types.FamilyEVM},
	"polygon":  {ID: "polygon", Name: "Polygon", Family: types.FamilyEVM},
	"arbitrum": {ID: "arbitrum", Name: "Arbitrum", Family: types.FamilyEVM},
}

var Assets = map[types.AssetID]types.Asset{
	"sui":  {ID: "sui", Name: "SUI", Symbol: "SUI"},
	"usdc": {ID: "usdc", Name: "USD Coin", Symbol: "USDC"},
	"eth":  {ID: "eth", Name: "Ethereum", Symbol: "ETH"},
	"wbtc": {ID: "wbtc", Name: "Wrapped Bitcoin", Symbol: "WBTC"},
}

// Catalog builds the flow catalog from the static tables and the configured home chain
func (c *Configuration) Catalog() types.Catalog {
	home := types.ChainID(c.Flow.HomeChain)
	if home == "" {
		home = DEFAULT_HOME_CHAIN
	}
	return types.Catalog{
		HomeChain: home,
		Chains:    Chains,
		Assets:    Assets,
	}
}
