// Package config loads server configuration from CURIO_-prefixed environment
// variables so main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config captures everything the server needs at startup. Empty backend URLs
// select the in-memory implementations, which keeps dev setups dependency
// free.
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`

	JWTSigningKey string `envconfig:"JWT_SIGNING_KEY" default:"dev-secret-key-change-in-production"`
	JWTIssuer     string `envconfig:"JWT_ISSUER" default:"curio"`
	JWTAudience   string `envconfig:"JWT_AUDIENCE" default:"curio"`

	RegistryAddress   string        `envconfig:"REGISTRY_ADDRESS" default:"registry"`
	MinStake          uint64        `envconfig:"MIN_STAKE" default:"100"`
	ApplicationPeriod time.Duration `envconfig:"APPLICATION_PERIOD" default:"72h"`

	VoteQuorum         uint64        `envconfig:"VOTE_QUORUM" default:"50"`
	PercentVoterReward uint64        `envconfig:"PERCENT_VOTER_REWARD" default:"20"`
	CommitStageLength  time.Duration `envconfig:"COMMIT_STAGE_LENGTH" default:"24h"`
	RevealStageLength  time.Duration `envconfig:"REVEAL_STAGE_LENGTH" default:"24h"`

	PostgresURL string        `envconfig:"POSTGRES_URL"`
	RedisURL    string        `envconfig:"REDIS_URL"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"registry-events"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("curio", &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	if cfg.PercentVoterReward > 100 {
		return Config{}, fmt.Errorf("percent voter reward must be at most 100, got %d", cfg.PercentVoterReward)
	}
	return cfg, nil
}
