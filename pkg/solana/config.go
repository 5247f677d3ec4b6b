package solana

import (
	"time"

	"github.com/code-payments/metaplex-client/pkg/config"
	"github.com/code-payments/metaplex-client/pkg/config/env"
	"github.com/code-payments/metaplex-client/pkg/config/memory"
	"github.com/code-payments/metaplex-client/pkg/config/wrapper"
)

type Environment string

const (
	EnvironmentDev  Environment = "https://api.devnet.solana.com"
	EnvironmentTest Environment = "https://api.testnet.solana.com"
	EnvironmentProd Environment = "https://api.mainnet-beta.solana.com"
)

const (
	envConfigPrefix = "SOLANA_RPC_"

	EndpointConfigEnvName = envConfigPrefix + "ENDPOINT"
	defaultEndpoint       = string(EnvironmentProd)

	TimeoutConfigEnvName = envConfigPrefix + "TIMEOUT"
	defaultTimeout       = 10 * time.Second

	CommitmentConfigEnvName = envConfigPrefix + "COMMITMENT"
	defaultCommitment       = confirmationStatusConfirmed

	SkipPreflightConfigEnvName = envConfigPrefix + "SKIP_PREFLIGHT"
	defaultSkipPreflight       = true
)

type conf struct {
	endpoint      config.String
	timeout       config.Duration
	commitment    config.String
	skipPreflight config.Bool
}

// ConfigProvider defines how config values are pulled
type ConfigProvider func() *conf

// WithEnvConfigs returns configuration pulled from environment variables
func WithEnvConfigs() ConfigProvider {
	return func() *conf {
		return &conf{
			endpoint:      env.NewStringConfig(EndpointConfigEnvName, defaultEndpoint),
			timeout:       env.NewDurationConfig(TimeoutConfigEnvName, defaultTimeout),
			commitment:    env.NewStringConfig(CommitmentConfigEnvName, defaultCommitment),
			skipPreflight: env.NewBoolConfig(SkipPreflightConfigEnvName, defaultSkipPreflight),
		}
	}
}

type testOverrides struct {
	endpoint      string
	commitment    string
	skipPreflight bool
}

func withManualTestOverrides(overrides *testOverrides) ConfigProvider {
	return func() *conf {
		return &conf{
			endpoint:      wrapper.NewStringConfig(memory.NewConfig(overrides.endpoint), defaultEndpoint),
			timeout:       wrapper.NewDurationConfig(memory.NewConfig(defaultTimeout), defaultTimeout),
			commitment:    wrapper.NewStringConfig(memory.NewConfig(overrides.commitment), defaultCommitment),
			skipPreflight: wrapper.NewBoolConfig(memory.NewConfig(overrides.skipPreflight), defaultSkipPreflight),
		}
	}
}
