package config_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/portfoliofull/solstake/config"
	"github.com/stretchr/testify/require"
)

func TestConfig_NetworkConfigForEnv(t *testing.T) {
	programID := solana.MustPublicKeyFromBase58(config.SolstakeProgramID)

	tests := []struct {
		env  string
		want *config.NetworkConfig
	}{
		{
			env: config.EnvMainnet,
			want: &config.NetworkConfig{
				Moniker:           config.EnvMainnetBeta,
				SolanaRPCURL:      config.MainnetSolanaRPC,
				SolstakeProgramID: programID,
			},
		},
		{
			env: config.EnvMainnetBeta,
			want: &config.NetworkConfig{
				Moniker:           config.EnvMainnetBeta,
				SolanaRPCURL:      config.MainnetSolanaRPC,
				SolstakeProgramID: programID,
			},
		},
		{
			env: config.EnvTestnet,
			want: &config.NetworkConfig{
				Moniker:           config.EnvTestnet,
				SolanaRPCURL:      config.TestnetSolanaRPC,
				SolstakeProgramID: programID,
			},
		},
		{
			env: config.EnvDevnet,
			want: &config.NetworkConfig{
				Moniker:           config.EnvDevnet,
				SolanaRPCURL:      config.DevnetSolanaRPC,
				SolstakeProgramID: programID,
			},
		},
		{
			env: config.EnvLocalnet,
			want: &config.NetworkConfig{
				Moniker:           config.EnvLocalnet,
				SolanaRPCURL:      config.LocalnetSolanaRPC,
				SolstakeProgramID: programID,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.env, func(t *testing.T) {
			t.Setenv(config.EnvVarRPCURL, "")
			t.Setenv(config.EnvVarProgramID, "")
			got, err := config.NetworkConfigForEnv(test.env)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestConfig_NetworkConfigForEnv_Invalid(t *testing.T) {
	_, err := config.NetworkConfigForEnv("invalid")
	require.ErrorIs(t, err, config.ErrInvalidEnvironment)
	require.EqualError(t, err, `invalid environment "invalid", must be one of: mainnet-beta, testnet, devnet`)
}

func TestConfig_NetworkConfigForEnv_OverrideFromEnvVars(t *testing.T) {
	other := solana.NewWallet().PublicKey()
	t.Setenv(config.EnvVarRPCURL, "https://other-rpc-url.com")
	t.Setenv(config.EnvVarProgramID, other.String())

	got, err := config.NetworkConfigForEnv(config.EnvMainnet)
	require.NoError(t, err)
	require.Equal(t, "https://other-rpc-url.com", got.SolanaRPCURL)
	require.Equal(t, other, got.SolstakeProgramID)
	require.Equal(t, config.EnvMainnetBeta, got.Moniker)
}

func TestConfig_NetworkConfigForEnv_InvalidProgramIDOverride(t *testing.T) {
	t.Setenv(config.EnvVarRPCURL, "")
	t.Setenv(config.EnvVarProgramID, "not-a-key")

	_, err := config.NetworkConfigForEnv(config.EnvDevnet)
	require.ErrorContains(t, err, "failed to parse solstake program ID")
}
