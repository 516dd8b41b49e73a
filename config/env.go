package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gagliardetto/solana-go"
)

const (
	EnvMainnetBeta = "mainnet-beta"
	EnvMainnet     = "mainnet"
	EnvTestnet     = "testnet"
	EnvDevnet      = "devnet"
	EnvLocalnet    = "localnet"
)

const (
	EnvVarRPCURL    = "SOLSTAKE_RPC_URL"
	EnvVarProgramID = "SOLSTAKE_PROGRAM_ID"
)

var (
	ErrInvalidEnvironment = errors.New("invalid environment")
)

type NetworkConfig struct {
	Moniker           string
	SolanaRPCURL      string
	SolstakeProgramID solana.PublicKey
}

func NetworkConfigForEnv(env string) (*NetworkConfig, error) {
	var (
		moniker   string
		rpcURL    string
		programID string
	)
	switch env {
	case EnvMainnetBeta, EnvMainnet:
		moniker, rpcURL, programID = EnvMainnetBeta, MainnetSolanaRPC, MainnetSolstakeProgramID
	case EnvTestnet:
		moniker, rpcURL, programID = EnvTestnet, TestnetSolanaRPC, TestnetSolstakeProgramID
	case EnvDevnet:
		moniker, rpcURL, programID = EnvDevnet, DevnetSolanaRPC, DevnetSolstakeProgramID
	case EnvLocalnet:
		moniker, rpcURL, programID = EnvLocalnet, LocalnetSolanaRPC, LocalnetSolstakeProgramID
	default:
		// We intentionally do not include localnet in the error message.
		return nil, fmt.Errorf("%w %q, must be one of: %s, %s, %s", ErrInvalidEnvironment, env, EnvMainnetBeta, EnvTestnet, EnvDevnet)
	}

	if v := os.Getenv(EnvVarRPCURL); v != "" {
		rpcURL = v
	}
	if v := os.Getenv(EnvVarProgramID); v != "" {
		programID = v
	}

	pk, err := solana.PublicKeyFromBase58(programID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse solstake program ID: %w", err)
	}

	return &NetworkConfig{
		Moniker:           moniker,
		SolanaRPCURL:      rpcURL,
		SolstakeProgramID: pk,
	}, nil
}
