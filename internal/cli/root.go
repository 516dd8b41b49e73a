package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/portfoliofull/solstake/config"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/spf13/cobra"
)

type ExitCode int

const (
	exitCodeSuccess = 0
	exitCodeError   = 1
)

const (
	defaultRetries = 5
	defaultTimeout = 30 * time.Second
)

// rpcFactory opens a ledger client for an RPC URL.
type rpcFactory func(url string) solstake.RPCClient

func newSolanaRPC(url string) solstake.RPCClient {
	return solanarpc.New(url)
}

func Run() ExitCode {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	if err := newRootCmd(newSolanaRPC).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitCodeError
	}
	return exitCodeSuccess
}

func newRootCmd(newRPC rpcFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "solstake-cli",
		Short:         "Inspect SolStake pools and positions, and build staking instructions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cmd.Help()
			if err != nil {
				return fmt.Errorf("failed to show help: %w", err)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "set debug logging level")
	flags.StringP("env", "e", envWithDefault("SOLSTAKE_ENV", config.EnvDevnet), "network environment (mainnet-beta, testnet, devnet, localnet)")
	flags.String("rpc-url", "", "Solana RPC URL override")
	flags.String("program-id", "", "SolStake program ID override")
	flags.StringP("output", "o", outputTable, "output format (table, json, yaml)")
	flags.Uint("retries", defaultRetries, "maximum attempts per RPC call")
	flags.Duration("timeout", defaultTimeout, "overall command timeout")

	rootCmd.AddCommand(
		NewPDACmd().Command(),
		NewPoolCmd(newRPC).Command(),
		NewPoolsCmd(newRPC).Command(),
		NewPositionCmd(newRPC).Command(),
		NewInstructionCmd().Command(),
	)
	return rootCmd
}

// session is the resolved state shared by every subcommand.
type session struct {
	log       *slog.Logger
	network   *config.NetworkConfig
	programID solana.PublicKey
	output    string
	retries   uint
	timeout   time.Duration
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Root().PersistentFlags()
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}
	env, err := flags.GetString("env")
	if err != nil {
		return nil, fmt.Errorf("failed to get env flag: %w", err)
	}
	rpcURL, err := flags.GetString("rpc-url")
	if err != nil {
		return nil, fmt.Errorf("failed to get rpc-url flag: %w", err)
	}
	programID, err := flags.GetString("program-id")
	if err != nil {
		return nil, fmt.Errorf("failed to get program-id flag: %w", err)
	}
	output, err := flags.GetString("output")
	if err != nil {
		return nil, fmt.Errorf("failed to get output flag: %w", err)
	}
	retries, err := flags.GetUint("retries")
	if err != nil {
		return nil, fmt.Errorf("failed to get retries flag: %w", err)
	}
	timeout, err := flags.GetDuration("timeout")
	if err != nil {
		return nil, fmt.Errorf("failed to get timeout flag: %w", err)
	}

	if err := validateOutput(output); err != nil {
		return nil, err
	}

	network, err := config.NetworkConfigForEnv(env)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network config: %w", err)
	}
	if rpcURL != "" {
		network.SolanaRPCURL = rpcURL
	}
	if programID != "" {
		pk, err := solana.PublicKeyFromBase58(programID)
		if err != nil {
			return nil, fmt.Errorf("invalid --program-id %q: %w", programID, err)
		}
		network.SolstakeProgramID = pk
	}
	if retries == 0 {
		retries = 1
	}

	return &session{
		log:       newLogger(verbose),
		network:   network,
		programID: network.SolstakeProgramID,
		output:    output,
		retries:   retries,
		timeout:   timeout,
	}, nil
}

// withClient resolves the session, opens a retrying RPC client, and runs f
// under a context bounded by --timeout and cancelled on SIGINT/SIGTERM.
func withClient(newRPC rpcFactory, f func(ctx context.Context, s *session, client *solstake.Client, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		if s.timeout > 0 {
			var timeoutCancel context.CancelFunc
			ctx, timeoutCancel = context.WithTimeout(ctx, s.timeout)
			defer timeoutCancel()
		}

		s.log.Debug("Using network", "env", s.network.Moniker, "rpc", s.network.SolanaRPCURL, "program", s.programID)
		rpc := newRetryingRPC(s.log, newRPC(s.network.SolanaRPCURL), s.retries)
		client := solstake.New(s.log, rpc, s.programID)

		return f(ctx, s, client, cmd, args)
	}
}

// withSession is withClient for commands that never touch the network.
func withSession(f func(s *session, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return f(s, cmd, args)
	}
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func envWithDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}

func parsePublicKey(name, value string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(value)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return pk, nil
}
