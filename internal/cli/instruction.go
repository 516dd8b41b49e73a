package cli

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"github.com/olekukonko/tablewriter"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/spf13/cobra"
)

const (
	encodingHex    = "hex"
	encodingBase58 = "base58"
	encodingBase64 = "base64"
)

// InstructionCmd prints unsigned instructions for signing elsewhere.
type InstructionCmd struct{}

func NewInstructionCmd() *InstructionCmd {
	return &InstructionCmd{}
}

func (c *InstructionCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ix",
		Aliases: []string{"instruction"},
		Short:   "Build unsigned staking instructions",
	}
	cmd.PersistentFlags().String("encoding", encodingBase58, "instruction data encoding (hex, base58, base64)")
	cmd.AddCommand(
		c.initializePoolCommand(),
		c.stakeCommand(),
	)
	return cmd
}

func (c *InstructionCmd) initializePoolCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "initialize-pool",
		Short: "Build an InitializePool instruction",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("authority", "", "pool authority and payer")
	cmd.Flags().String("stake-mint", "", "mint of the staked token")
	cmd.Flags().String("reward-mint", "", "mint of the reward token")
	cmd.Flags().Uint64("reward-rate", 0, "reward per second per staked unit, scaled by 1e9")
	cmd.Flags().Int64("lock-period", 0, "lock period in seconds")
	for _, name := range []string{"authority", "stake-mint", "reward-mint"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.RunE = withSession(func(s *session, cmd *cobra.Command, args []string) error {
		keys, err := publicKeyFlags(cmd, "authority", "stake-mint", "reward-mint")
		if err != nil {
			return err
		}
		rewardRate, err := cmd.Flags().GetUint64("reward-rate")
		if err != nil {
			return fmt.Errorf("failed to get reward-rate flag: %w", err)
		}
		lockPeriod, err := cmd.Flags().GetInt64("lock-period")
		if err != nil {
			return fmt.Errorf("failed to get lock-period flag: %w", err)
		}

		ix, err := solstake.BuildInitializePoolInstruction(s.programID, solstake.InitializePoolInstructionConfig{
			Authority:  keys["authority"],
			StakeMint:  keys["stake-mint"],
			RewardMint: keys["reward-mint"],
			RewardRate: rewardRate,
			LockPeriod: lockPeriod,
		})
		if err != nil {
			return fmt.Errorf("failed to build instruction: %w", err)
		}
		return renderInstruction(cmd, s, ix)
	})
	return cmd
}

func (c *InstructionCmd) stakeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stake",
		Short: "Build a Stake instruction",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().String("user", "", "staking user and signer")
	cmd.Flags().String("stake-mint", "", "mint of the pool's staked token")
	cmd.Flags().String("user-token-account", "", "user's token account for the stake mint")
	cmd.Flags().String("pool-vault", "", "pool's token vault")
	cmd.Flags().String("token-program", "", "token program (default: SPL Token)")
	cmd.Flags().String("amount", "", "amount to stake in native units, e.g. 1.5")
	for _, name := range []string{"user", "stake-mint", "user-token-account", "pool-vault", "amount"} {
		_ = cmd.MarkFlagRequired(name)
	}

	cmd.RunE = withSession(func(s *session, cmd *cobra.Command, args []string) error {
		keys, err := publicKeyFlags(cmd, "user", "stake-mint", "user-token-account", "pool-vault")
		if err != nil {
			return err
		}
		var tokenProgram solana.PublicKey
		if v, _ := cmd.Flags().GetString("token-program"); v != "" {
			tokenProgram, err = parsePublicKey("token-program", v)
			if err != nil {
				return err
			}
		}
		rawAmount, err := cmd.Flags().GetString("amount")
		if err != nil {
			return fmt.Errorf("failed to get amount flag: %w", err)
		}
		amount, err := solstake.ParseNativeUnits(rawAmount)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}

		pool, _, err := solstake.NewDeriver(s.programID).PoolAddress(keys["stake-mint"])
		if err != nil {
			return fmt.Errorf("failed to derive pool address: %w", err)
		}

		ix, err := solstake.BuildStakeInstruction(s.programID, solstake.StakeInstructionConfig{
			User:             keys["user"],
			Pool:             pool,
			UserTokenAccount: keys["user-token-account"],
			PoolVault:        keys["pool-vault"],
			TokenProgram:     tokenProgram,
			Amount:           amount,
		})
		if err != nil {
			return fmt.Errorf("failed to build instruction: %w", err)
		}
		return renderInstruction(cmd, s, ix)
	})
	return cmd
}

func publicKeyFlags(cmd *cobra.Command, names ...string) (map[string]solana.PublicKey, error) {
	keys := make(map[string]solana.PublicKey, len(names))
	for _, name := range names {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		pk, err := parsePublicKey(name, v)
		if err != nil {
			return nil, err
		}
		keys[name] = pk
	}
	return keys, nil
}

func encodeData(encoding string, data []byte) (string, error) {
	switch encoding {
	case encodingHex:
		return hex.EncodeToString(data), nil
	case encodingBase58:
		return base58.Encode(data), nil
	case encodingBase64:
		return base64.StdEncoding.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("invalid encoding %q, must be one of: %s, %s, %s", encoding, encodingHex, encodingBase58, encodingBase64)
	}
}

func renderInstruction(cmd *cobra.Command, s *session, ix solana.Instruction) error {
	encoding, err := cmd.Flags().GetString("encoding")
	if err != nil {
		return fmt.Errorf("failed to get encoding flag: %w", err)
	}
	data, err := ix.Data()
	if err != nil {
		return fmt.Errorf("failed to get instruction data: %w", err)
	}
	encoded, err := encodeData(encoding, data)
	if err != nil {
		return err
	}

	view := instructionView{
		ProgramID: ix.ProgramID().String(),
		Encoding:  encoding,
		Data:      encoded,
	}
	for _, meta := range ix.Accounts() {
		view.Accounts = append(view.Accounts, accountMetaView{
			PublicKey:  meta.PublicKey.String(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		})
	}

	return render(cmd.OutOrStdout(), s.output, view, func(t *tablewriter.Table) {
		t.SetHeader([]string{"#", "Account", "Signer", "Writable"})
		for i, a := range view.Accounts {
			t.Append([]string{fmt.Sprintf("%d", i), a.PublicKey, fmt.Sprintf("%t", a.IsSigner), fmt.Sprintf("%t", a.IsWritable)})
		}
		t.SetFooter([]string{"", "program " + view.ProgramID, "", ""})
		t.SetCaption(true, fmt.Sprintf("data (%s): %s", view.Encoding, view.Data))
	})
}
