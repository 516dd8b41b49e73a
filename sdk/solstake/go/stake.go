package solstake

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type StakeInstructionConfig struct {
	User             solana.PublicKey
	Pool             solana.PublicKey
	UserTokenAccount solana.PublicKey
	PoolVault        solana.PublicKey
	// TokenProgram defaults to solana.TokenProgramID when zero.
	TokenProgram solana.PublicKey
	Amount       uint64
}

func (c *StakeInstructionConfig) Validate() error {
	if c.User.IsZero() {
		return fmt.Errorf("user public key is required")
	}
	if c.Pool.IsZero() {
		return fmt.Errorf("pool public key is required")
	}
	if c.UserTokenAccount.IsZero() {
		return fmt.Errorf("user token account public key is required")
	}
	if c.PoolVault.IsZero() {
		return fmt.Errorf("pool vault public key is required")
	}
	if c.Amount == 0 {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// BuildStakeInstruction builds the instruction that moves config.Amount from the
// user's token account into the pool vault. The stake-info PDA is derived from
// the pool and user.
func BuildStakeInstruction(
	programID solana.PublicKey,
	config StakeInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
		Padding       [instructionArgsOffset - 1]uint8
		Amount        uint64
	}{
		Discriminator: uint8(StakeInstructionIndex),
		Amount:        config.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	stakeInfoPDA, _, err := DeriveStakeInfoPDA(programID, config.Pool, config.User)
	if err != nil {
		return nil, fmt.Errorf("failed to derive stake info PDA: %w", err)
	}

	tokenProgram := config.TokenProgram
	if tokenProgram.IsZero() {
		tokenProgram = solana.TokenProgramID
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: config.User, IsSigner: true, IsWritable: true},
		{PublicKey: config.Pool, IsSigner: false, IsWritable: true},
		{PublicKey: stakeInfoPDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.UserTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: config.PoolVault, IsSigner: false, IsWritable: true},
		{PublicKey: tokenProgram, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
