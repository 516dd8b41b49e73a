package solstake

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/near/borsh-go"
)

type InitializePoolInstructionConfig struct {
	Authority  solana.PublicKey
	StakeMint  solana.PublicKey
	RewardMint solana.PublicKey
	RewardRate uint64
	LockPeriod int64
}

func (c *InitializePoolInstructionConfig) Validate() error {
	if c.Authority.IsZero() {
		return fmt.Errorf("authority public key is required")
	}
	if c.StakeMint.IsZero() {
		return fmt.Errorf("stake mint public key is required")
	}
	if c.RewardMint.IsZero() {
		return fmt.Errorf("reward mint public key is required")
	}
	if c.LockPeriod < 0 {
		return fmt.Errorf("lock period %d must not be negative", c.LockPeriod)
	}
	return nil
}

// BuildInitializePoolInstruction builds the instruction that creates the pool
// PDA for config.StakeMint.
func BuildInitializePoolInstruction(
	programID solana.PublicKey,
	config InitializePoolInstructionConfig,
) (solana.Instruction, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	data, err := borsh.Serialize(struct {
		Discriminator uint8
		Padding       [instructionArgsOffset - 1]uint8
		RewardRate    uint64
		LockPeriod    int64
	}{
		Discriminator: uint8(InitializePoolInstructionIndex),
		RewardRate:    config.RewardRate,
		LockPeriod:    config.LockPeriod,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize args: %w", err)
	}

	poolPDA, _, err := DerivePoolPDA(programID, config.StakeMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}

	accounts := []*solana.AccountMeta{
		{PublicKey: config.Authority, IsSigner: true, IsWritable: true},
		{PublicKey: poolPDA, IsSigner: false, IsWritable: true},
		{PublicKey: config.StakeMint, IsSigner: false, IsWritable: false},
		{PublicKey: config.RewardMint, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
	}

	return &solana.GenericInstruction{
		ProgID:        programID,
		AccountValues: accounts,
		DataBytes:     data,
	}, nil
}
