package solstake

import "github.com/gagliardetto/solana-go"

// Pool is a read-only snapshot of a staking pool account.
// On-chain size: 8 (discriminator) + 137 = 145 bytes.
type Pool struct {
	Authority               solana.PublicKey // 32 bytes
	StakeMint               solana.PublicKey // 32 bytes
	RewardMint              solana.PublicKey // 32 bytes
	RewardRate              uint64           // 8 bytes, scaled by RewardRateDenominator per second per staked unit
	LockPeriod              int64            // 8 bytes, seconds
	TotalStaked             uint64           // 8 bytes
	TotalRewardsDistributed uint64           // 8 bytes
	LastUpdateTime          int64            // 8 bytes, unix seconds
	Bump                    uint8            // 1 byte
}

// StakeInfo is a read-only snapshot of one user's position in a pool.
// On-chain size: 8 (discriminator) + 97 = 105 bytes.
type StakeInfo struct {
	User           solana.PublicKey // 32 bytes
	Pool           solana.PublicKey // 32 bytes
	Amount         uint64           // 8 bytes
	StakeTime      int64            // 8 bytes, unix seconds
	LastClaimTime  int64            // 8 bytes, unix seconds
	PendingRewards uint64           // 8 bytes
	Bump           uint8            // 1 byte
}

var PoolLayout = mustLayout("Pool",
	fieldDef{"authority", FieldPubkey},
	fieldDef{"stake_mint", FieldPubkey},
	fieldDef{"reward_mint", FieldPubkey},
	fieldDef{"reward_rate", FieldU64},
	fieldDef{"lock_period", FieldI64},
	fieldDef{"total_staked", FieldU64},
	fieldDef{"total_rewards_distributed", FieldU64},
	fieldDef{"last_update_time", FieldI64},
	fieldDef{"bump", FieldU8},
)

var StakeInfoLayout = mustLayout("StakeInfo",
	fieldDef{"user", FieldPubkey},
	fieldDef{"pool", FieldPubkey},
	fieldDef{"amount", FieldU64},
	fieldDef{"stake_time", FieldI64},
	fieldDef{"last_claim_time", FieldI64},
	fieldDef{"pending_rewards", FieldU64},
	fieldDef{"bump", FieldU8},
)
