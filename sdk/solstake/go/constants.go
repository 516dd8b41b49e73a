package solstake

// InstructionType selects the on-chain handler. It is the first byte of every
// instruction payload.
type InstructionType uint8

const (
	InitializePoolInstructionIndex InstructionType = 0
	StakeInstructionIndex          InstructionType = 1
)

// PDA seeds for the staking program.
var (
	seedPool  = []byte("pool")
	seedStake = []byte("stake")
)

// Platform limits for program address derivation.
const (
	MaxSeeds      = 16
	MaxSeedLength = 32

	// maxBumpAttempts covers every bump value from 255 down to 0.
	maxBumpAttempts = 256
)

const (
	// LamportsPerSOL is the number of smallest units in one native unit.
	LamportsPerSOL = 1_000_000_000

	// RewardRateDenominator is the fixed-point scale of Pool.RewardRate.
	RewardRateDenominator = 1_000_000_000

	SecondsPerYear = 365 * 24 * 60 * 60
)

// Instruction payload sizes. Arguments start at byte 8 and are 8-byte aligned;
// bytes 1..7 are zero.
const (
	instructionArgsOffset  = 8
	InitializePoolDataSize = instructionArgsOffset + 8 + 8 // reward_rate u64, lock_period i64
	StakeDataSize          = instructionArgsOffset + 8     // amount u64
)
