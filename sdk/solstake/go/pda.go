package solstake

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// CreateAddressFunc hashes a complete seed list (bump included) into a program
// address. It must fail when the resulting point lies on the ed25519 curve.
type CreateAddressFunc func(seeds [][]byte, programID solana.PublicKey) (solana.PublicKey, error)

// Deriver computes program-derived addresses for one deployment of the staking
// program. It holds no mutable state and is safe for concurrent use.
type Deriver struct {
	programID solana.PublicKey
	create    CreateAddressFunc
}

type DeriverOption func(*Deriver)

// WithCreateAddressFunc replaces the derivation primitive, which defaults to
// solana.CreateProgramAddress.
func WithCreateAddressFunc(fn CreateAddressFunc) DeriverOption {
	return func(d *Deriver) {
		d.create = fn
	}
}

func NewDeriver(programID solana.PublicKey, opts ...DeriverOption) *Deriver {
	d := &Deriver{
		programID: programID,
		create:    solana.CreateProgramAddress,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deriver) ProgramID() solana.PublicKey {
	return d.programID
}

// PoolAddress derives the pool PDA.
// Seeds: ["pool", stake_mint]
func (d *Deriver) PoolAddress(stakeMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.FindProgramAddress([][]byte{seedPool, stakeMint.Bytes()})
}

// StakeInfoAddress derives the PDA holding a user's position in a pool.
// Seeds: ["stake", pool, user]
func (d *Deriver) StakeInfoAddress(pool, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return d.FindProgramAddress([][]byte{seedStake, pool.Bytes(), user.Bytes()})
}

// FindProgramAddress searches bump seeds from 255 down to 0 and returns the
// first candidate the primitive accepts.
func (d *Deriver) FindProgramAddress(seeds [][]byte) (solana.PublicKey, uint8, error) {
	if len(seeds)+1 > MaxSeeds {
		return solana.PublicKey{}, 0, fmt.Errorf("%w: %d seeds plus bump exceeds max %d", ErrInvalidSeeds, len(seeds), MaxSeeds)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return solana.PublicKey{}, 0, fmt.Errorf("%w: seed %d is %d bytes, max %d", ErrInvalidSeeds, i, len(seed), MaxSeedLength)
		}
	}

	candidate := make([][]byte, len(seeds)+1)
	copy(candidate, seeds)
	bump := []byte{0}
	candidate[len(seeds)] = bump

	for attempt := 0; attempt < maxBumpAttempts; attempt++ {
		bump[0] = uint8(255 - attempt)
		addr, err := d.create(candidate, d.programID)
		if err == nil {
			return addr, bump[0], nil
		}
	}
	return solana.PublicKey{}, 0, fmt.Errorf("%w: exhausted %d bump seeds for program %s", ErrDerivation, maxBumpAttempts, d.programID)
}

// DerivePoolPDA derives the pool PDA for the given program deployment.
func DerivePoolPDA(programID, stakeMint solana.PublicKey) (solana.PublicKey, uint8, error) {
	return NewDeriver(programID).PoolAddress(stakeMint)
}

// DeriveStakeInfoPDA derives the stake-info PDA for the given program deployment.
func DeriveStakeInfoPDA(programID, pool, user solana.PublicKey) (solana.PublicKey, uint8, error) {
	return NewDeriver(programID).StakeInfoAddress(pool, user)
}
