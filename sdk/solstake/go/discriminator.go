package solstake

import (
	"crypto/sha256"
	"fmt"
)

const discriminatorSize = 8

// Anchor account discriminators: the first 8 bytes of sha256("account:<Name>").
var (
	DiscriminatorPool      = accountDiscriminator("Pool")
	DiscriminatorStakeInfo = accountDiscriminator("StakeInfo")
)

func accountDiscriminator(name string) [8]byte {
	h := sha256.Sum256([]byte("account:" + name))
	var disc [8]byte
	copy(disc[:], h[:discriminatorSize])
	return disc
}

// ValidateDiscriminator checks the account type prefix. The decoders skip the
// prefix without checking it; callers that mix account kinds use this first.
func ValidateDiscriminator(data []byte, expected [8]byte) error {
	if len(data) < discriminatorSize {
		return fmt.Errorf("%w: data too short", ErrInvalidDiscriminator)
	}
	var got [8]byte
	copy(got[:], data[:discriminatorSize])
	if got != expected {
		return fmt.Errorf("%w: got %x, want %x", ErrInvalidDiscriminator, got, expected)
	}
	return nil
}
