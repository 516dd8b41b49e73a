package solstake

import "errors"

var (
	// ErrDerivation is returned when no bump seed in [0, 255] yields an off-curve address.
	ErrDerivation = errors.New("no viable bump seed for program address")

	// ErrInvalidSeeds is returned when seeds exceed the platform's count or length limits.
	ErrInvalidSeeds = errors.New("invalid program address seeds")

	// ErrMalformedAccount is returned when account data is shorter than its layout requires.
	ErrMalformedAccount = errors.New("malformed account data")

	// ErrInvalidDiscriminator is returned when account data does not carry the expected discriminator.
	ErrInvalidDiscriminator = errors.New("invalid account discriminator")

	// ErrAccountNotFound is returned when the ledger has no account at the requested address.
	ErrAccountNotFound = errors.New("account not found")

	// ErrRewardOverflow is returned when accrued rewards do not fit in a uint64.
	ErrRewardOverflow = errors.New("reward accrual overflows uint64")

	// ErrInvalidAmount is returned when a native-unit amount cannot be converted to lamports.
	ErrInvalidAmount = errors.New("invalid amount")
)
