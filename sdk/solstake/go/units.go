package solstake

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const nativeDecimals = 9

var maxLamports = lamportsDecimal(math.MaxUint64)

// ToNativeUnits converts lamports to native units. Precision is that of float64.
func ToNativeUnits(lamports uint64) float64 {
	return float64(lamports) / LamportsPerSOL
}

// ToSmallestUnits converts native units to lamports, flooring fractions of a
// lamport. The conversion starts from the shortest decimal form of the float,
// so 0.29 yields 290000000 rather than 289999999.
func ToSmallestUnits(native float64) (uint64, error) {
	if math.IsNaN(native) || math.IsInf(native, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidAmount, native)
	}
	return toLamports(decimal.NewFromFloat(native))
}

// ParseNativeUnits parses a decimal string in native units, such as "1.5",
// into lamports. Digits past the ninth decimal are floored.
func ParseNativeUnits(s string) (uint64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, s, err)
	}
	return toLamports(d)
}

// FormatNativeUnits renders lamports in native units with all nine decimals.
func FormatNativeUnits(lamports uint64) string {
	return lamportsDecimal(lamports).Shift(-nativeDecimals).StringFixed(nativeDecimals)
}

func toLamports(native decimal.Decimal) (uint64, error) {
	if native.IsNegative() {
		return 0, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, native)
	}
	lamports := native.Shift(nativeDecimals).Floor()
	if lamports.GreaterThan(maxLamports) {
		return 0, fmt.Errorf("%w: %s exceeds max lamports", ErrInvalidAmount, native)
	}
	return lamports.BigInt().Uint64(), nil
}

func lamportsDecimal(lamports uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), 0)
}

// FormatDuration renders seconds in the largest whole unit below the next
// threshold: 59 is "59s", 60 is "1m", 3600 is "1h", 86400 is "1d".
func FormatDuration(seconds int64) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh", seconds/3600)
	default:
		return fmt.Sprintf("%dd", seconds/86400)
	}
}
