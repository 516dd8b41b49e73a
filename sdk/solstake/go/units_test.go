package solstake_test

import (
	"math"
	"testing"

	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/stretchr/testify/require"
)

func TestSDK_Solstake_ToNativeUnits(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, solstake.ToNativeUnits(1_000_000_000))
	require.Equal(t, 1.5, solstake.ToNativeUnits(1_500_000_000))
	require.Equal(t, 0.0, solstake.ToNativeUnits(0))
}

func TestSDK_Solstake_ToSmallestUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		native float64
		want   uint64
	}{
		{1.5, 1_500_000_000},
		{0.0000000004, 0},
		{0.29, 290_000_000},
		{1, 1_000_000_000},
		{0, 0},
		{0.0000000019, 1},
	}
	for _, tt := range tests {
		got, err := solstake.ToSmallestUnits(tt.native)
		require.NoError(t, err, "%v", tt.native)
		require.Equal(t, tt.want, got, "%v", tt.native)
	}
}

func TestSDK_Solstake_ToSmallestUnits_Invalid(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, -0.000000001, math.NaN(), math.Inf(1), math.Inf(-1), 1e20} {
		_, err := solstake.ToSmallestUnits(v)
		require.ErrorIs(t, err, solstake.ErrInvalidAmount, "%v", v)
	}
}

func TestSDK_Solstake_ParseNativeUnits(t *testing.T) {
	t.Parallel()

	got, err := solstake.ParseNativeUnits("1.5")
	require.NoError(t, err)
	require.Equal(t, uint64(1_500_000_000), got)

	got, err = solstake.ParseNativeUnits("1.0000000019")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000_001), got)

	got, err = solstake.ParseNativeUnits("18446744073.709551615")
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), got)

	for _, s := range []string{"", "abc", "-0.5", "18446744073.709551616"} {
		_, err := solstake.ParseNativeUnits(s)
		require.ErrorIs(t, err, solstake.ErrInvalidAmount, "%q", s)
	}
}

func TestSDK_Solstake_FormatNativeUnits(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.500000000", solstake.FormatNativeUnits(1_500_000_000))
	require.Equal(t, "0.000000000", solstake.FormatNativeUnits(0))
	require.Equal(t, "0.000000001", solstake.FormatNativeUnits(1))
	require.Equal(t, "18446744073.709551615", solstake.FormatNativeUnits(math.MaxUint64))
}

func TestSDK_Solstake_FormatDuration(t *testing.T) {
	t.Parallel()

	tests := map[int64]string{
		0:      "0s",
		45:     "45s",
		59:     "59s",
		60:     "1m",
		3599:   "59m",
		3600:   "1h",
		7200:   "2h",
		86399:  "23h",
		86400:  "1d",
		172800: "2d",
	}
	for seconds, want := range tests {
		require.Equal(t, want, solstake.FormatDuration(seconds), "%d", seconds)
	}
}
