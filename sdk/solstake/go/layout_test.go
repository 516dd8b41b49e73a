package solstake_test

import (
	"testing"

	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/stretchr/testify/require"
)

func TestSDK_Solstake_Layout_PoolOffsets(t *testing.T) {
	t.Parallel()

	require.Equal(t, 145, solstake.PoolLayout.Size)
	want := []struct {
		name   string
		offset int
		width  int
		typ    solstake.FieldType
	}{
		{"authority", 8, 32, solstake.FieldPubkey},
		{"stake_mint", 40, 32, solstake.FieldPubkey},
		{"reward_mint", 72, 32, solstake.FieldPubkey},
		{"reward_rate", 104, 8, solstake.FieldU64},
		{"lock_period", 112, 8, solstake.FieldI64},
		{"total_staked", 120, 8, solstake.FieldU64},
		{"total_rewards_distributed", 128, 8, solstake.FieldU64},
		{"last_update_time", 136, 8, solstake.FieldI64},
		{"bump", 144, 1, solstake.FieldU8},
	}
	require.Len(t, solstake.PoolLayout.Fields, len(want))
	for i, w := range want {
		f := solstake.PoolLayout.Fields[i]
		require.Equal(t, w.name, f.Name)
		require.Equal(t, w.offset, f.Offset, w.name)
		require.Equal(t, w.width, f.Width, w.name)
		require.Equal(t, w.typ, f.Type, w.name)
	}
}

func TestSDK_Solstake_Layout_StakeInfoOffsets(t *testing.T) {
	t.Parallel()

	require.Equal(t, 105, solstake.StakeInfoLayout.Size)
	for name, offset := range map[string]int{
		"user":            8,
		"pool":            40,
		"amount":          72,
		"stake_time":      80,
		"last_claim_time": 88,
		"pending_rewards": 96,
		"bump":            104,
	} {
		f, ok := solstake.StakeInfoLayout.Field(name)
		require.True(t, ok, name)
		require.Equal(t, offset, f.Offset, name)
	}

	_, ok := solstake.StakeInfoLayout.Field("reward_rate")
	require.False(t, ok)
}

func TestSDK_Solstake_FieldType_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pubkey", solstake.FieldPubkey.String())
	require.Equal(t, "i64", solstake.FieldI64.String())
	require.Equal(t, "FieldType(9)", solstake.FieldType(9).String())
	require.Equal(t, 0, solstake.FieldType(9).Width())
}
