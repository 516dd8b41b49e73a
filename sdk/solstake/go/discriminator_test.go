package solstake_test

import (
	"crypto/sha256"
	"testing"

	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/stretchr/testify/require"
)

func TestSDK_Solstake_Discriminators(t *testing.T) {
	t.Parallel()

	pool := sha256.Sum256([]byte("account:Pool"))
	stake := sha256.Sum256([]byte("account:StakeInfo"))
	require.Equal(t, pool[:8], solstake.DiscriminatorPool[:])
	require.Equal(t, stake[:8], solstake.DiscriminatorStakeInfo[:])
	require.NotEqual(t, solstake.DiscriminatorPool, solstake.DiscriminatorStakeInfo)
}

func TestSDK_Solstake_ValidateDiscriminator(t *testing.T) {
	t.Parallel()

	data := append(solstake.DiscriminatorPool[:], make([]byte, 10)...)
	require.NoError(t, solstake.ValidateDiscriminator(data, solstake.DiscriminatorPool))
	require.ErrorIs(t, solstake.ValidateDiscriminator(data, solstake.DiscriminatorStakeInfo), solstake.ErrInvalidDiscriminator)
	require.ErrorIs(t, solstake.ValidateDiscriminator(data[:7], solstake.DiscriminatorPool), solstake.ErrInvalidDiscriminator)
}
