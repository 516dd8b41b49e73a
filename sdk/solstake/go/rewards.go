package solstake

import (
	"fmt"

	"github.com/holiman/uint256"
)

var rewardRateDenominator = uint256.NewInt(RewardRateDenominator)

// PendingRewards returns the rewards claimable at unix time now:
//
//	pending + amount * rewardRate * (now - lastClaimTime) / 1e9
//
// The product is computed in 256 bits and divided with truncation. A clock
// behind LastClaimTime accrues nothing.
func PendingRewards(stakeInfo *StakeInfo, pool *Pool, now int64) (uint64, error) {
	elapsed := now - stakeInfo.LastClaimTime
	if elapsed <= 0 || stakeInfo.Amount == 0 || pool.RewardRate == 0 {
		return stakeInfo.PendingRewards, nil
	}

	accrued := new(uint256.Int).Mul(uint256.NewInt(stakeInfo.Amount), uint256.NewInt(pool.RewardRate))
	accrued.Mul(accrued, uint256.NewInt(uint64(elapsed)))
	accrued.Div(accrued, rewardRateDenominator)
	accrued.Add(accrued, uint256.NewInt(stakeInfo.PendingRewards))

	if !accrued.IsUint64() {
		return 0, fmt.Errorf("%w: %s", ErrRewardOverflow, accrued.ToBig())
	}
	return accrued.Uint64(), nil
}

// APY is the annual reward yield of the pool as a percentage, for display.
// A pool with nothing staked reports 0.
func APY(pool *Pool) float64 {
	if pool.TotalStaked == 0 {
		return 0
	}
	rewardPerYear := float64(pool.RewardRate) * SecondsPerYear / RewardRateDenominator
	return rewardPerYear / float64(pool.TotalStaked) * 100
}

// LockRemaining returns the seconds until the stake may be withdrawn, or 0
// once stakeTime + lockPeriod has passed.
func LockRemaining(stakeInfo *StakeInfo, pool *Pool, now int64) int64 {
	remaining := stakeInfo.StakeTime + pool.LockPeriod - now
	if remaining < 0 {
		return 0
	}
	return remaining
}
