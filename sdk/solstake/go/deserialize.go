package solstake

// DecodePool decodes pool account data. The discriminator is skipped, not
// checked, and trailing bytes beyond the layout are ignored.
func DecodePool(data []byte) (*Pool, error) {
	v, err := PoolLayout.view(data)
	if err != nil {
		return nil, err
	}
	return &Pool{
		Authority:               v.pubkey("authority"),
		StakeMint:               v.pubkey("stake_mint"),
		RewardMint:              v.pubkey("reward_mint"),
		RewardRate:              v.u64("reward_rate"),
		LockPeriod:              v.i64("lock_period"),
		TotalStaked:             v.u64("total_staked"),
		TotalRewardsDistributed: v.u64("total_rewards_distributed"),
		LastUpdateTime:          v.i64("last_update_time"),
		Bump:                    v.u8("bump"),
	}, nil
}

// DecodeStakeInfo decodes stake-info account data. The discriminator is
// skipped, not checked, and trailing bytes beyond the layout are ignored.
func DecodeStakeInfo(data []byte) (*StakeInfo, error) {
	v, err := StakeInfoLayout.view(data)
	if err != nil {
		return nil, err
	}
	return &StakeInfo{
		User:           v.pubkey("user"),
		Pool:           v.pubkey("pool"),
		Amount:         v.u64("amount"),
		StakeTime:      v.i64("stake_time"),
		LastClaimTime:  v.i64("last_claim_time"),
		PendingRewards: v.u64("pending_rewards"),
		Bump:           v.u8("bump"),
	}, nil
}
