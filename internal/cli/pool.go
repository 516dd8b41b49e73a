package cli

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/olekukonko/tablewriter"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/spf13/cobra"
)

type PoolCmd struct {
	newRPC rpcFactory
}

func NewPoolCmd(newRPC rpcFactory) *PoolCmd {
	return &PoolCmd{newRPC: newRPC}
}

func (c *PoolCmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [stake-mint]",
		Short: "Show a pool by stake mint or by --address",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.Flags().String("address", "", "pool account address, instead of deriving it from the stake mint")

	cmd.RunE = withClient(c.newRPC, func(ctx context.Context, s *session, client *solstake.Client, cmd *cobra.Command, args []string) error {
		address, err := cmd.Flags().GetString("address")
		if err != nil {
			return fmt.Errorf("failed to get address flag: %w", err)
		}

		var acct *solstake.PoolAccount
		switch {
		case address != "" && len(args) > 0:
			return fmt.Errorf("specify only one of: stake mint or --address")
		case address != "":
			pk, err := parsePublicKey("pool address", address)
			if err != nil {
				return err
			}
			pool, err := client.FetchPool(ctx, pk)
			if err != nil {
				return fmt.Errorf("failed to fetch pool %s: %w", pk, err)
			}
			acct = &solstake.PoolAccount{Address: pk, Pool: pool}
		case len(args) == 1:
			stakeMint, err := parsePublicKey("stake mint", args[0])
			if err != nil {
				return err
			}
			acct, err = client.FetchPoolForMint(ctx, stakeMint)
			if err != nil {
				return fmt.Errorf("failed to fetch pool for mint %s: %w", stakeMint, err)
			}
		default:
			return fmt.Errorf("a stake mint or --address is required")
		}

		view := newPoolView(*acct)
		return render(cmd.OutOrStdout(), s.output, view, func(t *tablewriter.Table) {
			t.SetHeader([]string{"Field", "Value"})
			t.AppendBulk(poolRows(view))
		})
	})
	return cmd
}

func poolRows(v poolView) [][]string {
	return [][]string{
		{"Address", v.Address},
		{"Authority", v.Authority},
		{"Stake Mint", v.StakeMint},
		{"Reward Mint", v.RewardMint},
		{"Reward Rate", fmt.Sprintf("%d", v.RewardRate)},
		{"Lock Period", solstake.FormatDuration(v.LockPeriod)},
		{"Total Staked", solstake.FormatNativeUnits(v.TotalStaked)},
		{"Total Rewards Distributed", solstake.FormatNativeUnits(v.TotalRewardsDistributed)},
		{"Last Update", formatUnix(v.LastUpdateTime)},
		{"Bump", fmt.Sprintf("%d", v.Bump)},
		{"APY", fmt.Sprintf("%.4f%%", v.APY)},
	}
}

func formatUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

type PoolsCmd struct {
	newRPC rpcFactory
}

func NewPoolsCmd(newRPC rpcFactory) *PoolsCmd {
	return &PoolsCmd{newRPC: newRPC}
}

func (c *PoolsCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "pools",
		Short: "List all pools owned by the program",
		Args:  cobra.NoArgs,
		RunE: withClient(c.newRPC, func(ctx context.Context, s *session, client *solstake.Client, cmd *cobra.Command, args []string) error {
			pools, err := client.FetchAllPools(ctx)
			if err != nil {
				return fmt.Errorf("failed to fetch pools: %w", err)
			}
			sort.Slice(pools, func(i, j int) bool {
				return bytes.Compare(pools[i].Address[:], pools[j].Address[:]) < 0
			})

			views := make([]poolView, 0, len(pools))
			for _, p := range pools {
				views = append(views, newPoolView(p))
			}
			return render(cmd.OutOrStdout(), s.output, views, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Address", "Stake Mint", "Reward Mint", "Total Staked", "Lock Period", "APY"})
				for _, v := range views {
					t.Append([]string{
						v.Address,
						v.StakeMint,
						v.RewardMint,
						solstake.FormatNativeUnits(v.TotalStaked),
						solstake.FormatDuration(v.LockPeriod),
						fmt.Sprintf("%.4f%%", v.APY),
					})
				}
			})
		}),
	}
}
