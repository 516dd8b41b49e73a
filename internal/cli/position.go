package cli

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/spf13/cobra"
)

type PositionCmd struct {
	newRPC rpcFactory
}

func NewPositionCmd(newRPC rpcFactory) *PositionCmd {
	return &PositionCmd{newRPC: newRPC}
}

func (c *PositionCmd) Command() *cobra.Command {
	return &cobra.Command{
		Use:   "position <stake-mint> <user>",
		Short: "Show a user's stake, pending rewards and remaining lock in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: withClient(c.newRPC, func(ctx context.Context, s *session, client *solstake.Client, cmd *cobra.Command, args []string) error {
			stakeMint, err := parsePublicKey("stake mint", args[0])
			if err != nil {
				return err
			}
			user, err := parsePublicKey("user", args[1])
			if err != nil {
				return err
			}

			pos, err := client.FetchPosition(ctx, stakeMint, user)
			if err != nil {
				return fmt.Errorf("failed to fetch position: %w", err)
			}

			view := positionView{
				Pool: newPoolView(solstake.PoolAccount{Address: pos.PoolAddress, Pool: pos.Pool}),
			}
			if pos.StakeInfo != nil {
				info := pos.StakeInfo
				view.StakeInfo = &stakeInfoView{
					Address:        pos.StakeInfoAddress.String(),
					User:           info.User.String(),
					Pool:           info.Pool.String(),
					Amount:         info.Amount,
					StakeTime:      info.StakeTime,
					LastClaimTime:  info.LastClaimTime,
					PendingRewards: info.PendingRewards,
					Bump:           info.Bump,
				}
				view.PendingRewards, err = client.PendingRewardsNow(info, pos.Pool)
				if err != nil {
					return fmt.Errorf("failed to compute pending rewards: %w", err)
				}
				view.LockRemaining = client.LockRemainingNow(info, pos.Pool)
			}

			return render(cmd.OutOrStdout(), s.output, view, func(t *tablewriter.Table) {
				t.SetHeader([]string{"Field", "Value"})
				t.Append([]string{"Pool", view.Pool.Address})
				t.Append([]string{"APY", fmt.Sprintf("%.4f%%", view.Pool.APY)})
				if view.StakeInfo == nil {
					t.Append([]string{"Stake Info", "none (" + pos.StakeInfoAddress.String() + " not found)"})
					return
				}
				t.AppendBulk([][]string{
					{"Stake Info", view.StakeInfo.Address},
					{"Amount", solstake.FormatNativeUnits(view.StakeInfo.Amount)},
					{"Staked At", formatUnix(view.StakeInfo.StakeTime)},
					{"Last Claim", formatUnix(view.StakeInfo.LastClaimTime)},
					{"Pending Rewards", solstake.FormatNativeUnits(view.PendingRewards)},
					{"Lock Remaining", solstake.FormatDuration(view.LockRemaining)},
				})
			})
		}),
	}
}
