package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"github.com/spf13/cobra"
)

type PDACmd struct{}

func NewPDACmd() *PDACmd {
	return &PDACmd{}
}

func (c *PDACmd) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pda",
		Short: "Derive program addresses",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "pool <stake-mint>",
			Short: "Derive the pool address for a stake mint",
			Args:  cobra.ExactArgs(1),
			RunE: withSession(func(s *session, cmd *cobra.Command, args []string) error {
				stakeMint, err := parsePublicKey("stake mint", args[0])
				if err != nil {
					return err
				}
				addr, bump, err := solstake.NewDeriver(s.programID).PoolAddress(stakeMint)
				if err != nil {
					return fmt.Errorf("failed to derive pool address: %w", err)
				}
				return renderAddress(cmd, s, addressView{Address: addr.String(), Bump: bump})
			}),
		},
		&cobra.Command{
			Use:   "stake <pool> <user>",
			Short: "Derive the stake info address for a user in a pool",
			Args:  cobra.ExactArgs(2),
			RunE: withSession(func(s *session, cmd *cobra.Command, args []string) error {
				pool, err := parsePublicKey("pool", args[0])
				if err != nil {
					return err
				}
				user, err := parsePublicKey("user", args[1])
				if err != nil {
					return err
				}
				addr, bump, err := solstake.NewDeriver(s.programID).StakeInfoAddress(pool, user)
				if err != nil {
					return fmt.Errorf("failed to derive stake info address: %w", err)
				}
				return renderAddress(cmd, s, addressView{Address: addr.String(), Bump: bump})
			}),
		},
	)
	return cmd
}

func renderAddress(cmd *cobra.Command, s *session, v addressView) error {
	return render(cmd.OutOrStdout(), s.output, v, func(t *tablewriter.Table) {
		t.SetHeader([]string{"Address", "Bump"})
		t.Append([]string{v.Address, fmt.Sprintf("%d", v.Bump)})
	})
}
