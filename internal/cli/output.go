package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output format %q, must be one of: %s, %s, %s", format, outputTable, outputJSON, outputYAML)
	}
}

// render writes v as JSON or YAML, or calls table for the table format.
func render(w io.Writer, format string, v any, table func(t *tablewriter.Table)) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		t := newTable(w)
		table(t)
		t.Render()
		return nil
	}
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	return table
}

type poolView struct {
	Address                 string  `json:"address" yaml:"address"`
	Authority               string  `json:"authority" yaml:"authority"`
	StakeMint               string  `json:"stake_mint" yaml:"stake_mint"`
	RewardMint              string  `json:"reward_mint" yaml:"reward_mint"`
	RewardRate              uint64  `json:"reward_rate" yaml:"reward_rate"`
	LockPeriod              int64   `json:"lock_period" yaml:"lock_period"`
	TotalStaked             uint64  `json:"total_staked" yaml:"total_staked"`
	TotalRewardsDistributed uint64  `json:"total_rewards_distributed" yaml:"total_rewards_distributed"`
	LastUpdateTime          int64   `json:"last_update_time" yaml:"last_update_time"`
	Bump                    uint8   `json:"bump" yaml:"bump"`
	APY                     float64 `json:"apy" yaml:"apy"`
}

func newPoolView(acct solstake.PoolAccount) poolView {
	p := acct.Pool
	return poolView{
		Address:                 acct.Address.String(),
		Authority:               p.Authority.String(),
		StakeMint:               p.StakeMint.String(),
		RewardMint:              p.RewardMint.String(),
		RewardRate:              p.RewardRate,
		LockPeriod:              p.LockPeriod,
		TotalStaked:             p.TotalStaked,
		TotalRewardsDistributed: p.TotalRewardsDistributed,
		LastUpdateTime:          p.LastUpdateTime,
		Bump:                    p.Bump,
		APY:                     solstake.APY(p),
	}
}

type stakeInfoView struct {
	Address        string `json:"address" yaml:"address"`
	User           string `json:"user" yaml:"user"`
	Pool           string `json:"pool" yaml:"pool"`
	Amount         uint64 `json:"amount" yaml:"amount"`
	StakeTime      int64  `json:"stake_time" yaml:"stake_time"`
	LastClaimTime  int64  `json:"last_claim_time" yaml:"last_claim_time"`
	PendingRewards uint64 `json:"pending_rewards" yaml:"pending_rewards"`
	Bump           uint8  `json:"bump" yaml:"bump"`
}

type positionView struct {
	Pool           poolView       `json:"pool" yaml:"pool"`
	StakeInfo      *stakeInfoView `json:"stake_info" yaml:"stake_info"`
	PendingRewards uint64         `json:"pending_rewards_now" yaml:"pending_rewards_now"`
	LockRemaining  int64          `json:"lock_remaining" yaml:"lock_remaining"`
}

type accountMetaView struct {
	PublicKey  string `json:"pubkey" yaml:"pubkey"`
	IsSigner   bool   `json:"is_signer" yaml:"is_signer"`
	IsWritable bool   `json:"is_writable" yaml:"is_writable"`
}

type instructionView struct {
	ProgramID string            `json:"program_id" yaml:"program_id"`
	Accounts  []accountMetaView `json:"accounts" yaml:"accounts"`
	Encoding  string            `json:"encoding" yaml:"encoding"`
	Data      string            `json:"data" yaml:"data"`
}

type addressView struct {
	Address string `json:"address" yaml:"address"`
	Bump    uint8  `json:"bump" yaml:"bump"`
}
