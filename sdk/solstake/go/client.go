package solstake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Client reads staking program accounts over RPC. It never signs or submits
// transactions.
type Client struct {
	log     *slog.Logger
	rpc     RPCClient
	deriver *Deriver
	clock   clockwork.Clock
}

type ClientOption func(*Client)

// WithClock sets the clock used for reward accrual. Defaults to the real clock.
func WithClock(clock clockwork.Clock) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

func New(log *slog.Logger, rpc RPCClient, programID solana.PublicKey, opts ...ClientOption) *Client {
	c := &Client{
		log:     log,
		rpc:     rpc,
		deriver: NewDeriver(programID),
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ProgramID() solana.PublicKey {
	return c.deriver.ProgramID()
}

func (c *Client) Deriver() *Deriver {
	return c.deriver
}

// PoolAccount is a pool snapshot together with its address.
type PoolAccount struct {
	Address solana.PublicKey
	Pool    *Pool
}

// Position is a user's stake in one pool. StakeInfo is nil when the user has
// never staked there.
type Position struct {
	PoolAddress      solana.PublicKey
	Pool             *Pool
	StakeInfoAddress solana.PublicKey
	StakeInfo        *StakeInfo
}

// FetchPool fetches and decodes the pool account at address.
func (c *Client) FetchPool(ctx context.Context, address solana.PublicKey) (*Pool, error) {
	data, err := c.fetchAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	pool, err := DecodePool(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize pool: %w", err)
	}
	return pool, nil
}

// FetchPoolForMint derives the pool PDA for stakeMint and fetches it.
func (c *Client) FetchPoolForMint(ctx context.Context, stakeMint solana.PublicKey) (*PoolAccount, error) {
	pda, _, err := c.deriver.PoolAddress(stakeMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	pool, err := c.FetchPool(ctx, pda)
	if err != nil {
		return nil, err
	}
	return &PoolAccount{Address: pda, Pool: pool}, nil
}

// FetchStakeInfo fetches and decodes the stake-info account at address.
func (c *Client) FetchStakeInfo(ctx context.Context, address solana.PublicKey) (*StakeInfo, error) {
	data, err := c.fetchAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	info, err := DecodeStakeInfo(data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize stake info: %w", err)
	}
	return info, nil
}

// FetchStakeInfoFor derives the stake-info PDA for (pool, user) and fetches it.
func (c *Client) FetchStakeInfoFor(ctx context.Context, pool, user solana.PublicKey) (*StakeInfo, error) {
	pda, _, err := c.deriver.StakeInfoAddress(pool, user)
	if err != nil {
		return nil, fmt.Errorf("failed to derive stake info PDA: %w", err)
	}
	return c.FetchStakeInfo(ctx, pda)
}

// FetchPosition fetches the pool for stakeMint and the user's stake info in it
// concurrently. A missing pool is an error; a missing stake info is not.
func (c *Client) FetchPosition(ctx context.Context, stakeMint, user solana.PublicKey) (*Position, error) {
	poolPDA, _, err := c.deriver.PoolAddress(stakeMint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive pool PDA: %w", err)
	}
	stakePDA, _, err := c.deriver.StakeInfoAddress(poolPDA, user)
	if err != nil {
		return nil, fmt.Errorf("failed to derive stake info PDA: %w", err)
	}

	pos := &Position{PoolAddress: poolPDA, StakeInfoAddress: stakePDA}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pool, err := c.FetchPool(ctx, poolPDA)
		if err != nil {
			return fmt.Errorf("failed to fetch pool %s: %w", poolPDA, err)
		}
		pos.Pool = pool
		return nil
	})
	g.Go(func() error {
		info, err := c.FetchStakeInfo(ctx, stakePDA)
		if errors.Is(err, ErrAccountNotFound) {
			c.log.Debug("no stake info for user", "pool", poolPDA, "user", user)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch stake info %s: %w", stakePDA, err)
		}
		pos.StakeInfo = info
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pos, nil
}

// FetchAllPools lists every pool account owned by the program. Accounts that
// fail to decode are logged and skipped.
func (c *Client) FetchAllPools(ctx context.Context) ([]PoolAccount, error) {
	opts := &solanarpc.GetProgramAccountsOpts{
		Filters: []solanarpc.RPCFilter{
			{
				Memcmp: &solanarpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  solana.Base58(DiscriminatorPool[:]),
				},
			},
		},
	}

	accounts, err := c.rpc.GetProgramAccountsWithOpts(ctx, c.ProgramID(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get program accounts: %w", err)
	}

	pools := make([]PoolAccount, 0, len(accounts))
	for _, acct := range accounts {
		if acct == nil || acct.Account == nil {
			continue
		}
		pool, err := DecodePool(acct.Account.Data.GetBinary())
		if err != nil {
			c.log.Warn("failed to deserialize pool account", "pubkey", acct.Pubkey, "error", err)
			continue
		}
		pools = append(pools, PoolAccount{Address: acct.Pubkey, Pool: pool})
	}
	c.log.Debug("fetched pools", "count", len(pools), "program", c.ProgramID())
	return pools, nil
}

// PendingRewardsNow is PendingRewards evaluated at the client's clock.
func (c *Client) PendingRewardsNow(stakeInfo *StakeInfo, pool *Pool) (uint64, error) {
	return PendingRewards(stakeInfo, pool, c.clock.Now().Unix())
}

// LockRemainingNow is LockRemaining evaluated at the client's clock.
func (c *Client) LockRemainingNow(stakeInfo *StakeInfo, pool *Pool) int64 {
	return LockRemaining(stakeInfo, pool, c.clock.Now().Unix())
}

func (c *Client) fetchAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	c.log.Debug("fetching account", "address", address)
	account, err := c.rpc.GetAccountInfo(ctx, address)
	if err != nil {
		if errors.Is(err, solanarpc.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account data: %w", err)
	}
	if account == nil || account.Value == nil {
		return nil, ErrAccountNotFound
	}
	return account.Value.Data.GetBinary(), nil
}
