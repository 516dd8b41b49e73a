package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	solstake "github.com/portfoliofull/solstake/sdk/solstake/go"
)

// retryingRPC retries transient RPC failures with exponential backoff. Absent
// accounts and cancelled contexts are not retried.
type retryingRPC struct {
	log        *slog.Logger
	next       solstake.RPCClient
	maxTries   uint
	newBackOff func() backoff.BackOff
}

func newRetryingRPC(log *slog.Logger, next solstake.RPCClient, maxTries uint) *retryingRPC {
	return &retryingRPC{
		log:      log,
		next:     next,
		maxTries: maxTries,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

func (r *retryingRPC) GetAccountInfo(ctx context.Context, account solana.PublicKey) (*solanarpc.GetAccountInfoResult, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (*solanarpc.GetAccountInfoResult, error) {
		if attempt > 0 {
			r.log.Warn("Failed to get account info, retrying", "account", account, "attempt", attempt)
		}
		attempt++
		res, err := r.next.GetAccountInfo(ctx, account)
		if err != nil {
			return nil, classify(err)
		}
		return res, nil
	}, r.options()...)
}

func (r *retryingRPC) GetProgramAccountsWithOpts(ctx context.Context, programID solana.PublicKey, opts *solanarpc.GetProgramAccountsOpts) (solanarpc.GetProgramAccountsResult, error) {
	attempt := 0
	return backoff.Retry(ctx, func() (solanarpc.GetProgramAccountsResult, error) {
		if attempt > 0 {
			r.log.Warn("Failed to get program accounts, retrying", "program", programID, "attempt", attempt)
		}
		attempt++
		res, err := r.next.GetProgramAccountsWithOpts(ctx, programID, opts)
		if err != nil {
			return nil, classify(err)
		}
		return res, nil
	}, r.options()...)
}

func (r *retryingRPC) options() []backoff.RetryOption {
	return []backoff.RetryOption{
		backoff.WithBackOff(r.newBackOff()),
		backoff.WithMaxTries(r.maxTries),
	}
}

func classify(err error) error {
	if errors.Is(err, solanarpc.ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return backoff.Permanent(err)
	}
	return err
}
