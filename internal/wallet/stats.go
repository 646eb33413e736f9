package wallet

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
)

// recentSignatureLimit caps how much transaction history a stats query pulls.
const recentSignatureLimit = 10

// Stats is a point-in-time snapshot of the wallet's on-chain state.
type Stats struct {
	Address            string  `json:"address"`
	Balance            float64 `json:"balance"`
	RecentTransactions int     `json:"recent_transactions"`
	Network            string  `json:"network"`
}

// StatsClient queries wallet state over Solana JSON-RPC.
type StatsClient struct {
	rpc     *rpc.Client
	network string
}

// NewStatsClient creates a stats client for the given RPC endpoint. The
// network label is echoed back in every snapshot so callers can tell
// mainnet responses from devnet ones.
func NewStatsClient(endpoint, network string) *StatsClient {
	return &StatsClient{rpc: rpc.New(endpoint), network: network}
}

// Stats fetches the current balance and recent transaction count. On error
// it returns a zeroed snapshot (address and network still filled in) so the
// caller can surface the failure inline instead of dropping the response.
func (c *StatsClient) Stats(ctx context.Context, address solana.PublicKey) (Stats, error) {
	zero := Stats{Address: address.String(), Network: c.network}

	balance, err := c.rpc.GetBalance(ctx, address, rpc.CommitmentFinalized)
	if err != nil {
		metrics.RecordUpstream("wallet", false)
		return zero, err
	}

	limit := recentSignatureLimit
	sigs, err := c.rpc.GetSignaturesForAddressWithOpts(ctx, address, &rpc.GetSignaturesForAddressOpts{
		Limit: &limit,
	})
	if err != nil {
		metrics.RecordUpstream("wallet", false)
		return zero, err
	}

	metrics.RecordUpstream("wallet", true)
	return Stats{
		Address:            address.String(),
		Balance:            float64(balance.Value) / float64(solana.LAMPORTS_PER_SOL),
		RecentTransactions: len(sigs),
		Network:            c.network,
	}, nil
}
