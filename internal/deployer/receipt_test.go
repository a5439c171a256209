package deployer_test

import (
	"ayurdeploy/internal/deployer"
	"ayurdeploy/pkg/serrors"
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

// fakeChain answers the deployer with canned values. The first pendingPolls
// receipt lookups fail with pendingErr (ethereum.NotFound when nil), later
// ones return receipt or receiptErr.
type fakeChain struct {
	chainID      int64
	chainIDErr   error
	receipt      *types.Receipt
	receiptErr   error
	pendingPolls int32
	pendingErr   error
	polls        atomic.Int32
	sent         []*types.Transaction
}

func (f *fakeChain) ChainID(context.Context) (*big.Int, error) {
	return big.NewInt(f.chainID), f.chainIDErr
}

func (f *fakeChain) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	return big.NewInt(0), nil
}

func (f *fakeChain) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, nil
}

func (f *fakeChain) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return 7, nil
}

func (f *fakeChain) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(20_000_000_000), nil
}

func (f *fakeChain) EstimateGas(context.Context, ethereum.CallMsg) (uint64, error) {
	return 100_000, nil
}

func (f *fakeChain) SendTransaction(_ context.Context, tx *types.Transaction) error {
	f.sent = append(f.sent, tx)

	return nil
}

func (f *fakeChain) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	if n := f.polls.Add(1); n <= f.pendingPolls {
		if f.pendingErr != nil {
			return nil, f.pendingErr
		}

		return nil, ethereum.NotFound
	}
	if f.receiptErr != nil {
		return nil, f.receiptErr
	}

	return f.receipt, nil
}

func fakeDeployer(t *testing.T, chain *fakeChain, timeout time.Duration) *deployer.Deployer {
	t.Helper()

	acc := newAccount(t)
	d, err := deployer.New(context.Background(), chain, deployer.Options{
		AccountAddress: acc.address.Hex(),
		PrivateKey:     acc.keyHex(),
		GasMultiplier:  1.2,
		ReceiptTimeout: timeout,
	})
	require.NoError(t, err)

	return d
}

func TestDeployer_Submit_transaction(t *testing.T) {
	chain := &fakeChain{chainID: 5777}
	d := fakeDeployer(t, chain, time.Second)

	tx, _, err := d.Submit(context.Background(), herbs(returns42))
	require.NoError(t, err)
	require.Len(t, chain.sent, 1)
	require.Equal(t, uint8(types.LegacyTxType), tx.Type())
	require.Nil(t, tx.To(), "contract creation has no recipient")
	require.Equal(t, uint64(7), tx.Nonce())
	require.Equal(t, uint64(120_000), tx.Gas())
	require.Equal(t, big.NewInt(5777), tx.ChainId())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(5777)), tx)
	require.NoError(t, err)
	require.Equal(t, d.From(), sender)
}

func TestDeployer_WaitReceipt(t *testing.T) {
	tx := types.NewTx(&types.LegacyTx{Nonce: 1, Gas: 21_000, GasPrice: big.NewInt(1)})

	t.Run("pending then mined", func(t *testing.T) {
		chain := &fakeChain{
			chainID:      1337,
			pendingPolls: 1,
			receipt:      &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(4)},
		}
		d := fakeDeployer(t, chain, 5*time.Second)

		receipt, err := d.WaitReceipt(context.Background(), tx)
		require.NoError(t, err)
		require.Equal(t, int64(4), receipt.BlockNumber.Int64())
		require.Equal(t, int32(2), chain.polls.Load())
	})

	t.Run("lookup error while indexing then mined", func(t *testing.T) {
		chain := &fakeChain{
			chainID:      1337,
			pendingPolls: 1,
			pendingErr:   errors.New("transaction indexing is in progress"),
			receipt:      &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(9)},
		}
		d := fakeDeployer(t, chain, 5*time.Second)

		receipt, err := d.WaitReceipt(context.Background(), tx)
		require.NoError(t, err)
		require.Equal(t, int64(9), receipt.BlockNumber.Int64())
		require.Equal(t, int32(2), chain.polls.Load())
	})

	t.Run("reverted", func(t *testing.T) {
		chain := &fakeChain{
			chainID: 1337,
			receipt: &types.Receipt{Status: types.ReceiptStatusFailed, BlockNumber: big.NewInt(4)},
		}
		d := fakeDeployer(t, chain, time.Second)

		_, err := d.WaitReceipt(context.Background(), tx)
		require.ErrorIs(t, err, serrors.ErrReverted)
	})

	t.Run("timeout", func(t *testing.T) {
		chain := &fakeChain{chainID: 1337, pendingPolls: 1 << 30}
		d := fakeDeployer(t, chain, 50*time.Millisecond)

		_, err := d.WaitReceipt(context.Background(), tx)
		require.ErrorIs(t, err, serrors.ErrTimeout)
	})

	t.Run("persistent lookup failure times out with the cause", func(t *testing.T) {
		chain := &fakeChain{chainID: 1337, receiptErr: errors.New("connection reset")}
		d := fakeDeployer(t, chain, 50*time.Millisecond)

		_, err := d.WaitReceipt(context.Background(), tx)
		require.ErrorIs(t, err, serrors.ErrTimeout)
		require.ErrorContains(t, err, "connection reset")
	})
}

func TestNew_unreachable(t *testing.T) {
	acc := newAccount(t)

	_, err := deployer.New(context.Background(), &fakeChain{chainIDErr: errors.New("dial tcp: connection refused")},
		deployer.Options{AccountAddress: acc.address.Hex(), PrivateKey: acc.keyHex()})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestDial_unreachable(t *testing.T) {
	_, err := deployer.Dial(context.Background(), "http://127.0.0.1:1", time.Second)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}
