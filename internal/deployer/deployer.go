// Package deployer signs and submits contract creation transactions and waits
// for them to be mined.
package deployer

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/metrics"
	"ayurdeploy/pkg/serrors"
	"bytes"
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

const (
	defaultGasMultiplier = 1.2
	defaultReceiptWait   = 2 * time.Minute
)

// Options configures a Deployer.
type Options struct {
	// AccountAddress is the deployer account.
	AccountAddress string
	// PrivateKey is the hex encoded key of AccountAddress.
	PrivateKey string
	// ExpectedChainID rejects other chains when non-zero.
	ExpectedChainID uint64
	// GasMultiplier scales the gas estimate into the gas limit.
	GasMultiplier float64
	// ReceiptTimeout bounds the wait for a receipt.
	ReceiptTimeout time.Duration
	// Metrics receives step durations and receipt figures. Optional.
	Metrics *metrics.Deploy
}

// Deployer deploys compiled contracts from a single account.
type Deployer struct {
	client  ChainClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	opts    Options
}

// Result describes a mined contract creation.
type Result struct {
	Contract domain.CompiledContract
	Address  common.Address
	TxHash   common.Hash
	Receipt  *types.Receipt
}

// Details returns the deployment_details.json document of the result.
func (r *Result) Details() domain.DeploymentDetails {
	return domain.DeploymentDetails{
		ContractName:    r.Contract.Name,
		ContractAddress: r.Address.Hex(),
		ABI:             r.Contract.ABI,
	}
}

// CheckConfig validates the deployer account settings. The address must be a
// valid hex address and the private key must derive it.
func CheckConfig(accountAddress, privateKey string) (common.Address, *ecdsa.PrivateKey, error) {
	if accountAddress == "" || privateKey == "" {
		return common.Address{}, nil, serrors.With(serrors.ErrConfig, "account address and private key are required")
	}
	if !common.IsHexAddress(accountAddress) {
		return common.Address{}, nil, serrors.With(serrors.ErrConfig, "'%s' is not a valid Ethereum address", accountAddress)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return common.Address{}, nil, serrors.Wrap(serrors.ErrConfig, err, "private key is invalid")
	}

	from := common.HexToAddress(accountAddress)
	if derived := crypto.PubkeyToAddress(key.PublicKey); derived != from {
		return common.Address{}, nil, serrors.With(serrors.ErrConflict,
			"private key belongs to %s, not %s", derived.Hex(), from.Hex())
	}

	return from, key, nil
}

// Dial connects to the node at rpcURL and checks it answers by requesting the
// chain ID. Failures are reported as serrors.ErrUnavailable.
func Dial(ctx context.Context, rpcURL string, timeout time.Duration) (*ethclient.Client, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not connect to %s", rpcURL)
	}
	if _, err := client.ChainID(ctx); err != nil {
		client.Close()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "node at %s is not reachable", rpcURL)
	}

	return client, nil
}

// New validates the account and binds it to the chain the client talks to.
func New(ctx context.Context, client ChainClient, opts Options) (*Deployer, error) {
	from, key, err := CheckConfig(opts.AccountAddress, opts.PrivateKey)
	if err != nil {
		return nil, err
	}

	if opts.GasMultiplier == 0 {
		opts.GasMultiplier = defaultGasMultiplier
	}
	if opts.ReceiptTimeout <= 0 {
		opts.ReceiptTimeout = defaultReceiptWait
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not get chain id")
	}
	if opts.ExpectedChainID != 0 && chainID.Uint64() != opts.ExpectedChainID {
		return nil, serrors.With(serrors.ErrConfig,
			"connected to chain %s, expected %d", chainID, opts.ExpectedChainID)
	}

	logger.Info(ctx, "connected to node", zap.String("chainId", chainID.String()), zap.String("account", from.Hex()))

	return &Deployer{
		client:  client,
		key:     key,
		from:    from,
		chainID: chainID,
		opts:    opts,
	}, nil
}

// From returns the deployer account.
func (d *Deployer) From() common.Address { return d.from }

// ChainID returns the chain ID reported by the node.
func (d *Deployer) ChainID() *big.Int { return new(big.Int).Set(d.chainID) }

// CheckBalance logs the account balance. An empty account only yields a
// warning because the node may not charge for gas.
func (d *Deployer) CheckBalance(ctx context.Context) (*big.Int, error) {
	balance, err := d.client.BalanceAt(ctx, d.from, nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not get balance of %s", d.from.Hex())
	}

	if balance.Sign() == 0 {
		logger.Warn(ctx, "deployer account has no funds", zap.String("account", d.from.Hex()))
	} else {
		logger.Info(ctx, "deployer balance", zap.String("eth", WeiToETH(balance)))
	}

	return balance, nil
}

// Submit signs and sends the creation transaction of contract and returns it
// together with the address the contract will be created at.
func (d *Deployer) Submit(ctx context.Context, contract domain.CompiledContract) (*types.Transaction, common.Address, error) {
	code, err := creationCode(contract)
	if err != nil {
		return nil, common.Address{}, err
	}

	ctx = logger.WithFields(ctx, zap.String("contract", contract.Name))

	nonce, err := d.client.PendingNonceAt(ctx, d.from)
	if err != nil {
		return nil, common.Address{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not get nonce")
	}

	gasPrice, err := d.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, common.Address{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not get gas price")
	}

	estimate, err := d.client.EstimateGas(ctx, ethereum.CallMsg{
		From:     d.from,
		GasPrice: gasPrice,
		Value:    big.NewInt(0),
		Data:     code,
	})
	if err != nil {
		return nil, common.Address{}, serrors.Wrap(serrors.ErrGasEstimation, err,
			"could not estimate gas for %s, the constructor probably reverts", contract.Name)
	}
	gasLimit := GasLimit(estimate, d.opts.GasMultiplier)

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gasLimit,
		To:       nil,
		Value:    big.NewInt(0),
		Data:     code,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(d.chainID), d.key)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("could not sign transaction: %w", err)
	}

	if err := d.client.SendTransaction(ctx, signed); err != nil {
		return nil, common.Address{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send transaction")
	}

	address := crypto.CreateAddress(d.from, nonce)
	logger.Info(ctx, "deployment transaction sent",
		zap.String("txHash", signed.Hash().Hex()),
		zap.String("address", address.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gasEstimate", estimate),
		zap.Uint64("gasLimit", gasLimit),
		zap.String("gasPrice", gasPrice.String()))

	return signed, address, nil
}

// WaitReceipt waits until tx is mined or the receipt timeout expires. Lookup
// errors are retried since nodes may answer with transient errors (e.g. while
// indexing) right after mining. A failed receipt status is serrors.ErrReverted.
func (d *Deployer) WaitReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, d.opts.ReceiptTimeout)
	defer cancel()

	backend := &receiptBackend{ChainClient: d.client}
	receipt, err := bind.WaitMined(ctx, backend, tx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			if last := backend.lastErr.Load(); last != nil {
				return nil, serrors.Wrap(serrors.ErrTimeout, *last,
					"no receipt for %s after %s", tx.Hash().Hex(), d.opts.ReceiptTimeout)
			}

			return nil, serrors.Wrap(serrors.ErrTimeout, err,
				"no receipt for %s after %s", tx.Hash().Hex(), d.opts.ReceiptTimeout)
		}

		return nil, fmt.Errorf("could not wait for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, serrors.With(serrors.ErrReverted, "transaction %s reverted", tx.Hash().Hex())
	}

	return receipt, nil
}

// receiptBackend remembers the last lookup failure so a timeout can report it.
type receiptBackend struct {
	ChainClient
	lastErr atomic.Pointer[error]
}

func (b *receiptBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := b.ChainClient.TransactionReceipt(ctx, txHash)
	if err != nil && !errors.Is(err, ethereum.NotFound) && ctx.Err() == nil {
		logger.Debug(ctx, "receipt lookup failed, retrying", zap.String("txHash", txHash.Hex()), zap.Error(err))
		b.lastErr.Store(&err)
	}

	return receipt, err
}

// Deploy submits contract and waits until it is mined.
func (d *Deployer) Deploy(ctx context.Context, contract domain.CompiledContract) (*Result, error) {
	start := time.Now()
	tx, address, err := d.Submit(ctx, contract)
	if err != nil {
		return nil, err
	}
	d.opts.Metrics.ObserveStep("submit", start)

	start = time.Now()
	receipt, err := d.WaitReceipt(ctx, tx)
	if err != nil {
		return nil, err
	}
	d.opts.Metrics.ObserveStep("receipt", start)
	d.opts.Metrics.ObserveDeployment(contract.Name, receipt.GasUsed, receipt.BlockNumber.Uint64())

	if receipt.ContractAddress != (common.Address{}) {
		address = receipt.ContractAddress
	}

	logger.Info(ctx, "contract deployed",
		zap.String("contract", contract.Name),
		zap.String("address", address.Hex()),
		zap.Uint64("gasUsed", receipt.GasUsed),
		zap.String("block", receipt.BlockNumber.String()))

	return &Result{
		Contract: contract,
		Address:  address,
		TxHash:   tx.Hash(),
		Receipt:  receipt,
	}, nil
}

// DeployAll deploys the contracts one after the other and stops at the first
// failure. Contracts without bytecode are skipped.
func (d *Deployer) DeployAll(ctx context.Context, contracts []domain.CompiledContract) ([]*Result, error) {
	results := make([]*Result, 0, len(contracts))
	for _, c := range contracts {
		if !c.HasBytecode() {
			logger.Info(ctx, "skipping contract without bytecode", zap.String("contract", c.Name))

			continue
		}

		res, err := d.Deploy(ctx, c)
		if err != nil {
			return results, fmt.Errorf("could not deploy %s: %w", c.Name, err)
		}
		results = append(results, res)
	}

	return results, nil
}

// Deployment converts a result into a history record.
func (d *Deployer) Deployment(r *Result) domain.Deployment {
	return domain.Deployment{
		ContractName:    r.Contract.Name,
		ContractAddress: r.Address.Hex(),
		Deployer:        d.from.Hex(),
		TxHash:          r.TxHash.Hex(),
		ChainID:         d.chainID.Uint64(),
		BlockNumber:     r.Receipt.BlockNumber.Uint64(),
		GasUsed:         r.Receipt.GasUsed,
		CompilerVersion: r.Contract.CompilerVersion,
	}
}

// DeployedContracts returns the deployed_contracts.json document of results.
func DeployedContracts(results []*Result) domain.DeployedContracts {
	out := make(domain.DeployedContracts, len(results))
	for _, r := range results {
		out[r.Contract.Name] = domain.DeployedContract{
			Address: r.Address.Hex(),
			ABI:     r.Contract.ABI,
		}
	}

	return out
}

// GasLimit applies multiplier, in hundredths, to a gas estimate and rounds up.
func GasLimit(estimate uint64, multiplier float64) uint64 {
	if multiplier <= 1 {
		return estimate
	}

	pct := uint64(math.Round(multiplier * 100))

	return (estimate*pct + 99) / 100
}

// WeiToETH formats a wei amount as ETH with four decimals.
func WeiToETH(wei *big.Int) string {
	if wei == nil {
		return "0.0000"
	}

	eth := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(1e18))

	return eth.Text('f', 4)
}

// creationCode decodes the contract bytecode. Constructors taking arguments
// are rejected since no arguments can be supplied.
func creationCode(contract domain.CompiledContract) ([]byte, error) {
	if !contract.HasBytecode() {
		return nil, serrors.With(serrors.ErrCompilation, "contract %s has no bytecode", contract.Name)
	}

	bytecode := contract.Bytecode
	if !strings.HasPrefix(bytecode, "0x") {
		bytecode = "0x" + bytecode
	}
	code, err := hexutil.Decode(bytecode)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCompilation, err, "bytecode of %s is not valid hex", contract.Name)
	}

	if len(contract.ABI) > 0 {
		parsed, err := abi.JSON(bytes.NewReader(contract.ABI))
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrCompilation, err, "abi of %s is invalid", contract.Name)
		}
		if n := len(parsed.Constructor.Inputs); n > 0 {
			return nil, serrors.With(serrors.ErrConfig,
				"constructor of %s expects %d arguments, none can be supplied", contract.Name, n)
		}
	}

	return code, nil
}
