package solana

import (
	"context"
	"encoding/base64"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/ybbus/jsonrpc"
)

const (
	// Reference: https://github.com/solana-labs/solana/blob/71e9958e061493d7545bd28d4ac7a85aaed6ffbb/client/src/rpc_custom_error.rs#L11
	rpcNodeUnhealthyCode = -32005

	// Blockhashes stay valid for ~150 slots.
	blockhashCacheWindow = 2 * time.Second
)

type Commitment struct {
	Commitment string `json:"commitment"`
}

const (
	confirmationStatusProcessed = "processed"
	confirmationStatusConfirmed = "confirmed"
	confirmationStatusFinalized = "finalized"
)

var (
	CommitmentProcessed = Commitment{Commitment: confirmationStatusProcessed}
	CommitmentConfirmed = Commitment{Commitment: confirmationStatusConfirmed}
	CommitmentFinalized = Commitment{Commitment: confirmationStatusFinalized}
)

var (
	ErrRateLimited          = errors.New("rate limited")
	ErrServiceError         = errors.New("service error")
	ErrUnsignedTransaction  = errors.New("transaction is not signed by the fee payer")
	ErrTransactionTooLarge  = errors.New("transaction exceeds max size")
	ErrInvalidCommitment    = errors.New("invalid commitment")
	ErrUnexpectedSignature  = errors.New("rpc returned an unexpected signature")
	errInvalidBlockhashSize = errors.New("invalid blockhash size")
)

// ParseCommitment returns the Commitment named by level.
func ParseCommitment(level string) (Commitment, error) {
	switch level {
	case confirmationStatusProcessed:
		return CommitmentProcessed, nil
	case confirmationStatusConfirmed:
		return CommitmentConfirmed, nil
	case confirmationStatusFinalized:
		return CommitmentFinalized, nil
	}
	return Commitment{}, errors.Wrapf(ErrInvalidCommitment, "commitment=%q", level)
}

// Client is the network collaborator that assembled transactions are handed
// to. It only covers what is needed to submit: a recent blockhash to sign
// over, and submission itself.
//
// Reference: https://docs.solana.com/apps/jsonrpc-api
type Client interface {
	GetLatestBlockhash() (Blockhash, error)
	SubmitTransaction(Transaction, Commitment) (Signature, error)
}

type client struct {
	log           *logrus.Entry
	client        jsonrpc.RPCClient
	commitment    Commitment
	skipPreflight bool

	blockMu   sync.RWMutex
	blockhash Blockhash
	lastWrite time.Time
}

// New returns a client using the specified endpoint.
func New(endpoint string) Client {
	return NewWithRPCOptions(endpoint, nil)
}

// NewWithRPCOptions returns a client configured with the specified RPC options.
func NewWithRPCOptions(endpoint string, opts *jsonrpc.RPCClientOpts) Client {
	return &client{
		log:           logrus.StandardLogger().WithField("type", "solana/client"),
		client:        jsonrpc.NewClientWithOpts(endpoint, opts),
		commitment:    CommitmentConfirmed,
		skipPreflight: defaultSkipPreflight,
	}
}

// NewFromConfig returns a client whose endpoint, timeout, commitment and
// preflight behaviour come from the provided configuration.
func NewFromConfig(ctx context.Context, configProvider ConfigProvider) (Client, error) {
	cfg := configProvider()

	endpoint, err := cfg.endpoint.GetSafe(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rpc endpoint")
	}
	commitment, err := ParseCommitment(cfg.commitment.Get(ctx))
	if err != nil {
		return nil, err
	}

	c := NewWithRPCOptions(endpoint, &jsonrpc.RPCClientOpts{
		HTTPClient: &http.Client{
			Timeout: cfg.timeout.Get(ctx),
		},
	}).(*client)
	c.commitment = commitment
	c.skipPreflight = cfg.skipPreflight.Get(ctx)

	c.log.WithFields(logrus.Fields{
		"endpoint":   endpoint,
		"commitment": commitment.Commitment,
	}).Debug("created rpc client")

	return c, nil
}

func (c *client) call(out interface{}, method string, params ...interface{}) error {
	err := c.client.CallFor(out, method, params...)
	if err == nil {
		return nil
	}

	return c.handleRpcError(method, err)
}

func (c *client) handleRpcError(method string, err error) error {
	log := c.log.WithField("method", method)

	rpcErr, ok := err.(*jsonrpc.RPCError)
	if !ok {
		log.WithError(err).Warn("rpc request failed")
		return err
	}
	if rpcErr.Code == http.StatusTooManyRequests {
		log.Warn("rate limited")
		return errors.Wrap(ErrRateLimited, rpcErr.Message)
	}
	if rpcErr.Code >= http.StatusInternalServerError || rpcErr.Code == rpcNodeUnhealthyCode {
		log.WithField("code", rpcErr.Code).Warn("rpc service error")
		return errors.Wrap(ErrServiceError, rpcErr.Message)
	}

	return err
}

func (c *client) GetLatestBlockhash() (hash Blockhash, err error) {
	// Refreshes are jittered so that many callers sharing a client don't all
	// hit the node at the same instant.
	window := time.Duration(float64(blockhashCacheWindow) * (0.8 + 0.4*rand.Float64()))

	c.blockMu.RLock()
	if time.Since(c.lastWrite) < window {
		hash = c.blockhash
	}
	c.blockMu.RUnlock()

	if hash != (Blockhash{}) {
		return hash, nil
	}

	type response struct {
		Value struct {
			Blockhash string `json:"blockhash"`
		} `json:"value"`
	}

	// note: we have to wrap the commitment in an []interface{} otherwise the
	//       solana RPC node complains. Technically this is a violation of the
	//       JSON RPC v2.0 spec.
	var resp response
	if err := c.call(&resp, "getLatestBlockhash", []interface{}{c.commitment}); err != nil {
		return hash, errors.Wrapf(err, "getLatestBlockhash() failed to send request")
	}

	hashBytes, err := base58.Decode(resp.Value.Blockhash)
	if err != nil {
		return hash, errors.Wrap(err, "invalid base58 encoded hash in response")
	}
	if len(hashBytes) != len(hash) {
		return hash, errors.Wrapf(errInvalidBlockhashSize, "got %d bytes", len(hashBytes))
	}

	copy(hash[:], hashBytes)

	c.blockMu.Lock()
	c.blockhash = hash
	c.lastWrite = time.Now()
	c.blockMu.Unlock()

	return hash, nil
}

func (c *client) SubmitTransaction(txn Transaction, commitment Commitment) (Signature, error) {
	if len(txn.Signatures) == 0 || txn.Signatures[0] == (Signature{}) {
		return Signature{}, ErrUnsignedTransaction
	}

	sig := txn.Signatures[0]
	txnBytes := txn.Marshal()
	if len(txnBytes) > MaxTransactionSize {
		return sig, errors.Wrapf(ErrTransactionTooLarge, "size=%d", len(txnBytes))
	}

	config := struct {
		Encoding            string `json:"encoding"`
		SkipPreflight       bool   `json:"skipPreflight"`
		PreflightCommitment string `json:"preflightCommitment"`
	}{
		Encoding:            "base64",
		SkipPreflight:       c.skipPreflight,
		PreflightCommitment: commitment.Commitment,
	}

	var sigStr string
	if err := c.call(&sigStr, "sendTransaction", base64.StdEncoding.EncodeToString(txnBytes), config); err != nil {
		return sig, errors.Wrapf(err, "sendTransaction() failed to send request")
	}

	if sigStr != sig.ToBase58() {
		c.log.WithFields(logrus.Fields{
			"method":   "sendTransaction",
			"expected": sig.ToBase58(),
			"actual":   sigStr,
		}).Warn("unexpected signature in response")
		return sig, errors.Wrapf(ErrUnexpectedSignature, "expected=%s actual=%s", sig.ToBase58(), sigStr)
	}

	return sig, nil
}
