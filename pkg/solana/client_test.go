package solana

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rpcRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     int               `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fakeNode is a minimal JSON-RPC node. Handlers return either a result or
// an error for a method.
type fakeNode struct {
	sync.Mutex
	t        *testing.T
	handlers map[string]func(params []json.RawMessage) (interface{}, *rpcError)
	calls    map[string]int
}

func newFakeNode(t *testing.T) (*fakeNode, *httptest.Server) {
	n := &fakeNode{
		t:        t,
		handlers: make(map[string]func([]json.RawMessage) (interface{}, *rpcError)),
		calls:    make(map[string]int),
	}
	s := httptest.NewServer(n)
	t.Cleanup(s.Close)
	return n, s
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	require.NoError(n.t, json.NewDecoder(r.Body).Decode(&req))

	n.Lock()
	n.calls[req.Method]++
	handler, ok := n.handlers[req.Method]
	n.Unlock()

	resp := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      req.ID,
	}
	if !ok {
		resp["error"] = rpcError{Code: -32601, Message: "method not found"}
	} else if result, rpcErr := handler(req.Params); rpcErr != nil {
		resp["error"] = rpcErr
	} else {
		resp["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	require.NoError(n.t, json.NewEncoder(w).Encode(resp))
}

func (n *fakeNode) handle(method string, handler func(params []json.RawMessage) (interface{}, *rpcError)) {
	n.Lock()
	n.handlers[method] = handler
	n.Unlock()
}

func (n *fakeNode) callCount(method string) int {
	n.Lock()
	defer n.Unlock()
	return n.calls[method]
}

func TestClient_GetLatestBlockhash(t *testing.T) {
	node, server := newFakeNode(t)

	var expected Blockhash
	for i := range expected {
		expected[i] = byte(i + 1)
	}

	node.handle("getLatestBlockhash", func(params []json.RawMessage) (interface{}, *rpcError) {
		require.Len(t, params, 1)

		var commitment Commitment
		require.NoError(t, json.Unmarshal(params[0], &commitment))
		assert.Equal(t, CommitmentConfirmed, commitment)

		return map[string]interface{}{
			"context": map[string]interface{}{"slot": 1},
			"value": map[string]interface{}{
				"blockhash":            base58.Encode(expected[:]),
				"lastValidBlockHeight": 100,
			},
		}, nil
	})

	c := New(server.URL)

	actual, err := c.GetLatestBlockhash()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)

	// Served from the cache.
	actual, err = c.GetLatestBlockhash()
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Equal(t, 1, node.callCount("getLatestBlockhash"))
}

func TestClient_GetLatestBlockhash_InvalidResponse(t *testing.T) {
	node, server := newFakeNode(t)
	node.handle("getLatestBlockhash", func(_ []json.RawMessage) (interface{}, *rpcError) {
		return map[string]interface{}{
			"value": map[string]interface{}{"blockhash": base58.Encode([]byte{1, 2, 3})},
		}, nil
	})

	_, err := New(server.URL).GetLatestBlockhash()
	assert.True(t, errors.Is(err, errInvalidBlockhashSize))
}

func TestClient_RPCErrors(t *testing.T) {
	for _, tc := range []struct {
		code     int
		expected error
	}{
		{code: http.StatusTooManyRequests, expected: ErrRateLimited},
		{code: http.StatusBadGateway, expected: ErrServiceError},
		{code: rpcNodeUnhealthyCode, expected: ErrServiceError},
	} {
		node, server := newFakeNode(t)
		node.handle("getLatestBlockhash", func(_ []json.RawMessage) (interface{}, *rpcError) {
			return nil, &rpcError{Code: tc.code, Message: "nope"}
		})

		_, err := New(server.URL).GetLatestBlockhash()
		require.Error(t, err)
		assert.True(t, errors.Is(err, tc.expected), err.Error())
	}

	node, server := newFakeNode(t)
	node.handle("getLatestBlockhash", func(_ []json.RawMessage) (interface{}, *rpcError) {
		return nil, &rpcError{Code: -32602, Message: "invalid params"}
	})
	_, err := New(server.URL).GetLatestBlockhash()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrRateLimited))
	assert.False(t, errors.Is(err, ErrServiceError))
}

func TestClient_SubmitTransaction(t *testing.T) {
	node, server := newFakeNode(t)

	keys := generateKeys(t, 2)
	payer, program := keys[0], keys[1]

	txn := NewTransaction(public(payer), NewInstruction(public(program), []byte{1}, NewAccountMeta(public(payer), true)))
	require.NoError(t, txn.Sign(payer))

	node.handle("sendTransaction", func(params []json.RawMessage) (interface{}, *rpcError) {
		require.Len(t, params, 2)

		var encoded string
		require.NoError(t, json.Unmarshal(params[0], &encoded))
		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, txn.Marshal(), raw)

		var config map[string]interface{}
		require.NoError(t, json.Unmarshal(params[1], &config))
		assert.Equal(t, "base64", config["encoding"])
		assert.Equal(t, true, config["skipPreflight"])
		assert.Equal(t, "finalized", config["preflightCommitment"])

		return base58.Encode(txn.Signature()), nil
	})

	c := New(server.URL)
	sig, err := c.SubmitTransaction(txn, CommitmentFinalized)
	require.NoError(t, err)
	assert.Equal(t, txn.Signatures[0], sig)
}

func TestClient_SubmitTransaction_Unsigned(t *testing.T) {
	node, server := newFakeNode(t)

	keys := generateKeys(t, 2)
	txn := NewTransaction(public(keys[0]), NewInstruction(public(keys[1]), nil))

	_, err := New(server.URL).SubmitTransaction(txn, CommitmentConfirmed)
	assert.Equal(t, ErrUnsignedTransaction, err)

	_, err = New(server.URL).SubmitTransaction(Transaction{}, CommitmentConfirmed)
	assert.Equal(t, ErrUnsignedTransaction, err)

	assert.Zero(t, node.callCount("sendTransaction"))
}

func TestClient_SubmitTransaction_TooLarge(t *testing.T) {
	_, server := newFakeNode(t)

	keys := generateKeys(t, 2)
	txn := NewTransaction(public(keys[0]), NewInstruction(public(keys[1]), make([]byte, MaxTransactionSize)))
	require.NoError(t, txn.Sign(keys[0]))

	_, err := New(server.URL).SubmitTransaction(txn, CommitmentConfirmed)
	assert.True(t, errors.Is(err, ErrTransactionTooLarge))
}

func TestClient_SubmitTransaction_UnexpectedSignature(t *testing.T) {
	node, server := newFakeNode(t)
	node.handle("sendTransaction", func(_ []json.RawMessage) (interface{}, *rpcError) {
		return base58.Encode(make([]byte, ed25519.SignatureSize)), nil
	})

	keys := generateKeys(t, 2)
	txn := NewTransaction(public(keys[0]), NewInstruction(public(keys[1]), nil))
	require.NoError(t, txn.Sign(keys[0]))

	_, err := New(server.URL).SubmitTransaction(txn, CommitmentConfirmed)
	assert.True(t, errors.Is(err, ErrUnexpectedSignature))
}

func TestNewFromConfig(t *testing.T) {
	node, server := newFakeNode(t)
	node.handle("getLatestBlockhash", func(params []json.RawMessage) (interface{}, *rpcError) {
		var commitment Commitment
		require.NoError(t, json.Unmarshal(params[0], &commitment))
		assert.Equal(t, CommitmentFinalized, commitment)

		var bh Blockhash
		bh[0] = 1
		return map[string]interface{}{
			"value": map[string]interface{}{"blockhash": base58.Encode(bh[:])},
		}, nil
	})

	c, err := NewFromConfig(context.Background(), withManualTestOverrides(&testOverrides{
		endpoint:      server.URL,
		commitment:    confirmationStatusFinalized,
		skipPreflight: false,
	}))
	require.NoError(t, err)
	assert.False(t, c.(*client).skipPreflight)

	bh, err := c.GetLatestBlockhash()
	require.NoError(t, err)
	assert.EqualValues(t, 1, bh[0])

	_, err = NewFromConfig(context.Background(), withManualTestOverrides(&testOverrides{
		endpoint:   server.URL,
		commitment: "eventually",
	}))
	assert.True(t, errors.Is(err, ErrInvalidCommitment))
}

func TestNewFromConfig_Env(t *testing.T) {
	t.Setenv(EndpointConfigEnvName, "http://localhost:8899")
	t.Setenv(CommitmentConfigEnvName, "processed")
	t.Setenv(TimeoutConfigEnvName, "")

	c, err := NewFromConfig(context.Background(), WithEnvConfigs())
	require.NoError(t, err)
	assert.Equal(t, CommitmentProcessed, c.(*client).commitment)
	assert.True(t, c.(*client).skipPreflight)
}

func TestParseCommitment(t *testing.T) {
	for level, expected := range map[string]Commitment{
		"processed": CommitmentProcessed,
		"confirmed": CommitmentConfirmed,
		"finalized": CommitmentFinalized,
	} {
		actual, err := ParseCommitment(level)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	}

	_, err := ParseCommitment("max")
	assert.True(t, errors.Is(err, ErrInvalidCommitment))
}
