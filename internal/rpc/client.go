// Package rpc is a JSON-RPC client for the zcld wallet daemon
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/tidwall/gjson"

	"github.com/setavenger/zclwallet-desktop/internal/logging"
)

// Client sends JSON-RPC 1.0 requests over HTTP POST with basic auth.
// Calls are not cancelled by timeouts, some wallet calls (import, rescan) take minutes.
type Client struct {
	url        string
	user       string
	password   string
	httpClient *http.Client
	nextID     atomic.Uint64
}

// NewClient creates a client for the daemon listening on host:port
func NewClient(address, user, password string) *Client {
	return &Client{
		url:        "http://" + address,
		user:       user,
		password:   password,
		httpClient: &http.Client{},
	}
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// Call invokes method and returns the raw "result" value
func (c *Client) Call(ctx context.Context, method string, params ...any) (gjson.Result, error) {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(request{
		JSONRPC: "1.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Content-Type", "text/plain")
	req.SetBasicAuth(c.user, c.password)

	logging.L.Debug().Str("method", method).Msg("rpc call")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to reach zcld: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read response body: %w", err)
	}

	// zcld answers errors with status 500 and a JSON body, so only bail
	// out on the status when the body is not JSON
	if !gjson.ValidBytes(respBody) {
		if resp.StatusCode == http.StatusUnauthorized {
			return gjson.Result{}, fmt.Errorf("zcld rejected the RPC credentials")
		}
		return gjson.Result{}, fmt.Errorf("unexpected response from zcld (status %d)", resp.StatusCode)
	}

	parsed := gjson.ParseBytes(respBody)
	if rpcErr := parsed.Get("error"); rpcErr.Exists() && rpcErr.Type != gjson.Null {
		err := &Error{
			Code:    rpcErr.Get("code").Int(),
			Message: rpcErr.Get("message").String(),
		}
		logging.L.Debug().Str("method", method).Int64("code", err.Code).Msg("rpc error")
		return gjson.Result{}, err
	}

	result := parsed.Get("result")
	if !result.Exists() {
		return gjson.Result{}, ErrNoResult
	}
	return result, nil
}
