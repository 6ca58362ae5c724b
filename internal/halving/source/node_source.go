package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/halving-countdown/pkg/safe"
)

// NodeSource reads the tip height from a bitcoin node over JSON-RPC.
type NodeSource struct {
	rpc BlockCounter
}

// NewNodeSource wraps a block counter, usually a *rpcclient.Client.
func NewNodeSource(rpc BlockCounter) *NodeSource {
	return &NodeSource{rpc: rpc}
}

// LatestHeight returns the node's block count.
func (s *NodeSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// NewRPCClient connects to a node in HTTP POST mode.
func NewRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
