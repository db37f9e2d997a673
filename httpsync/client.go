package httpsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/lwwgraph/snapshot"
)

// ErrUnexpectedStatus is returned when a peer answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("httpsync: unexpected status")

// Client talks to the HTTP API of a peer node.
type Client struct {
	base string
	http *http.Client
}

// NewClient returns a Client for the node at base (e.g. http://host:7070).
// A zero timeout leaves requests bounded only by their context.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Base returns the peer's base URL.
func (c *Client) Base() string { return c.base }

// Snapshot fetches the peer's full state.
func (c *Client) Snapshot(ctx context.Context) (snapshot.State, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/snapshot", nil)
	if err != nil {
		return snapshot.State{}, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return snapshot.State{}, fmt.Errorf("httpsync: get snapshot from %s: %w", c.base, err)
	}
	defer resp.Body.Close()

	if err = checkStatus(resp); err != nil {
		return snapshot.State{}, err
	}

	return snapshot.Decode(resp.Body, snapshot.FormatJSON)
}

// Push sends st to the peer, which merges it into its replica.
func (c *Client) Push(ctx context.Context, st snapshot.State) (StatsResponse, error) {
	body, err := json.Marshal(st)
	if err != nil {
		return StatsResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/merge", bytes.NewReader(body))
	if err != nil {
		return StatsResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return StatsResponse{}, fmt.Errorf("httpsync: push to %s: %w", c.base, err)
	}
	defer resp.Body.Close()

	if err = checkStatus(resp); err != nil {
		return StatsResponse{}, err
	}
	var stats StatsResponse
	if err = json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return StatsResponse{}, fmt.Errorf("httpsync: decode merge reply: %w", err)
	}

	return stats, nil
}

// checkStatus turns a non-2xx reply into ErrUnexpectedStatus carrying the
// server's error message when there is one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var e ErrorResponse
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return fmt.Errorf("%w: %s %s: %d: %s", ErrUnexpectedStatus, resp.Request.Method, resp.Request.URL, resp.StatusCode, e.Error)
	}

	return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, resp.Request.Method, resp.Request.URL, resp.StatusCode)
}
