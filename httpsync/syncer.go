package httpsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lwwgraph/config"
	"github.com/katalvlaran/lwwgraph/logging"
	"github.com/katalvlaran/lwwgraph/metrics"
	"github.com/katalvlaran/lwwgraph/replica"
)

// Syncer pulls full snapshots from peers and merges them into a replica.
// Merging is idempotent, so overlapping or repeated pulls are harmless.
type Syncer struct {
	replica  *replica.Replica
	peers    []*Client
	interval time.Duration
	timeout  time.Duration
	log      *slog.Logger
}

// NewSyncer creates a Syncer for r from cfg. A nil logger discards.
func NewSyncer(r *replica.Replica, cfg config.Sync, log *slog.Logger) *Syncer {
	if log == nil {
		log = logging.Discard()
	}
	s := &Syncer{
		replica:  r,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		log:      log,
	}
	for _, p := range cfg.Peers {
		s.peers = append(s.peers, NewClient(p, 0))
	}

	return s
}

// PeerResult is the outcome of one pull.
type PeerResult struct {
	Peer     string
	Duration time.Duration
	Err      error
}

// SyncOnce pulls from every peer in parallel and merges what arrives. One
// failing peer does not stop the others; their errors are joined.
func (s *Syncer) SyncOnce(ctx context.Context) ([]PeerResult, error) {
	results := make([]PeerResult, len(s.peers))
	g, gCtx := errgroup.WithContext(ctx)

	for i, peer := range s.peers {
		i, peer := i, peer
		g.Go(func() error {
			start := time.Now()
			err := s.pull(gCtx, peer)
			duration := time.Since(start)

			metrics.SyncPullDuration.WithLabelValues(peer.Base()).Observe(duration.Seconds())
			results[i] = PeerResult{Peer: peer.Base(), Duration: duration, Err: err}
			if err != nil {
				s.log.Warn("sync pull failed", "peer", peer.Base(), "duration", duration, "error", err)
			}

			return nil // partial results are fine
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return results, errors.Join(errs...)
}

func (s *Syncer) pull(ctx context.Context, peer *Client) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	st, err := peer.Snapshot(ctx)
	if err != nil {
		return err
	}
	if err = s.replica.MergeState(st); err != nil {
		return fmt.Errorf("httpsync: merge from %s: %w", peer.Base(), err)
	}

	return nil
}

// Run syncs every interval until ctx is done. It returns nil on cancellation.
// With no peers or a non-positive interval it just waits for ctx.
func (s *Syncer) Run(ctx context.Context) error {
	if len(s.peers) == 0 || s.interval <= 0 {
		<-ctx.Done()
		return nil
	}
	s.log.Info("sync started", "peers", len(s.peers), "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info("sync stopped")
			return nil
		case <-ticker.C:
			_, _ = s.SyncOnce(ctx)
		}
	}
}
