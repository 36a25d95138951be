package remote

import (
	"context"
	"fmt"

	"github.com/act3-ai/go-common/pkg/logger"

	"github.com/act3-ai/refsync/pkg/refspec"
)

// Fetch negotiates wanted objects against the local object store, downloads
// the resulting pack, and moves local tip references to the remote's
// advertised tips. It returns transfer statistics only on full success.
//
// The connection is scoped to this call: once established it is always
// released before Fetch returns, whatever the outcome. A connect failure
// leaves the session idle with no partial state to clean up.
func (r *Remote) Fetch(ctx context.Context) (*TransferStats, error) {
	log := logger.FromContext(ctx).With("remote", r.name, "url", r.url)

	conn, err := r.transport.Connect(ctx, r.url, refspec.Fetch)
	if err != nil {
		log.DebugContext(ctx, "fetch connect failed", "state", stateIdle)
		return nil, fmt.Errorf("%w: connecting for fetch: %v", ErrConnection, err)
	}
	log.DebugContext(ctx, "fetch session", "state", stateConnected)

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.DebugContext(ctx, "disconnect failed", "err", cerr.Error())
			return
		}
		log.DebugContext(ctx, "fetch session", "state", stateDisconnected)
	}()

	log.DebugContext(ctx, "fetch session", "state", stateNegotiating)
	stats, err := conn.NegotiateAndDownload(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: negotiating and downloading pack: %v", ErrProtocol, err)
	}
	log.DebugContext(ctx, "fetch session", "state", stateDownloading,
		"indexedObjects", stats.IndexedObjects,
		"receivedObjects", stats.ReceivedObjects,
		"receivedBytes", stats.ReceivedBytes)

	if err := conn.UpdateTips(ctx, r.fetch); err != nil {
		return nil, fmt.Errorf("%w: updating local tips: %v", ErrProtocol, err)
	}
	log.DebugContext(ctx, "fetch session", "state", stateTipsUpdated)

	return stats, nil
}
