package remote

import (
	"context"
	"iter"

	"github.com/go-git/go-git/v5/plumbing"

	"github.com/act3-ai/refsync/pkg/refspec"
)

// TransferStats is a snapshot of the object and byte counts of a completed
// fetch. It is immutable after creation.
type TransferStats struct {
	IndexedObjects  uint32
	ReceivedObjects uint32
	ReceivedBytes   uint64
}

// RefStatus is the server's acknowledgment of a single pushed reference.
// Message is empty when the reference was accepted without comment.
type RefStatus struct {
	Ref     plumbing.ReferenceName
	Message string
}

// Transport establishes connections to remote endpoints. Implementations own
// the byte-level protocol framing; this package only sequences the exchange.
type Transport interface {
	// Connect opens a connection to url in the given direction.
	Connect(ctx context.Context, url string, dir refspec.Direction) (Connection, error)
}

// Connection is a single open exchange with a remote endpoint. It is not safe
// for concurrent use; a transfer session drives it as a strictly ordered
// sequence of blocking calls and closes it on every exit path.
type Connection interface {
	// NegotiateAndDownload negotiates wanted objects against the local object
	// store and streams the resulting pack into storage.
	NegotiateAndDownload(ctx context.Context) (*TransferStats, error)
	// UpdateTips moves local tip references to the remote's advertised tips.
	// A nil spec updates the tips for every advertised reference.
	UpdateTips(ctx context.Context, spec *refspec.RefSpec) error
	// BeginPush starts a push batch on the connection.
	BeginPush(ctx context.Context) (PushBatch, error)
	// Close releases the connection's transport resources.
	Close() error
}

// PushBatch accumulates refspecs for one push exchange and reports its
// per-reference outcome.
type PushBatch interface {
	// AddRefspec queues a refspec for the batch.
	AddRefspec(spec string) error
	// Finish performs the negotiation and upload exchange.
	Finish(ctx context.Context) error
	// UnpackOK reports whether the server acknowledged receipt of the pack.
	UnpackOK() bool
	// Statuses produces a lazy, finite, non-restartable sequence of
	// per-reference acknowledgments in server order. A non-nil error ends
	// the sequence.
	Statuses() iter.Seq2[RefStatus, error]
	// UpdateTips moves the remote tracking tips for pushed references.
	UpdateTips(ctx context.Context) error
}
