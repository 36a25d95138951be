// Package testutils provides shared fixtures for exercising transfer
// sessions without a real network peer.
package testutils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"iter"

	"github.com/act3-ai/refsync/internal/bytecount"
	"github.com/act3-ai/refsync/pkg/refspec"
	"github.com/act3-ai/refsync/pkg/remote"
)

// Transport is a scripted in-memory implementation of [remote.Transport].
// Zero values script a remote that serves an empty pack and accepts every
// pushed reference; failure injection fields override individual steps.
type Transport struct {
	// Pack is the payload streamed during NegotiateAndDownload.
	Pack []byte
	// IndexedObjects and ReceivedObjects are reported alongside Pack in the
	// transfer statistics.
	IndexedObjects  uint32
	ReceivedObjects uint32

	// Statuses are the per-reference acknowledgments served to a push batch,
	// in order.
	Statuses []remote.RefStatus
	// RefuseUnpack scripts a server that did not acknowledge pack receipt.
	RefuseUnpack bool

	// failure injection
	ConnectErr  error
	DownloadErr error
	TipsErr     error
	FinishErr   error
	StatusErr   error // ends the status sequence

	// observability
	Connects    int
	Disconnects int
	Added       []string
	Finished    bool
	TipsUpdated bool
}

// Connect implements [remote.Transport].
func (t *Transport) Connect(_ context.Context, _ string, dir refspec.Direction) (remote.Connection, error) {
	if t.ConnectErr != nil {
		return nil, t.ConnectErr
	}
	t.Connects++
	return &conn{transport: t, dir: dir}, nil
}

type conn struct {
	transport *Transport
	dir       refspec.Direction
	closed    bool
}

func (c *conn) NegotiateAndDownload(_ context.Context) (*remote.TransferStats, error) {
	if err := c.transport.DownloadErr; err != nil {
		return nil, err
	}

	// stream the scripted pack through the byte counter, as a packfile
	// decoder would
	r := bytecount.NewReader(bytes.NewReader(c.transport.Pack))
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}

	return &remote.TransferStats{
		IndexedObjects:  c.transport.IndexedObjects,
		ReceivedObjects: c.transport.ReceivedObjects,
		ReceivedBytes:   r.Total(),
	}, nil
}

func (c *conn) UpdateTips(_ context.Context, _ *refspec.RefSpec) error {
	if err := c.transport.TipsErr; err != nil {
		return err
	}
	c.transport.TipsUpdated = true
	return nil
}

func (c *conn) BeginPush(_ context.Context) (remote.PushBatch, error) {
	return &pushBatch{transport: c.transport}, nil
}

func (c *conn) Close() error {
	if c.closed {
		return errors.New("connection already closed")
	}
	c.closed = true
	c.transport.Disconnects++
	return nil
}

type pushBatch struct {
	transport *Transport
}

func (b *pushBatch) AddRefspec(spec string) error {
	b.transport.Added = append(b.transport.Added, spec)
	return nil
}

func (b *pushBatch) Finish(_ context.Context) error {
	if err := b.transport.FinishErr; err != nil {
		return err
	}
	b.transport.Finished = true
	return nil
}

func (b *pushBatch) UnpackOK() bool {
	return !b.transport.RefuseUnpack
}

func (b *pushBatch) Statuses() iter.Seq2[remote.RefStatus, error] {
	return func(yield func(remote.RefStatus, error) bool) {
		for _, status := range b.transport.Statuses {
			if !yield(status, nil) {
				return
			}
		}
		if b.transport.StatusErr != nil {
			yield(remote.RefStatus{}, b.transport.StatusErr)
		}
	}
}

func (b *pushBatch) UpdateTips(_ context.Context) error {
	if err := b.transport.TipsErr; err != nil {
		return err
	}
	b.transport.TipsUpdated = true
	return nil
}
