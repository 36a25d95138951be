package remote

import (
	"context"
	"fmt"

	"github.com/act3-ai/go-common/pkg/logger"

	"github.com/act3-ai/refsync/pkg/refspec"
)

// Push pushes the given refspecs to the remote, returning entries only for
// references the server rejected or annotated, in acknowledgment order. An
// empty report means every reference was accepted without comment.
func (r *Remote) Push(ctx context.Context, refspecs []string) ([]ReportEntry, error) {
	var report Report
	if err := r.PushTo(ctx, refspecs, &report); err != nil {
		return nil, err
	}
	return report.Entries(), nil
}

// PushTo pushes the given refspecs to the remote, delivering every
// server-annotated reference status to sink in acknowledgment order.
//
// The first malformed refspec aborts the remaining adds; the session still
// proceeds to cleanup and that failure surfaces as [ErrInvalidArgument] after
// disconnect. A sink failure surfaces as [ErrHostCallback] and takes
// precedence over any pending protocol error. The connection, once
// established, is released on every exit path.
func (r *Remote) PushTo(ctx context.Context, refspecs []string, sink ReportSink) (err error) {
	log := logger.FromContext(ctx).With("remote", r.name, "url", r.url)

	conn, cerr := r.transport.Connect(ctx, r.url, refspec.Push)
	if cerr != nil {
		log.DebugContext(ctx, "push connect failed", "state", stateIdle)
		return fmt.Errorf("%w: connecting for push: %v", ErrConnection, cerr)
	}
	log.DebugContext(ctx, "push session", "state", stateConnected)

	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.DebugContext(ctx, "disconnect failed", "err", cerr.Error())
			return
		}
		log.DebugContext(ctx, "push session", "state", stateDisconnected)
	}()

	batch, berr := conn.BeginPush(ctx)
	if berr != nil {
		return fmt.Errorf("%w: beginning push: %v", ErrProtocol, berr)
	}

	for _, spec := range refspecs {
		if _, perr := refspec.Parse(spec, refspec.Push); perr != nil {
			err = fmt.Errorf("%w: refspec %q: %v", ErrInvalidArgument, spec, perr)
			break
		}
		if aerr := batch.AddRefspec(spec); aerr != nil {
			err = fmt.Errorf("%w: adding refspec %q: %v", ErrInvalidArgument, spec, aerr)
			break
		}
	}

	if err == nil {
		log.DebugContext(ctx, "push session", "state", stateNegotiating, "refspecs", len(refspecs))
		if ferr := batch.Finish(ctx); ferr != nil {
			err = fmt.Errorf("%w: finishing push: %v", ErrProtocol, ferr)
		}
	}

	switch {
	case err != nil:
	case !batch.UnpackOK():
		err = fmt.Errorf("%w: server failed to unpack the sent pack", ErrProtocol)
	default:
		for status, serr := range batch.Statuses() {
			if serr != nil {
				err = fmt.Errorf("%w: reading push statuses: %v", ErrProtocol, serr)
				break
			}
			if status.Message == "" {
				// accepted without comment, never reported
				continue
			}
			if aerr := sink.Append(status.Ref, status.Message); aerr != nil {
				return fmt.Errorf("%w: reporting status for %q: %v", ErrHostCallback, status.Ref, aerr)
			}
		}
		if err == nil {
			if terr := batch.UpdateTips(ctx); terr != nil {
				err = fmt.Errorf("%w: updating remote tracking tips: %v", ErrProtocol, terr)
			} else {
				log.DebugContext(ctx, "push session", "state", stateTipsUpdated)
			}
		}
	}

	return err
}
