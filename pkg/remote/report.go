package remote

import "github.com/go-git/go-git/v5/plumbing"

// ReportEntry records the server's response to a single pushed reference.
// Entries exist only for references the server rejected or annotated.
type ReportEntry struct {
	Ref     plumbing.ReferenceName
	Message string
}

// ReportSink receives per-reference push results in server-acknowledgment
// order. It models the caller boundary: an Append failure aborts the status
// exchange and surfaces as [ErrHostCallback], taking precedence over any
// pending protocol error.
type ReportSink interface {
	Append(ref plumbing.ReferenceName, message string) error
}

// Report is an ordered [ReportSink] backed by a slice. Its Append never
// fails.
type Report struct {
	entries []ReportEntry
}

// Append implements [ReportSink].
func (r *Report) Append(ref plumbing.ReferenceName, message string) error {
	r.entries = append(r.entries, ReportEntry{Ref: ref, Message: message})
	return nil
}

// Entries returns the collected entries in append order.
func (r *Report) Entries() []ReportEntry {
	return r.entries
}
