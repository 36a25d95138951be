// Package remote models named, URL-addressed peer repositories and the
// fetch/push transfer sessions run against them.
//
// A Remote holds no network resources between calls; a connection is opened
// and closed within the scope of a single Fetch or Push. A Remote and any
// refspec borrowed from it are not safe for concurrent mutation; callers must
// serialize access to a given Remote.
package remote

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/act3-ai/refsync/pkg/refspec"
)

// Config is the persisted definition of a remote.
type Config struct {
	Name string
	URL  string
	// Fetch is the canonical form of the remote's fetch refspec, empty when
	// none is configured.
	Fetch string
}

// ConfigStore resolves and persists remote definitions in the repository's
// durable configuration.
type ConfigStore interface {
	// Remote resolves a remote definition by name. It returns an error
	// satisfying errors.Is(err, ErrNotFound) when no such remote is
	// configured.
	Remote(name string) (*Config, error)
	// SetRemote inserts or replaces the definition keyed by cfg.Name.
	SetRemote(cfg *Config) error
	// RemoveRemote deletes the definition for name, if present.
	RemoveRemote(name string) error
	// Names lists the configured remote names.
	Names() ([]string, error)
}

// Remote is a named peer repository configuration with an associated default
// fetch refspec.
type Remote struct {
	store     ConfigStore
	transport Transport

	name  string
	url   string
	fetch *refspec.RefSpec // nil when unset

	// savedName is the name the remote is persisted under, tracked so a
	// rename followed by Save replaces the old definition.
	savedName string
}

// Load resolves a remote by name from the repository configuration.
// It fails with [ErrNotFound] when no such remote is configured and with
// [ErrInvalidArgument] when the stored fetch refspec is corrupt.
func Load(store ConfigStore, tr Transport, name string) (*Remote, error) {
	cfg, err := store.Remote(name)
	if err != nil {
		return nil, fmt.Errorf("loading remote %q: %w", name, err)
	}

	r := &Remote{
		store:     store,
		transport: tr,
		name:      cfg.Name,
		url:       cfg.URL,
		savedName: cfg.Name,
	}
	if cfg.Fetch != "" {
		spec, err := refspec.Parse(cfg.Fetch, refspec.Fetch)
		if err != nil {
			return nil, fmt.Errorf("%w: stored fetch refspec %q: %v", ErrInvalidArgument, cfg.Fetch, err)
		}
		r.fetch = spec
	}
	return r, nil
}

// Name returns the remote's name.
func (r *Remote) Name() string { return r.name }

// Rename changes the remote's name on the in-memory handle. It fails with
// [ErrInvalidArgument] when newName is not a valid remote name or collides
// with another configured remote. The change is not persisted until Save.
func (r *Remote) Rename(newName string) error {
	if err := validName(newName); err != nil {
		return err
	}
	if newName == r.name {
		return nil
	}

	names, err := r.store.Names()
	if err != nil {
		return fmt.Errorf("listing remotes: %w", err)
	}
	if slices.Contains(names, newName) {
		return fmt.Errorf("%w: remote %q already exists", ErrInvalidArgument, newName)
	}

	r.name = newName
	return nil
}

// URL returns the remote's transport-addressable URL.
func (r *Remote) URL() string { return r.url }

// SetURL updates the in-memory handle's URL. The URL is validated by the
// transport layer's own endpoint parsing; malformed URLs fail with
// [ErrInvalidArgument].
func (r *Remote) SetURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidArgument)
	}
	if _, err := transport.NewEndpoint(url); err != nil {
		return fmt.Errorf("%w: url %q: %v", ErrInvalidArgument, url, err)
	}
	r.url = url
	return nil
}

// FetchRefspec returns the source and destination patterns of the remote's
// fetch refspec, or [ErrNotFound] when none is configured.
func (r *Remote) FetchRefspec() (src, dst string, err error) {
	if r.fetch == nil {
		return "", "", fmt.Errorf("%w: remote %q has no fetch refspec", ErrNotFound, r.name)
	}
	return r.fetch.Source(), r.fetch.Destination(), nil
}

// SetFetchRefspec replaces the remote's fetch refspec. The refspec is always
// stored forced, "+src:dst". Empty sides and patterns rejected by the refspec
// grammar fail with [ErrInvalidArgument].
func (r *Remote) SetFetchRefspec(src, dst string) error {
	if src == "" || dst == "" {
		return fmt.Errorf("%w: refspec sides must be non-empty", ErrInvalidArgument)
	}

	var b strings.Builder
	b.Grow(len(src) + len(dst) + 2)
	b.WriteByte('+')
	b.WriteString(src)
	b.WriteByte(':')
	b.WriteString(dst)

	spec, err := refspec.Parse(b.String(), refspec.Fetch)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	r.fetch = spec
	return nil
}

// Save persists the in-memory remote definition to the repository's durable
// configuration. After a rename, Save removes the definition stored under the
// previous name.
func (r *Remote) Save() error {
	if r.savedName != "" && r.savedName != r.name {
		if err := r.store.RemoveRemote(r.savedName); err != nil {
			return fmt.Errorf("removing renamed remote %q: %w", r.savedName, err)
		}
	}

	cfg := &Config{Name: r.name, URL: r.url}
	if r.fetch != nil {
		cfg.Fetch = r.fetch.String()
	}
	if err := r.store.SetRemote(cfg); err != nil {
		return fmt.Errorf("saving remote %q: %w", r.name, err)
	}
	r.savedName = r.name
	return nil
}

// validName enforces the shape accepted for a remote name.
func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty remote name", ErrInvalidArgument)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: remote name %q starts with '-'", ErrInvalidArgument, name)
	case strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("%w: remote name %q ends with '.lock'", ErrInvalidArgument, name)
	case strings.ContainsAny(name, " \t\n/\\:^~?*["):
		return fmt.Errorf("%w: remote name %q contains a forbidden character", ErrInvalidArgument, name)
	default:
		return nil
	}
}
