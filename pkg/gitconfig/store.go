// Package gitconfig persists remote definitions in a git-config formatted
// configuration file on a billy filesystem.
package gitconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	format "github.com/go-git/go-git/v5/plumbing/format/config"

	"github.com/act3-ai/refsync/pkg/remote"
)

const (
	remoteSection = "remote"
	urlKey        = "url"
	fetchKey      = "fetch"
)

// Store reads and writes remote definitions in a single git-config file.
// Implements [remote.ConfigStore].
//
// A Store is not safe for concurrent writers; callers must serialize access
// the same way they serialize access to the repository itself.
type Store struct {
	fs   billy.Filesystem
	path string
}

// NewStore creates a store over the git-config file at path on fs. The file
// need not exist yet; it is created on the first write.
func NewStore(fs billy.Filesystem, path string) *Store {
	return &Store{
		fs:   fs,
		path: path,
	}
}

// Remote resolves a remote definition by name. It fails with
// [remote.ErrNotFound] when no such remote is configured.
func (s *Store) Remote(name string) (*remote.Config, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}

	sec := cfg.Section(remoteSection)
	if !sec.HasSubsection(name) {
		return nil, fmt.Errorf("%w: remote %q is not configured", remote.ErrNotFound, name)
	}

	sub := sec.Subsection(name)
	return &remote.Config{
		Name:  name,
		URL:   sub.Option(urlKey),
		Fetch: sub.Option(fetchKey),
	}, nil
}

// SetRemote inserts or replaces the definition keyed by cfg.Name and writes
// the configuration file.
func (s *Store) SetRemote(cfg *remote.Config) error {
	fileCfg, err := s.load()
	if err != nil {
		return err
	}

	sub := fileCfg.Section(remoteSection).Subsection(cfg.Name)
	sub.SetOption(urlKey, cfg.URL)
	if cfg.Fetch != "" {
		sub.SetOption(fetchKey, cfg.Fetch)
	} else {
		sub.RemoveOption(fetchKey)
	}

	return s.write(fileCfg)
}

// RemoveRemote deletes the definition for name. Removing an absent remote is
// not an error.
func (s *Store) RemoveRemote(name string) error {
	cfg, err := s.load()
	if err != nil {
		return err
	}

	sec := cfg.Section(remoteSection)
	if !sec.HasSubsection(name) {
		return nil
	}
	sec.RemoveSubsection(name)

	return s.write(cfg)
}

// Names lists the configured remote names in file order.
func (s *Store) Names() ([]string, error) {
	cfg, err := s.load()
	if err != nil {
		return nil, err
	}

	subs := cfg.Section(remoteSection).Subsections
	names := make([]string, 0, len(subs))
	for _, sub := range subs {
		names = append(names, sub.Name)
	}
	return names, nil
}

// load decodes the configuration file. A missing file decodes as an empty
// configuration.
func (s *Store) load() (*format.Config, error) {
	cfg := format.New()

	data, err := util.ReadFile(s.fs, s.path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading configuration %s: %w", s.path, err)
	}

	if err := format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decoding configuration %s: %w", s.path, err)
	}
	return cfg, nil
}

// write encodes the configuration and replaces the file.
func (s *Store) write(cfg *format.Config) error {
	var buf bytes.Buffer
	if err := format.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	if err := util.WriteFile(s.fs, s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing configuration %s: %w", s.path, err)
	}
	return nil
}
