package testutils

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/act3-ai/refsync/pkg/gitconfig"
	"github.com/act3-ai/refsync/pkg/remote"
)

// ConfigPath is where fixture stores keep the configuration file.
const ConfigPath = "config"

// NewConfigStore seeds a git-config store on an in-memory filesystem with the
// given remote definitions.
func NewConfigStore(t *testing.T, remotes ...*remote.Config) *gitconfig.Store {
	t.Helper()

	store := gitconfig.NewStore(memfs.New(), ConfigPath)
	for _, cfg := range remotes {
		require.NoError(t, store.SetRemote(cfg))
	}
	return store
}
