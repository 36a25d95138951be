package remote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act3-ai/refsync/internal/testutils"
	"github.com/act3-ai/refsync/pkg/refspec"
	"github.com/act3-ai/refsync/pkg/remote"
)

func originConfig() *remote.Config {
	return &remote.Config{
		Name:  "origin",
		URL:   "https://example.com/repo.git",
		Fetch: "+refs/heads/*:refs/remotes/origin/*",
	}
}

func TestLoad(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)
		assert.Equal(t, "origin", r.Name())
		assert.Equal(t, "https://example.com/repo.git", r.URL())

		src, dst, err := r.FetchRefspec()
		require.NoError(t, err)
		assert.Equal(t, "refs/heads/*", src)
		assert.Equal(t, "refs/remotes/origin/*", dst)
	})

	t.Run("Not Configured", func(t *testing.T) {
		store := testutils.NewConfigStore(t)

		_, err := remote.Load(store, &testutils.Transport{}, "origin")
		assert.ErrorIs(t, err, remote.ErrNotFound)
	})

	t.Run("Corrupt Stored Refspec", func(t *testing.T) {
		store := testutils.NewConfigStore(t, &remote.Config{
			Name:  "origin",
			URL:   "https://example.com/repo.git",
			Fetch: "refs/heads/*", // no separator
		})

		_, err := remote.Load(store, &testutils.Transport{}, "origin")
		assert.ErrorIs(t, err, remote.ErrInvalidArgument)
	})
}

func TestRemote_Rename(t *testing.T) {
	t.Run("Success - Persisted Only On Save", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		require.NoError(t, r.Rename("upstream"))
		assert.Equal(t, "upstream", r.Name())

		// not yet persisted
		names, err := store.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"origin"}, names)

		require.NoError(t, r.Save())
		names, err = store.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"upstream"}, names)

		// the old definition is gone, the new one carries the identity over
		_, err = store.Remote("origin")
		assert.ErrorIs(t, err, remote.ErrNotFound)
		cfg, err := store.Remote("upstream")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/repo.git", cfg.URL)
		assert.Equal(t, "+refs/heads/*:refs/remotes/origin/*", cfg.Fetch)
	})

	t.Run("Collision", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig(), &remote.Config{
			Name: "backup",
			URL:  "https://backup.example.com/repo.git",
		})

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		err = r.Rename("backup")
		assert.ErrorIs(t, err, remote.ErrInvalidArgument)
		assert.Equal(t, "origin", r.Name(), "original name remains intact")
	})

	t.Run("Invalid Shape", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		for _, name := range []string{"", "up/stream", "up stream", "-origin", "origin.lock", "a:b"} {
			err := r.Rename(name)
			assert.ErrorIs(t, err, remote.ErrInvalidArgument, "name %q", name)
		}
		assert.Equal(t, "origin", r.Name())
	})

	t.Run("Same Name", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)
		assert.NoError(t, r.Rename("origin"))
	})
}

func TestRemote_SetURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		require.NoError(t, r.SetURL("ssh://git@example.com/repo.git"))
		assert.Equal(t, "ssh://git@example.com/repo.git", r.URL())
	})

	t.Run("Malformed", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		err = r.SetURL("https://exa mple.com/repo.git")
		assert.ErrorIs(t, err, remote.ErrInvalidArgument)
		assert.Equal(t, "https://example.com/repo.git", r.URL(), "handle unchanged on failure")
	})

	t.Run("Empty", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)
		assert.ErrorIs(t, r.SetURL(""), remote.ErrInvalidArgument)
	})
}

func TestRemote_FetchRefspec(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		store := testutils.NewConfigStore(t, &remote.Config{
			Name: "origin",
			URL:  "https://example.com/repo.git",
		})

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		_, _, err = r.FetchRefspec()
		assert.ErrorIs(t, err, remote.ErrNotFound)
	})

	t.Run("Set Then Get", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		require.NoError(t, r.SetFetchRefspec("refs/heads/main", "refs/remotes/origin/main"))

		src, dst, err := r.FetchRefspec()
		require.NoError(t, err)
		assert.Equal(t, "refs/heads/main", src)
		assert.Equal(t, "refs/remotes/origin/main", dst)
	})

	t.Run("Stored Forced", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		require.NoError(t, r.SetFetchRefspec("refs/heads/main", "refs/remotes/origin/main"))
		require.NoError(t, r.Save())

		cfg, err := store.Remote("origin")
		require.NoError(t, err)
		assert.Equal(t, "+refs/heads/main:refs/remotes/origin/main", cfg.Fetch)

		spec, err := refspec.Parse(cfg.Fetch, refspec.Fetch)
		require.NoError(t, err)
		assert.True(t, spec.IsForced())
	})

	t.Run("Empty Side", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		assert.ErrorIs(t, r.SetFetchRefspec("", "refs/remotes/origin/main"), remote.ErrInvalidArgument)
		assert.ErrorIs(t, r.SetFetchRefspec("refs/heads/main", ""), remote.ErrInvalidArgument)
	})

	t.Run("Malformed Side", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		// wildcard on one side only
		err = r.SetFetchRefspec("refs/heads/*", "refs/remotes/origin/main")
		assert.ErrorIs(t, err, remote.ErrInvalidArgument)
	})
}

func TestRemote_Save(t *testing.T) {
	t.Run("URL Survives Reload", func(t *testing.T) {
		store := testutils.NewConfigStore(t, originConfig())

		r, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)

		require.NoError(t, r.SetURL("https://example.com/repo.git"))
		require.NoError(t, r.Save())

		fresh, err := remote.Load(store, &testutils.Transport{}, "origin")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/repo.git", fresh.URL())
	})
}
