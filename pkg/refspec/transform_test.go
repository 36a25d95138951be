package refspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string, dir Direction) *RefSpec {
	t.Helper()
	spec, err := Parse(raw, dir)
	require.NoError(t, err)
	return spec
}

func TestRefSpec_Transform(t *testing.T) {
	t.Run("Wildcard", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		out, err := spec.Transform("refs/heads/feature/login")
		assert.NoError(t, err)
		assert.Equal(t, "refs/remotes/origin/feature/login", out)
	})

	t.Run("Exact", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/main:refs/remotes/origin/main", Fetch)

		out, err := spec.Transform("refs/heads/main")
		assert.NoError(t, err)
		assert.Equal(t, "refs/remotes/origin/main", out)
	})

	t.Run("No Match", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		_, err := spec.Transform("refs/tags/v1.0.0")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("Empty Name", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		_, err := spec.Transform("")
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestRefSpec_RTransform(t *testing.T) {
	t.Run("Wildcard", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		out, err := spec.RTransform("refs/remotes/origin/main")
		assert.NoError(t, err)
		assert.Equal(t, "refs/heads/main", out)
	})

	t.Run("No Match", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		_, err := spec.RTransform("refs/heads/main")
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("Inverse Of Transform", func(t *testing.T) {
		spec := mustParse(t, "+refs/heads/*:refs/remotes/origin/*", Fetch)

		names := []string{
			"refs/heads/main",
			"refs/heads/feature/a/b/c",
			"refs/heads/x",
		}
		for _, name := range names {
			dst, err := spec.Transform(name)
			require.NoError(t, err)

			src, err := spec.RTransform(dst)
			require.NoError(t, err)
			assert.Equal(t, name, src)
		}
	})

	t.Run("Transform Of RTransform", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		dst := "refs/remotes/origin/release/2.0"
		src, err := spec.RTransform(dst)
		require.NoError(t, err)

		out, err := spec.Transform(src)
		require.NoError(t, err)
		assert.Equal(t, dst, out)
	})
}

func TestRefSpec_Matches(t *testing.T) {
	t.Run("Wildcard", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/*:refs/remotes/origin/*", Fetch)

		assert.True(t, spec.SrcMatches("refs/heads/main"))
		assert.True(t, spec.SrcMatches("refs/heads/"))
		assert.False(t, spec.SrcMatches("refs/tags/v1"))

		assert.True(t, spec.DstMatches("refs/remotes/origin/main"))
		assert.False(t, spec.DstMatches("refs/heads/main"))
	})

	t.Run("Exact", func(t *testing.T) {
		spec := mustParse(t, "refs/heads/main:refs/remotes/origin/main", Fetch)

		assert.True(t, spec.SrcMatches("refs/heads/main"))
		assert.False(t, spec.SrcMatches("refs/heads/maine"))
		assert.False(t, spec.SrcMatches(""))
	})
}
