package contracts

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0644))
}

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()
	dir := t.TempDir()
	repo := NewRepository(&config.RuntimeConfig{ArtifactsDir: dir}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return repo, dir
}

func TestRepository_GetArtifact(t *testing.T) {
	ctx := context.Background()

	t.Run("truffle layout", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "BeldexIP", `{"contractName":"BeldexIP","abi":[],"bytecode":"0x6080"}`)

		artifact, err := repo.GetArtifact(ctx, "BeldexIP")
		require.NoError(t, err)
		assert.Equal(t, "BeldexIP", artifact.ContractName)
		assert.Equal(t, "0x6080", artifact.Bytecode.String())
		assert.Equal(t, filepath.Join(dir, "BeldexIP.json"), artifact.SourcePath)
	})

	t.Run("forge layout without contract name", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "Utils", `{"abi":[],"bytecode":{"object":"0x6080"}}`)

		artifact, err := repo.GetArtifact(ctx, "Utils")
		require.NoError(t, err)
		assert.Equal(t, "Utils", artifact.ContractName)
	})

	t.Run("cached after first read", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "Utils", `{"abi":[],"bytecode":"0x6080"}`)

		first, err := repo.GetArtifact(ctx, "Utils")
		require.NoError(t, err)
		require.NoError(t, os.Remove(filepath.Join(dir, "Utils.json")))

		second, err := repo.GetArtifact(ctx, "Utils")
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("missing artifact suggests close names", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "BeldexRedeem", `{"abi":[],"bytecode":"0x6080"}`)

		_, err := repo.GetArtifact(ctx, "BeldexRedem")
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)

		var notFound domain.NotFoundWithSuggestions
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, []string{"BeldexRedeem"}, notFound.Suggestions)
	})

	t.Run("name mismatch", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "BeldexETH", `{"contractName":"BeldexToken","abi":[],"bytecode":"0x6080"}`)

		_, err := repo.GetArtifact(ctx, "BeldexETH")
		assert.ErrorContains(t, err, "declares contract BeldexToken")
	})

	t.Run("abstract contract has no bytecode", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "IBeldex", `{"abi":[],"bytecode":"0x"}`)

		_, err := repo.GetArtifact(ctx, "IBeldex")
		assert.ErrorContains(t, err, "not deployable")
	})

	t.Run("malformed json", func(t *testing.T) {
		repo, dir := newTestRepository(t)
		writeArtifact(t, dir, "Utils", `{`)

		_, err := repo.GetArtifact(ctx, "Utils")
		assert.ErrorContains(t, err, "failed to parse artifact")
	})
}

func TestRepository_ListArtifacts(t *testing.T) {
	ctx := context.Background()

	repo, dir := newTestRepository(t)
	writeArtifact(t, dir, "Utils", `{}`)
	writeArtifact(t, dir, "BeldexIP", `{}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "build-info"), 0755))

	names, err := repo.ListArtifacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"BeldexIP", "Utils"}, names)

	missing := NewRepository(&config.RuntimeConfig{ArtifactsDir: filepath.Join(dir, "nope")}, slog.Default())
	names, err = missing.ListArtifacts(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
