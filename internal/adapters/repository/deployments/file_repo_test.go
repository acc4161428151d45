package deployments_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/beldex-coin/beldex-deploy/internal/adapters/repository/deployments"
	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	ctx := context.Background()

	newRepo := func(t *testing.T) (*deployments.FileRepository, string) {
		dataDir := filepath.Join(t.TempDir(), ".beldex")
		return deployments.NewFileRepository(&config.RuntimeConfig{DataDir: dataDir}), dataDir
	}

	t.Run("save and retrieve", func(t *testing.T) {
		repo, dataDir := newRepo(t)

		inst := &models.Instance{
			ContractName:    "BeldexIP",
			Address:         "0x1234567890123456789012345678901234567890",
			TransactionHash: "0xabcd",
			ChainID:         31337,
			Network:         "development",
			DeployedAt:      time.Now().UTC().Truncate(time.Second),
		}
		require.NoError(t, repo.SaveDeployment(ctx, inst))

		got, err := repo.GetDeployment(ctx, "development", "BeldexIP")
		require.NoError(t, err)
		assert.Equal(t, inst, got)

		// A fresh repository reads what the first one wrote
		reopened := deployments.NewFileRepository(&config.RuntimeConfig{DataDir: dataDir})
		got, err = reopened.GetDeployment(ctx, "development", "BeldexIP")
		require.NoError(t, err)
		assert.Equal(t, inst.Address, got.Address)

		_, err = os.Stat(filepath.Join(dataDir, deployments.DeploymentsFile+".tmp"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("file layout is network then contract", func(t *testing.T) {
		repo, dataDir := newRepo(t)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "sepolia", Address: "0x01"}))

		data, err := os.ReadFile(filepath.Join(dataDir, deployments.DeploymentsFile))
		require.NoError(t, err)

		var raw map[string]map[string]map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Equal(t, "0x01", raw["sepolia"]["Utils"]["address"])
	})

	t.Run("not found", func(t *testing.T) {
		repo, dataDir := newRepo(t)

		_, err := repo.GetDeployment(ctx, "development", "Utils")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// Reads never create the data directory
		_, err = os.Stat(dataDir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("list is scoped to network and ordered", func(t *testing.T) {
		repo, _ := newRepo(t)
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "BeldexETH", Network: "dev", DeployedAt: base.Add(2 * time.Minute)}))
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "dev", DeployedAt: base}))
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "BeldexIP", Network: "dev", DeployedAt: base}))
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "other", DeployedAt: base}))

		list, err := repo.ListDeployments(ctx, "dev")
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "BeldexIP", list[0].ContractName)
		assert.Equal(t, "Utils", list[1].ContractName)
		assert.Equal(t, "BeldexETH", list[2].ContractName)
	})

	t.Run("later save replaces earlier one", func(t *testing.T) {
		repo, _ := newRepo(t)
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "dev", Address: "0x01"}))
		require.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "dev", Address: "0x02"}))

		got, err := repo.GetDeployment(ctx, "dev", "Utils")
		require.NoError(t, err)
		assert.Equal(t, "0x02", got.Address)
	})

	t.Run("concurrent saves", func(t *testing.T) {
		repo, dataDir := newRepo(t)

		names := []string{"Utils", "BeldexIP", "BeldexRedeem", "BeldexTransfer", "BeldexETH"}
		var wg sync.WaitGroup
		for _, name := range names {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: name, Network: "dev"}))
			}()
		}
		wg.Wait()

		reopened := deployments.NewFileRepository(&config.RuntimeConfig{DataDir: dataDir})
		list, err := reopened.ListDeployments(ctx, "dev")
		require.NoError(t, err)
		assert.Len(t, list, len(names))
	})

	t.Run("rejects incomplete instance", func(t *testing.T) {
		repo, _ := newRepo(t)
		assert.Error(t, repo.SaveDeployment(ctx, &models.Instance{ContractName: "Utils"}))
	})

	t.Run("corrupt manifest", func(t *testing.T) {
		repo, dataDir := newRepo(t)
		require.NoError(t, os.MkdirAll(dataDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, deployments.DeploymentsFile), []byte("{"), 0644))

		_, err := repo.ListDeployments(ctx, "dev")
		assert.ErrorContains(t, err, "failed to parse")
	})
}
