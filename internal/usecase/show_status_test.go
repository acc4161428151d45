package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowStatus(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Network: &config.Network{Name: "testnet"}}

	seed := func(t *testing.T) *memManifest {
		manifest := newMemManifest()
		require.NoError(t, manifest.SaveDeployment(ctx, &models.Instance{ContractName: "Utils", Network: "testnet", Address: addrUtils}))
		require.NoError(t, manifest.SaveDeployment(ctx, &models.Instance{ContractName: "BeldexIP", Network: "mainnet", Address: addrIP}))
		return manifest
	}

	t.Run("checks recorded contracts on chain", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("CheckDeployment", ctx, addrUtils).Return(true, nil)

		result, err := usecase.NewShowStatus(cfg, seed(t), checker).Run(ctx, usecase.ShowStatusParams{})
		require.NoError(t, err)

		assert.Equal(t, "testnet", result.Network)
		require.Len(t, result.Deployments, 1)
		status := result.Deployments[0]
		assert.Equal(t, "Utils", status.Instance.ContractName)
		assert.True(t, status.Checked)
		assert.True(t, status.Live)
		checker.AssertExpectations(t)
	})

	t.Run("check errors are reported per contract", func(t *testing.T) {
		checker := new(MockChecker)
		checker.On("CheckDeployment", ctx, addrUtils).Return(false, errors.New("timeout"))

		result, err := usecase.NewShowStatus(cfg, seed(t), checker).Run(ctx, usecase.ShowStatusParams{})
		require.NoError(t, err)

		status := result.Deployments[0]
		assert.False(t, status.Checked)
		assert.EqualError(t, status.Error, "timeout")
	})

	t.Run("offline skips the chain", func(t *testing.T) {
		checker := new(MockChecker)

		result, err := usecase.NewShowStatus(cfg, seed(t), checker).Run(ctx, usecase.ShowStatusParams{Offline: true})
		require.NoError(t, err)

		assert.Len(t, result.Deployments, 1)
		assert.False(t, result.Deployments[0].Checked)
		checker.AssertNotCalled(t, "CheckDeployment", mock.Anything, mock.Anything)
	})

	t.Run("requires a network", func(t *testing.T) {
		_, err := usecase.NewShowStatus(&config.RuntimeConfig{}, seed(t), new(MockChecker)).Run(ctx, usecase.ShowStatusParams{})
		assert.ErrorIs(t, err, domain.ErrNetworkNotFound)
	})
}
