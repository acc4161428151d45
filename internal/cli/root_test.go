package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// returnsFortyTwo deploys runtime code that returns 42; constructor
// arguments appended to it are ignored.
const returnsFortyTwo = "0x600a600c600039600a6000f3602a60005260206000f3"

const addressCtorABI = `[{"type":"constructor","inputs":[{"name":"ip","type":"address"}]}]`

const beldexETHABI = `[{"type":"constructor","inputs":[
	{"name":"transfer","type":"address"},
	{"name":"redeem","type":"address"},
	{"name":"amount","type":"uint256"}
]}]`

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "beldex.toml"), []byte(`
[networks.beldex-testnet]
rpc_url = "http://127.0.0.1:1"
chain_id = 9999
`), 0644))

	artifactsDir := filepath.Join(dir, "build", "contracts")
	require.NoError(t, os.MkdirAll(artifactsDir, 0755))

	artifacts := map[string]string{
		"Utils":          `[]`,
		"BeldexIP":       `[]`,
		"BeldexRedeem":   addressCtorABI,
		"BeldexTransfer": addressCtorABI,
		"BeldexETH":      beldexETHABI,
	}
	for name, abi := range artifacts {
		content, err := json.Marshal(map[string]any{
			"contractName": name,
			"abi":          json.RawMessage(abi),
			"bytecode":     returnsFortyTwo,
		})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(artifactsDir, name+".json"), content, 0644))
	}

	t.Chdir(dir)
	return dir
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDeployCommand(t *testing.T) {
	t.Run("dry run deploys every stage in order", func(t *testing.T) {
		dir := setupProject(t)

		out, err := runCommand(t, "deploy", "--dry-run", "--non-interactive")
		require.NoError(t, err)

		stage1 := bytes.Index([]byte(out), []byte("[1/3] Deploying Utils, TestBeldexToken, BeldexIP..."))
		stage2 := bytes.Index([]byte(out), []byte("[2/3] Deploying BeldexRedeem, BeldexTransfer..."))
		stage3 := bytes.Index([]byte(out), []byte("[3/3] Deploying BeldexETH"))
		require.NotEqual(t, -1, stage1, out)
		assert.Less(t, stage1, stage2)
		assert.Less(t, stage2, stage3)

		assert.Contains(t, out, "Deployed beldex to simulated")
		assert.Contains(t, out, "Stages completed: 3/3")
		assert.Contains(t, out, "Contracts deployed: 5")
		assert.Contains(t, out, "were not recorded")

		assert.NoFileExists(t, filepath.Join(dir, ".beldex", "deployments.json"))
	})

	t.Run("missing artifact fails before deploying", func(t *testing.T) {
		dir := setupProject(t)
		require.NoError(t, os.Remove(filepath.Join(dir, "build", "contracts", "BeldexETH.json")))

		out, err := runCommand(t, "deploy", "--dry-run", "--non-interactive")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "artifact not found")
		assert.NotContains(t, out, "[1/3]")
	})

	t.Run("no network outside dry run", func(t *testing.T) {
		setupProject(t)

		_, err := runCommand(t, "deploy", "--non-interactive")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network not found")
	})

	t.Run("unknown network suggests close names", func(t *testing.T) {
		setupProject(t)

		_, err := runCommand(t, "deploy", "--non-interactive", "--network", "beldex-tesnet")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "beldex-testnet")
	})
}

func TestPlanCommand(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "plan")
	require.NoError(t, err)

	assert.Contains(t, out, "3 stages, 5 contracts")
	for _, name := range []string{"Utils", "BeldexIP", "BeldexRedeem", "BeldexTransfer", "BeldexETH"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, `@BeldexTransfer, @BeldexRedeem, "10000000000000000"`)
	assert.NotContains(t, out, "missing")
}

func TestStatusCommand(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "status", "--offline", "--network", "development")
	require.NoError(t, err)
	assert.Contains(t, out, "No deployments recorded on development")
}

func TestStatusCommand_SingleConfiguredNetwork(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "status", "--offline")
	require.NoError(t, err)
	assert.Contains(t, out, "No deployments recorded on beldex-testnet")
}

func TestNetworksCommand(t *testing.T) {
	setupProject(t)

	out, err := runCommand(t, "networks")
	require.NoError(t, err)
	assert.Contains(t, out, "beldex-testnet - http://127.0.0.1:1 (Chain ID: 9999)")
	assert.Contains(t, out, "development - http://127.0.0.1:8545 (chain ID from RPC)")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "beldex-deploy version dev\n", out)
}

func TestRootCmd_ReleasesContextWhenCommandFails(t *testing.T) {
	setupProject(t)
	color.NoColor = true

	var runCtx context.Context
	failing := &cobra.Command{
		Use: "failing",
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx = cmd.Context()
			_, err := getApp(cmd)
			require.NoError(t, err)
			return errors.New("boom")
		},
	}

	root := NewRootCmd()
	root.AddCommand(failing)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"failing", "--non-interactive"})

	require.EqualError(t, root.Execute(), "boom")
	require.NotNil(t, runCtx)
	assert.ErrorIs(t, runCtx.Err(), context.Canceled)
}
