package config

// ProjectFile is the content of beldex.toml
type ProjectFile struct {
	ArtifactsDir string                   `toml:"artifacts_dir,omitempty"`
	Plan         string                   `toml:"plan,omitempty"`
	Deployer     DeployerConfig           `toml:"deployer"`
	Networks     map[string]NetworkConfig `toml:"networks"`
}

// DeployerConfig holds the account that signs deployment transactions
type DeployerConfig struct {
	PrivateKey string `toml:"private_key,omitempty"`
}

// NetworkConfig is a [networks.<name>] table
type NetworkConfig struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id,omitempty"`
}

// DefaultArtifactsDir is where truffle writes compiled contracts
const DefaultArtifactsDir = "build/contracts"
