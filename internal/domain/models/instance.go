package models

import "time"

// Instance is a contract that exists on chain after a successful deployment
type Instance struct {
	ContractName    string    `json:"contractName"`
	Address         string    `json:"address"`
	TransactionHash string    `json:"transactionHash,omitempty"`
	BlockNumber     uint64    `json:"blockNumber,omitempty"`
	ChainID         uint64    `json:"chainId"`
	Network         string    `json:"network"`
	Args            []string  `json:"args,omitempty"`
	DeployedAt      time.Time `json:"deployedAt"`

	// Reused is set when the instance came from a previous run
	Reused bool `json:"-"`
}
