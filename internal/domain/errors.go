package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDeploymentFailed is returned when a contract could not be deployed.
	// Network errors, reverts, insufficient funds and bad artifacts all map to it.
	ErrDeploymentFailed = errors.New("deployment failed")

	// ErrArtifactNotFound is returned when no compiled artifact exists for a contract name
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrUnresolvedAddress is returned when a constructor argument references
	// a contract whose address is not known yet
	ErrUnresolvedAddress = errors.New("unresolved address")

	// ErrAlreadyDeployed is returned when a contract is deployed twice in one run
	ErrAlreadyDeployed = errors.New("already deployed")

	// ErrInvalidPlan is returned when a deployment plan fails validation
	ErrInvalidPlan = errors.New("invalid deployment plan")

	// ErrNetworkNotFound is returned when a network is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")
)

// DeploymentError records which contract of which stage failed.
type DeploymentError struct {
	Stage    int
	Contract string
	Err      error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("stage %d: deploy %s: %v", e.Stage, e.Contract, e.Err)
}

// Unwrap exposes both ErrDeploymentFailed and the underlying cause.
func (e *DeploymentError) Unwrap() []error {
	return []error{ErrDeploymentFailed, e.Err}
}

// NotFoundWithSuggestions is returned when a lookup by name misses but
// similarly named candidates exist.
type NotFoundWithSuggestions struct {
	Kind        error
	Name        string
	Suggestions []string
}

func (e NotFoundWithSuggestions) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Name)
	}
	return fmt.Sprintf("%v: %s (did you mean %s?)", e.Kind, e.Name, strings.Join(e.Suggestions, ", "))
}

func (e NotFoundWithSuggestions) Unwrap() error {
	return e.Kind
}
