package usecase

import (
	"fmt"
	"sync"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
)

// addressBook holds the addresses resolved during one run. Each contract is
// written once; later stages only read.
type addressBook struct {
	mu        sync.RWMutex
	addresses map[string]string
}

func newAddressBook() *addressBook {
	return &addressBook{addresses: make(map[string]string)}
}

func (b *addressBook) set(contract, address string) error {
	if address == "" {
		return fmt.Errorf("%w: %s was deployed without an address", domain.ErrUnresolvedAddress, contract)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if prev, exists := b.addresses[contract]; exists {
		return fmt.Errorf("%w: %s at %s", domain.ErrAlreadyDeployed, contract, prev)
	}
	b.addresses[contract] = address
	return nil
}

func (b *addressBook) get(contract string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	addr, ok := b.addresses[contract]
	return addr, ok
}

// resolve turns plan arguments into constructor arguments
func (b *addressBook) resolve(args []models.Arg) ([]string, error) {
	resolved := make([]string, 0, len(args))
	for _, arg := range args {
		if !arg.IsRef() {
			resolved = append(resolved, arg.Value)
			continue
		}
		addr, ok := b.get(arg.Ref)
		if !ok || addr == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnresolvedAddress, arg.Ref)
		}
		resolved = append(resolved, addr)
	}
	return resolved, nil
}
