package deployments

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
)

// DeploymentsFile is the manifest file inside the data directory
const DeploymentsFile = "deployments.json"

// manifest maps network name to contract name to instance
type manifest map[string]map[string]*models.Instance

// FileRepository stores deployed instances in <data dir>/deployments.json.
// The file is read on first use and rewritten on every save.
type FileRepository struct {
	dataDir  string
	mu       sync.Mutex
	loaded   bool
	manifest manifest
}

// NewFileRepository creates a new manifest store
func NewFileRepository(cfg *config.RuntimeConfig) *FileRepository {
	return &FileRepository{dataDir: cfg.DataDir}
}

// GetDeployment returns the recorded instance of a contract on a network
func (r *FileRepository) GetDeployment(ctx context.Context, network, contract string) (*models.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	inst, ok := r.manifest[network][contract]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *inst
	return &copied, nil
}

// ListDeployments returns every instance recorded for a network, oldest first
func (r *FileRepository) ListDeployments(ctx context.Context, network string) ([]*models.Instance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return nil, err
	}

	var result []*models.Instance
	for _, inst := range r.manifest[network] {
		copied := *inst
		result = append(result, &copied)
	}
	slices.SortFunc(result, func(a, b *models.Instance) int {
		if c := a.DeployedAt.Compare(b.DeployedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ContractName, b.ContractName)
	})
	return result, nil
}

// SaveDeployment records an instance, replacing any earlier one of the same
// contract on the same network
func (r *FileRepository) SaveDeployment(ctx context.Context, inst *models.Instance) error {
	if inst.Network == "" || inst.ContractName == "" {
		return fmt.Errorf("deployment needs a network and contract name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.load(); err != nil {
		return err
	}

	if r.manifest[inst.Network] == nil {
		r.manifest[inst.Network] = make(map[string]*models.Instance)
	}
	copied := *inst
	r.manifest[inst.Network][inst.ContractName] = &copied

	return r.save()
}

// load reads the manifest once; a missing file is an empty manifest
func (r *FileRepository) load() error {
	if r.loaded {
		return nil
	}

	r.manifest = make(manifest)
	data, err := os.ReadFile(r.path())
	if err != nil {
		if os.IsNotExist(err) {
			r.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json.Unmarshal(data, &r.manifest); err != nil {
			return fmt.Errorf("failed to parse %s: %w", r.path(), err)
		}
	}

	r.loaded = true
	return nil
}

func (r *FileRepository) save() error {
	if err := os.MkdirAll(r.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(r.manifest, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	path := r.path()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

func (r *FileRepository) path() string {
	return filepath.Join(r.dataDir, DeploymentsFile)
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)
