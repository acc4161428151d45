package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
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

// Repository reads compiled artifacts from the artifacts directory. Each
// contract lives in <dir>/<ContractName>.json, the layout truffle writes.
type Repository struct {
	dir       string
	log       *slog.Logger
	mu        sync.RWMutex
	artifacts map[string]*models.Artifact
}

// NewRepository creates a new artifact repository
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return &Repository{
		dir:       cfg.ArtifactsDir,
		log:       log.With("component", "artifacts"),
		artifacts: make(map[string]*models.Artifact),
	}
}

// GetArtifact loads an artifact by contract name
func (r *Repository) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	r.mu.RLock()
	artifact, ok := r.artifacts[name]
	r.mu.RUnlock()
	if ok {
		return artifact, nil
	}

	path := filepath.Join(r.dir, name+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		available, _ := r.ListArtifacts(ctx)
		return nil, domain.NotFoundWithSuggestions{
			Kind:        domain.ErrArtifactNotFound,
			Name:        name,
			Suggestions: domain.Suggest(name, available),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	artifact = &models.Artifact{}
	if err := json.Unmarshal(data, artifact); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if artifact.ContractName == "" {
		artifact.ContractName = name
	}
	if artifact.ContractName != name {
		return nil, fmt.Errorf("artifact %s declares contract %s", path, artifact.ContractName)
	}
	if _, err := artifact.Bytecode.Bytes(); err != nil {
		return nil, fmt.Errorf("artifact %s is not deployable: %w", name, err)
	}
	artifact.SourcePath = path

	r.log.Debug("loaded artifact", "contract", name, "path", path)

	r.mu.Lock()
	r.artifacts[name] = artifact
	r.mu.Unlock()

	return artifact, nil
}

// ListArtifacts returns the names of all artifacts in the directory, sorted
func (r *Repository) ListArtifacts(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read artifacts directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	slices.Sort(names)
	return names, nil
}

var _ usecase.ArtifactRepository = (*Repository)(nil)
