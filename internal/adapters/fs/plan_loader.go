package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/domain/models"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"gopkg.in/yaml.v3"
)

// PlanLoader reads deployment plans from YAML files
type PlanLoader struct {
	projectRoot string
}

// NewPlanLoader creates a new PlanLoader
func NewPlanLoader(cfg *config.RuntimeConfig) *PlanLoader {
	return &PlanLoader{projectRoot: cfg.ProjectRoot}
}

// LoadPlan returns the built-in Beldex plan for an empty path, otherwise
// parses the file. Relative paths are taken from the project root.
func (l *PlanLoader) LoadPlan(ctx context.Context, path string) (*models.Plan, error) {
	if path == "" {
		return models.BeldexPlan(), nil
	}

	path = resolvePath(l.projectRoot, path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan: %w", err)
	}
	defer f.Close()

	var plan models.Plan
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s is empty", domain.ErrInvalidPlan, path)
		}
		return nil, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrInvalidPlan, path, err)
	}

	return &plan, nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}

var _ usecase.PlanLoader = (*PlanLoader)(nil)
