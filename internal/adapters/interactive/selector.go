package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beldex-coin/beldex-deploy/internal/domain/config"
	"github.com/beldex-coin/beldex-deploy/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive prompts
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork asks the user to pick one of the configured networks
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, names []string) (string, error) {
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(names) == 0 {
		return "", fmt.Errorf("no networks to select from")
	}

	if len(names) == 1 {
		return names[0], nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     "Select network",
		Items:     names,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(names),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return names[index], nil
}

// Confirm asks a yes/no question; anything but yes is a no
func (s *SelectorAdapter) Confirm(ctx context.Context, label string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}

	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	return true, nil
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.Confirmer       = (*SelectorAdapter)(nil)
	_ usecase.NetworkSelector = (*SelectorAdapter)(nil)
)
