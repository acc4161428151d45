package render

import "github.com/beldex-coin/beldex-deploy/internal/usecase"

// Renderer writes the result of a use case
type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ShowPlanResult]     = (*PlanRenderer)(nil)
	_ Renderer[*usecase.ShowStatusResult]   = (*StatusRenderer)(nil)
	_ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
)
