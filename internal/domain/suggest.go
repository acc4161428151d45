package domain

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Suggest returns the candidates that fuzzily match name, best first.
func Suggest(name string, candidates []string) []string {
	if name == "" || len(candidates) == 0 {
		return nil
	}

	lowered := make([]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = strings.ToLower(c)
	}

	matches := fuzzy.Find(strings.ToLower(name), lowered)

	var out []string
	for _, m := range matches {
		out = append(out, candidates[m.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}
