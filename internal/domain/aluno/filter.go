package aluno

import "strings"

// FilterByName returns the subset of alunos whose Nome contains term,
// case-insensitively. An empty term returns the full set. Pure; the input
// slice is never mutated.
func FilterByName(alunos []Aluno, term string) []Aluno {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return alunos
	}

	filtered := make([]Aluno, 0, len(alunos))
	for _, a := range alunos {
		if strings.Contains(strings.ToLower(a.Nome), term) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
