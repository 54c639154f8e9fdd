package aluno

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByName(t *testing.T) {
	alunos := []Aluno{
		{ID: "1", Nome: "Ana Silva"},
		{ID: "2", Nome: "Bruno Costa"},
		{ID: "3", Nome: "Mariana Souza"},
	}

	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{
			name:      "empty term returns the full set",
			term:      "",
			wantNames: []string{"Ana Silva", "Bruno Costa", "Mariana Souza"},
		},
		{
			name:      "case-insensitive substring match",
			term:      "ana",
			wantNames: []string{"Ana Silva", "Mariana Souza"},
		},
		{
			name:      "exact prefix",
			term:      "Bruno",
			wantNames: []string{"Bruno Costa"},
		},
		{
			name:      "uppercase term",
			term:      "SILVA",
			wantNames: []string{"Ana Silva"},
		},
		{
			name:      "no match",
			term:      "carlos",
			wantNames: []string{},
		},
		{
			name:      "whitespace-only term returns the full set",
			term:      "   ",
			wantNames: []string{"Ana Silva", "Bruno Costa", "Mariana Souza"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByName(alunos, tt.term)

			names := make([]string, 0, len(got))
			for _, a := range got {
				names = append(names, a.Nome)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterByName_DoesNotMutateInput(t *testing.T) {
	alunos := []Aluno{
		{ID: "1", Nome: "Ana Silva"},
		{ID: "2", Nome: "Bruno Costa"},
	}

	_ = FilterByName(alunos, "ana")

	assert.Equal(t, "Ana Silva", alunos[0].Nome)
	assert.Equal(t, "Bruno Costa", alunos[1].Nome)
	assert.Len(t, alunos, 2)
}

func TestFilterByName_Empty(t *testing.T) {
	assert.Empty(t, FilterByName(nil, "ana"))
	assert.Empty(t, FilterByName([]Aluno{}, ""))
}
