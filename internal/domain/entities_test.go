package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoria_Validate(t *testing.T) {
	tests := []struct {
		name    string
		nome    string
		wantErr bool
	}{
		{"valid name", "Viagens", false},
		{"exactly three characters", "Lar", false},
		{"too short", "Ab", true},
		{"whitespace only", "   ", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Categoria{CategoriaID: 1, Nome: tt.nome}
			err := c.Validate()

			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCategoriaUpdate_Validate(t *testing.T) {
	short := "Ab"
	ok := "Esportes"

	assert.NoError(t, (&CategoriaUpdate{}).Validate())
	assert.NoError(t, (&CategoriaUpdate{Nome: &ok}).Validate())
	assert.ErrorIs(t, (&CategoriaUpdate{Nome: &short}).Validate(), ErrValidation)
}

func TestMemoria_Validate(t *testing.T) {
	valid := Memoria{
		Titulo: "Viagem para Paris",
		Data:   time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC),
	}

	t.Run("valid", func(t *testing.T) {
		m := valid
		require.NoError(t, m.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		m := valid
		m.Titulo = "  "
		require.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("missing date", func(t *testing.T) {
		m := valid
		m.Data = time.Time{}
		require.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("malformed pessoa id", func(t *testing.T) {
		m := valid
		m.PessoaID = "not-an-id"
		require.ErrorIs(t, m.Validate(), ErrValidation)
	})

	t.Run("valid pessoa id", func(t *testing.T) {
		m := valid
		m.PessoaID = "507f1f77bcf86cd799439011"
		require.NoError(t, m.Validate())
	})
}

func TestPessoa_Validate(t *testing.T) {
	p := Pessoa{Nome: "João Silva", DataNascimento: time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, p.Validate())

	p.Nome = ""
	require.ErrorIs(t, p.Validate(), ErrValidation)

	p = Pessoa{Nome: "Maria Oliveira"}
	require.ErrorIs(t, p.Validate(), ErrValidation)
}

func TestGrupo_Membership(t *testing.T) {
	g := Grupo{
		Nome: "Amigos da Faculdade",
		Pessoas: []PessoaRef{
			{ID: "507f1f77bcf86cd799439011", Nome: "João Silva"},
			{ID: "507f1f77bcf86cd799439012", Nome: "Maria Oliveira"},
		},
	}

	assert.True(t, g.HasPessoa("507f1f77bcf86cd799439011"))
	assert.False(t, g.HasPessoa("507f1f77bcf86cd799439099"))

	kept := g.RemovePessoa("507f1f77bcf86cd799439011")
	require.Len(t, kept, 1)
	assert.Equal(t, "Maria Oliveira", kept[0].Nome)

	// Removing an unknown member leaves the list unchanged.
	assert.Len(t, g.RemovePessoa("507f1f77bcf86cd799439099"), 2)
}

func TestIsID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"valid lowercase", "507f1f77bcf86cd799439011", true},
		{"valid uppercase", "507F1F77BCF86CD799439011", true},
		{"too short", "507f1f77bcf86cd7994390", false},
		{"too long", "507f1f77bcf86cd79943901122", false},
		{"non-hex characters", "507f1f77bcf86cd79943901z", false},
		{"empty", "", false},
		{"numeric id", "42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsID(tt.input))
		})
	}
}

func TestTruncateToDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2023, 7, 15, 22, 45, 12, 999, loc)

	out := TruncateToDay(in)

	assert.Equal(t, time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), out)
	assert.Equal(t, time.UTC, out.Location())
}
