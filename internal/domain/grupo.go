package domain

import "strings"

// PessoaRef is a lightweight projection of a Pessoa embedded in a Grupo.
// It is a reference, not ownership: the person continues to exist outside
// the group, and Memorias holds the titles of their memories as captured
// when the reference was built.
type PessoaRef struct {
	// ID is the referenced person's storage id.
	ID string

	// Nome is the person's name at reference time.
	Nome string

	// Memorias are the titles of the person's memories.
	Memorias []string
}

// Grupo is a named collection of person references.
type Grupo struct {
	// ID is the storage identifier (hex ObjectID rendered as string).
	ID string

	// Nome is the group's name, unique across the collection.
	Nome string

	// Pessoas are the group members as reference projections.
	Pessoas []PessoaRef
}

// Validate checks the group's business rules.
func (g *Grupo) Validate() error {
	if strings.TrimSpace(g.Nome) == "" {
		return NewValidationError("nome", "must not be empty")
	}

	return nil
}

// HasPessoa reports whether the group already references the given person.
func (g *Grupo) HasPessoa(pessoaID string) bool {
	for _, ref := range g.Pessoas {
		if ref.ID == pessoaID {
			return true
		}
	}

	return false
}

// RemovePessoa returns the membership list without the given person.
func (g *Grupo) RemovePessoa(pessoaID string) []PessoaRef {
	kept := make([]PessoaRef, 0, len(g.Pessoas))
	for _, ref := range g.Pessoas {
		if ref.ID != pessoaID {
			kept = append(kept, ref)
		}
	}

	return kept
}
