package domain

import (
	"strings"
	"time"
)

// Pessoa is a person associated with recorded memories. Nome is unique and
// doubles as an alternative lookup key alongside the storage id.
type Pessoa struct {
	// ID is the storage identifier (hex ObjectID rendered as string).
	ID string

	// Nome is the person's full name, unique across the collection.
	Nome string

	// DataNascimento is the birth date, normalized to UTC midnight.
	DataNascimento time.Time
}

// Validate checks the person's business rules.
func (p *Pessoa) Validate() error {
	if strings.TrimSpace(p.Nome) == "" {
		return NewValidationError("nome", "must not be empty")
	}

	if p.DataNascimento.IsZero() {
		return NewValidationError("data_nascimento", "is required")
	}

	return nil
}

// PessoaDetalhe is a Pessoa together with the ids of memories referencing it.
type PessoaDetalhe struct {
	Pessoa

	// MemoriaIDs are the storage ids of memories referencing this person.
	MemoriaIDs []string
}

// PessoaUpdate carries a partial update. Nil fields are left untouched.
type PessoaUpdate struct {
	Nome           *string
	DataNascimento *time.Time
}

// Validate checks update fields that are present.
func (u *PessoaUpdate) Validate() error {
	if u.Nome != nil && strings.TrimSpace(*u.Nome) == "" {
		return NewValidationError("nome", "must not be empty")
	}

	return nil
}
