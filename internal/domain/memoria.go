package domain

import (
	"strings"
	"time"
)

// Memoria is a recorded personal memory: what happened, when, and how it felt.
// It may reference one Categoria (by numeric id) and one Pessoa (by storage id).
type Memoria struct {
	// ID is the storage identifier (hex ObjectID rendered as string).
	ID string

	// Titulo is the memory's title.
	Titulo string

	// Descricao describes the event in detail.
	Descricao string

	// Data is the calendar date of the event, normalized to UTC midnight.
	Data time.Time

	// Emocao is the emotion label associated with the memory (e.g. "Feliz").
	Emocao string

	// CategoriaID optionally references a Categoria by its numeric id.
	CategoriaID *int

	// PessoaID optionally references a Pessoa by its storage id.
	PessoaID string
}

// Validate checks the memory's business rules.
func (m *Memoria) Validate() error {
	if strings.TrimSpace(m.Titulo) == "" {
		return NewValidationError("titulo", "must not be empty")
	}

	if m.Data.IsZero() {
		return NewValidationError("data", "is required")
	}

	if m.PessoaID != "" && !IsID(m.PessoaID) {
		return NewValidationError("pessoa_id", "must be a valid id")
	}

	return nil
}

// MemoriaUpdate carries a partial update. Nil fields are left untouched.
type MemoriaUpdate struct {
	Titulo      *string
	Descricao   *string
	Data        *time.Time
	Emocao      *string
	CategoriaID *int
	PessoaID    *string
}

// MemoriaFilter selects memories for listing queries.
// Zero-valued fields do not constrain the result.
type MemoriaFilter struct {
	// CategoriaID filters by numeric category id.
	CategoriaID *int

	// PessoaID filters by the referenced person's storage id.
	PessoaID string

	// Emocao filters by exact emotion label.
	Emocao string

	// DataInicio and DataFim bound the event date (inclusive).
	DataInicio *time.Time
	DataFim    *time.Time

	// TituloContem matches titles containing the text, case-insensitively.
	TituloContem string

	// OrderByDataDesc sorts results by event date, newest first.
	OrderByDataDesc bool
}

// TruncateToDay normalizes a timestamp to UTC midnight. Memory event dates and
// birth dates are calendar dates; storing them at midnight keeps range queries
// exact regardless of the wall-clock time the client sent.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
