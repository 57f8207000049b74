// Package domain contains core business entities and rules.
package domain

import "strings"

// MinCategoriaNome is the minimum length for a category name.
const MinCategoriaNome = 3

// Categoria classifies memories. Besides the storage identity it carries a
// user-assigned numeric id (CategoriaID), unique across the collection.
type Categoria struct {
	// ID is the storage identifier (hex ObjectID rendered as string).
	ID string

	// CategoriaID is the user-assigned numeric identifier.
	CategoriaID int

	// Nome is the display name of the category.
	Nome string
}

// Validate checks the category's business rules.
func (c *Categoria) Validate() error {
	if len(strings.TrimSpace(c.Nome)) < MinCategoriaNome {
		return NewValidationError("nome", "must be at least 3 characters")
	}

	return nil
}

// CategoriaResumo is a Categoria enriched with the number of memories that
// reference it. Used by listings.
type CategoriaResumo struct {
	Categoria

	// QuantidadeMemorias is the count of memories classified under this category.
	QuantidadeMemorias int64
}

// CategoriaDetalhe is a Categoria together with the ids of its memories.
type CategoriaDetalhe struct {
	Categoria

	// MemoriaIDs are the storage ids of memories classified under this category.
	MemoriaIDs []string
}

// CategoriaUpdate carries a partial update. Nil fields are left untouched.
type CategoriaUpdate struct {
	Nome        *string
	CategoriaID *int
}

// Validate checks update fields that are present.
func (u *CategoriaUpdate) Validate() error {
	if u.Nome != nil && len(strings.TrimSpace(*u.Nome)) < MinCategoriaNome {
		return NewValidationError("nome", "must be at least 3 characters")
	}

	return nil
}

// TotalPorCategoria is one row of the memories-per-category aggregation.
// CategoriaID is nil for memories without a category.
type TotalPorCategoria struct {
	CategoriaID   *int
	TotalMemorias int64
}
