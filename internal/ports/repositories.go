// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// Page bounds a listing query. A Limit of zero or less means no limit.
type Page struct {
	Limit int64
	Skip  int64
}

// CategoriaRepository persists categories.
type CategoriaRepository interface {
	// Insert stores a new category and returns it with its assigned id.
	// Returns domain.ErrConflict if the numeric categoria_id is already taken.
	Insert(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error)

	// List returns categories in insertion order, bounded by page.
	List(ctx context.Context, page Page) ([]domain.Categoria, error)

	// GetByID retrieves a category by its storage id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Categoria, error)

	// GetByCategoriaID retrieves a category by its user-assigned numeric id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByCategoriaID(ctx context.Context, categoriaID int) (*domain.Categoria, error)

	// Update applies a partial update to the category with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id string, update domain.CategoriaUpdate) error

	// Delete removes the category with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// MemoriaRepository persists memories.
type MemoriaRepository interface {
	// Insert stores a new memory and returns it with its assigned id.
	Insert(ctx context.Context, memoria *domain.Memoria) (*domain.Memoria, error)

	// GetByID retrieves a memory by its storage id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Memoria, error)

	// List returns memories matching the filter, bounded by page.
	List(ctx context.Context, filter domain.MemoriaFilter, page Page) ([]domain.Memoria, error)

	// Update applies a partial update to the memory with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id string, update domain.MemoriaUpdate) error

	// Delete removes the memory with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error

	// CountByCategoria counts memories referencing the numeric category id.
	CountByCategoria(ctx context.Context, categoriaID int) (int64, error)

	// CountByPessoa counts memories referencing the person's storage id.
	CountByPessoa(ctx context.Context, pessoaID string) (int64, error)

	// TotaisPorCategoria aggregates memory counts grouped by category,
	// ordered by count descending.
	TotaisPorCategoria(ctx context.Context) ([]domain.TotalPorCategoria, error)
}

// PessoaRepository persists persons.
type PessoaRepository interface {
	// Insert stores a new person and returns it with its assigned id.
	// Returns domain.ErrConflict if the name is already taken.
	Insert(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error)

	// List returns persons in insertion order, bounded by page.
	List(ctx context.Context, page Page) ([]domain.Pessoa, error)

	// GetByID retrieves a person by its storage id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Pessoa, error)

	// GetByNome retrieves a person by its unique name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByNome(ctx context.Context, nome string) (*domain.Pessoa, error)

	// Update applies a partial update to the person with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, id string, update domain.PessoaUpdate) error

	// Delete removes the person with the given storage id.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// GrupoRepository persists groups and their embedded member references.
type GrupoRepository interface {
	// Insert stores a new group and returns it with its assigned id.
	// Returns domain.ErrConflict if the name is already taken.
	Insert(ctx context.Context, grupo *domain.Grupo) (*domain.Grupo, error)

	// List returns all groups.
	List(ctx context.Context) ([]domain.Grupo, error)

	// GetByID retrieves a group by its storage id.
	// Returns domain.ErrNotFound if it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Grupo, error)

	// UpdatePessoas replaces the group's membership list.
	// Returns domain.ErrNotFound if the group does not exist.
	UpdatePessoas(ctx context.Context, id string, pessoas []domain.PessoaRef) error
}
