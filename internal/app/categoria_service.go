// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// countConcurrency bounds how many per-category memory counts run at once
// when building a listing.
const countConcurrency = 8

// CategoriaService orchestrates category use cases.
// It depends on port interfaces, not concrete implementations.
type CategoriaService struct {
	categorias ports.CategoriaRepository
	memorias   ports.MemoriaRepository
	logger     *slog.Logger
}

// CategoriaServiceConfig contains dependencies for the category service.
type CategoriaServiceConfig struct {
	Categorias ports.CategoriaRepository
	Memorias   ports.MemoriaRepository
	Logger     *slog.Logger
}

// NewCategoriaService creates a new category service with the provided dependencies.
func NewCategoriaService(cfg CategoriaServiceConfig) *CategoriaService {
	if cfg.Categorias == nil {
		panic("categoria service requires a categoria repository")
	}

	if cfg.Memorias == nil {
		panic("categoria service requires a memoria repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CategoriaService{
		categorias: cfg.Categorias,
		memorias:   cfg.Memorias,
		logger:     logger,
	}
}

// Create stores a new category after validating its business rules.
// The numeric categoria_id must be unique.
func (s *CategoriaService) Create(ctx context.Context, categoria *domain.Categoria) (*domain.Categoria, error) {
	if err := categoria.Validate(); err != nil {
		return nil, err
	}

	created, err := s.categorias.Insert(ctx, categoria)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create categoria",
			slog.Int("categoria_id", categoria.CategoriaID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "categoria created",
		slog.String("id", created.ID),
		slog.Int("categoria_id", created.CategoriaID),
	)

	return created, nil
}

// List returns categories with the number of memories each one classifies.
// Counts are fetched concurrently, one lookup per category.
func (s *CategoriaService) List(ctx context.Context, page ports.Page) ([]domain.CategoriaResumo, error) {
	categorias, err := s.categorias.List(ctx, page)
	if err != nil {
		return nil, err
	}

	fns := make([]func(context.Context) (domain.CategoriaResumo, error), len(categorias))
	for i, categoria := range categorias {
		fns[i] = func(ctx context.Context) (domain.CategoriaResumo, error) {
			count, countErr := s.memorias.CountByCategoria(ctx, categoria.CategoriaID)
			if countErr != nil {
				return domain.CategoriaResumo{}, countErr
			}

			return domain.CategoriaResumo{Categoria: categoria, QuantidadeMemorias: count}, nil
		}
	}

	return ParallelLimit(ctx, countConcurrency, fns...)
}

// Get resolves a category by storage id or numeric categoria_id and attaches
// the ids of the memories it classifies.
func (s *CategoriaService) Get(ctx context.Context, identificador string) (*domain.CategoriaDetalhe, error) {
	categoria, err := s.resolve(ctx, identificador)
	if err != nil {
		return nil, err
	}

	memorias, err := s.memorias.List(ctx,
		domain.MemoriaFilter{CategoriaID: &categoria.CategoriaID},
		ports.Page{},
	)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(memorias))
	for i, memoria := range memorias {
		ids[i] = memoria.ID
	}

	return &domain.CategoriaDetalhe{Categoria: *categoria, MemoriaIDs: ids}, nil
}

// Update applies a partial update to a category resolved by either identifier form.
func (s *CategoriaService) Update(ctx context.Context, identificador string, update domain.CategoriaUpdate) (*domain.Categoria, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	categoria, err := s.resolve(ctx, identificador)
	if err != nil {
		return nil, err
	}

	if err := s.categorias.Update(ctx, categoria.ID, update); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "categoria updated", slog.String("id", categoria.ID))

	return s.categorias.GetByID(ctx, categoria.ID)
}

// Delete removes a category. Categories still classifying memories cannot
// be removed.
func (s *CategoriaService) Delete(ctx context.Context, identificador string) error {
	categoria, err := s.resolve(ctx, identificador)
	if err != nil {
		return err
	}

	count, err := s.memorias.CountByCategoria(ctx, categoria.CategoriaID)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.NewConflictErrorWithDetails("categoria", "cannot delete", "has associated memories")
	}

	if err := s.categorias.Delete(ctx, categoria.ID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "categoria deleted",
		slog.String("id", categoria.ID),
		slog.Int("categoria_id", categoria.CategoriaID),
	)

	return nil
}

// resolve accepts either a hex storage id or a numeric categoria_id.
func (s *CategoriaService) resolve(ctx context.Context, identificador string) (*domain.Categoria, error) {
	if domain.IsID(identificador) {
		return s.categorias.GetByID(ctx, identificador)
	}

	if numero, err := strconv.Atoi(identificador); err == nil {
		return s.categorias.GetByCategoriaID(ctx, numero)
	}

	return nil, domain.NewValidationErrorWithValue("identificador",
		"must be a storage id or a numeric categoria_id", identificador)
}
