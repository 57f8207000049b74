package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// MemoriaService orchestrates memory use cases.
type MemoriaService struct {
	memorias   ports.MemoriaRepository
	categorias ports.CategoriaRepository
	pessoas    ports.PessoaRepository
	logger     *slog.Logger
}

// MemoriaServiceConfig contains dependencies for the memory service.
type MemoriaServiceConfig struct {
	Memorias   ports.MemoriaRepository
	Categorias ports.CategoriaRepository
	Pessoas    ports.PessoaRepository
	Logger     *slog.Logger
}

// NewMemoriaService creates a new memory service with the provided dependencies.
func NewMemoriaService(cfg MemoriaServiceConfig) *MemoriaService {
	if cfg.Memorias == nil {
		panic("memoria service requires a memoria repository")
	}

	if cfg.Categorias == nil {
		panic("memoria service requires a categoria repository")
	}

	if cfg.Pessoas == nil {
		panic("memoria service requires a pessoa repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoriaService{
		memorias:   cfg.Memorias,
		categorias: cfg.Categorias,
		pessoas:    cfg.Pessoas,
		logger:     logger,
	}
}

// Create stores a new memory. Referenced categoria and pessoa, when present,
// must exist; their lookups run concurrently.
func (s *MemoriaService) Create(ctx context.Context, memoria *domain.Memoria) (*domain.Memoria, error) {
	if err := memoria.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, memoria.CategoriaID, memoria.PessoaID); err != nil {
		return nil, err
	}

	memoria.Data = domain.TruncateToDay(memoria.Data)

	created, err := s.memorias.Insert(ctx, memoria)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create memoria",
			slog.String("titulo", memoria.Titulo),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "memoria created",
		slog.String("id", created.ID),
		slog.String("titulo", created.Titulo),
		slog.String("emocao", created.Emocao),
	)

	return created, nil
}

// List returns memories bounded by page.
func (s *MemoriaService) List(ctx context.Context, page ports.Page) ([]domain.Memoria, error) {
	return s.memorias.List(ctx, domain.MemoriaFilter{}, page)
}

// Get retrieves a memory by its storage id.
func (s *MemoriaService) Get(ctx context.Context, id string) (*domain.Memoria, error) {
	if !domain.IsID(id) {
		return nil, domain.NewValidationErrorWithValue("id", "must be a storage id", id)
	}

	return s.memorias.GetByID(ctx, id)
}

// Update applies a partial update. Changed references are validated the same
// way Create validates them.
func (s *MemoriaService) Update(ctx context.Context, id string, update domain.MemoriaUpdate) (*domain.Memoria, error) {
	if !domain.IsID(id) {
		return nil, domain.NewValidationErrorWithValue("id", "must be a storage id", id)
	}

	var pessoaID string
	if update.PessoaID != nil {
		pessoaID = *update.PessoaID
		if pessoaID != "" && !domain.IsID(pessoaID) {
			return nil, domain.NewValidationError("pessoa_id", "must be a valid id")
		}
	}

	if err := s.checkReferences(ctx, update.CategoriaID, pessoaID); err != nil {
		return nil, err
	}

	if update.Data != nil {
		truncated := domain.TruncateToDay(*update.Data)
		update.Data = &truncated
	}

	if err := s.memorias.Update(ctx, id, update); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "memoria updated", slog.String("id", id))

	return s.memorias.GetByID(ctx, id)
}

// Delete removes a memory by its storage id.
func (s *MemoriaService) Delete(ctx context.Context, id string) error {
	if !domain.IsID(id) {
		return domain.NewValidationErrorWithValue("id", "must be a storage id", id)
	}

	if err := s.memorias.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "memoria deleted", slog.String("id", id))

	return nil
}

// ListByCategoria returns memories classified under a numeric category id.
func (s *MemoriaService) ListByCategoria(ctx context.Context, categoriaID int, page ports.Page) ([]domain.Memoria, error) {
	return s.memorias.List(ctx, domain.MemoriaFilter{CategoriaID: &categoriaID}, page)
}

// ListByPessoa returns memories referencing a person, optionally filtered
// by emotion label.
func (s *MemoriaService) ListByPessoa(ctx context.Context, pessoaID, emocao string, page ports.Page) ([]domain.Memoria, error) {
	if !domain.IsID(pessoaID) {
		return nil, domain.NewValidationErrorWithValue("pessoa_id", "must be a storage id", pessoaID)
	}

	return s.memorias.List(ctx, domain.MemoriaFilter{PessoaID: pessoaID, Emocao: emocao}, page)
}

// ListByPeriodo returns memories whose event dates fall in [inicio, fim],
// newest first, optionally filtered by emotion label.
func (s *MemoriaService) ListByPeriodo(ctx context.Context, inicio, fim time.Time, emocao string, page ports.Page) ([]domain.Memoria, error) {
	inicio = domain.TruncateToDay(inicio)
	fim = domain.TruncateToDay(fim)

	if fim.Before(inicio) {
		return nil, domain.NewValidationError("data_fim", "must not precede data_inicio")
	}

	filter := domain.MemoriaFilter{
		DataInicio:      &inicio,
		DataFim:         &fim,
		Emocao:          emocao,
		OrderByDataDesc: true,
	}

	return s.memorias.List(ctx, filter, page)
}

// Search returns memories whose titles contain the text, case-insensitively.
func (s *MemoriaService) Search(ctx context.Context, texto string, page ports.Page) ([]domain.Memoria, error) {
	if texto == "" {
		return nil, domain.NewValidationError("texto", "must not be empty")
	}

	return s.memorias.List(ctx, domain.MemoriaFilter{TituloContem: texto}, page)
}

// TotaisPorCategoria aggregates memory counts per category, descending.
func (s *MemoriaService) TotaisPorCategoria(ctx context.Context) ([]domain.TotalPorCategoria, error) {
	return s.memorias.TotaisPorCategoria(ctx)
}

// checkReferences verifies that a referenced categoria and pessoa exist.
// Missing references surface as validation errors, not as not-found: the
// memory itself is the resource under operation here.
func (s *MemoriaService) checkReferences(ctx context.Context, categoriaID *int, pessoaID string) error {
	checkCategoria := func(ctx context.Context) (struct{}, error) {
		if categoriaID == nil {
			return struct{}{}, nil
		}

		if _, err := s.categorias.GetByCategoriaID(ctx, *categoriaID); err != nil {
			if domain.IsNotFound(err) {
				return struct{}{}, domain.NewValidationErrorWithValue("categoria_id", "categoria does not exist", *categoriaID)
			}

			return struct{}{}, err
		}

		return struct{}{}, nil
	}

	checkPessoa := func(ctx context.Context) (struct{}, error) {
		if pessoaID == "" {
			return struct{}{}, nil
		}

		if _, err := s.pessoas.GetByID(ctx, pessoaID); err != nil {
			if domain.IsNotFound(err) {
				return struct{}{}, domain.NewValidationErrorWithValue("pessoa_id", "pessoa does not exist", pessoaID)
			}

			return struct{}{}, err
		}

		return struct{}{}, nil
	}

	_, _, err := Parallel2(ctx, checkCategoria, checkPessoa)

	return err
}
