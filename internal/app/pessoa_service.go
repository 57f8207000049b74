package app

import (
	"context"
	"log/slog"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// PessoaService orchestrates person use cases.
type PessoaService struct {
	pessoas  ports.PessoaRepository
	memorias ports.MemoriaRepository
	logger   *slog.Logger
}

// PessoaServiceConfig contains dependencies for the person service.
type PessoaServiceConfig struct {
	Pessoas  ports.PessoaRepository
	Memorias ports.MemoriaRepository
	Logger   *slog.Logger
}

// NewPessoaService creates a new person service with the provided dependencies.
func NewPessoaService(cfg PessoaServiceConfig) *PessoaService {
	if cfg.Pessoas == nil {
		panic("pessoa service requires a pessoa repository")
	}

	if cfg.Memorias == nil {
		panic("pessoa service requires a memoria repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PessoaService{
		pessoas:  cfg.Pessoas,
		memorias: cfg.Memorias,
		logger:   logger,
	}
}

// Create stores a new person. The name must be unique.
func (s *PessoaService) Create(ctx context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	if err := pessoa.Validate(); err != nil {
		return nil, err
	}

	pessoa.DataNascimento = domain.TruncateToDay(pessoa.DataNascimento)

	created, err := s.pessoas.Insert(ctx, pessoa)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create pessoa",
			slog.String("nome", pessoa.Nome),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "pessoa created",
		slog.String("id", created.ID),
		slog.String("nome", created.Nome),
	)

	return created, nil
}

// List returns persons with the ids of the memories referencing each one.
// Memory lookups run concurrently, one per person.
func (s *PessoaService) List(ctx context.Context, page ports.Page) ([]domain.PessoaDetalhe, error) {
	pessoas, err := s.pessoas.List(ctx, page)
	if err != nil {
		return nil, err
	}

	fns := make([]func(context.Context) (domain.PessoaDetalhe, error), len(pessoas))
	for i, pessoa := range pessoas {
		fns[i] = func(ctx context.Context) (domain.PessoaDetalhe, error) {
			ids, idsErr := s.memoriaIDs(ctx, pessoa.ID)
			if idsErr != nil {
				return domain.PessoaDetalhe{}, idsErr
			}

			return domain.PessoaDetalhe{Pessoa: pessoa, MemoriaIDs: ids}, nil
		}
	}

	return ParallelLimit(ctx, countConcurrency, fns...)
}

// Get resolves a person by storage id or unique name and attaches the ids
// of memories referencing them.
func (s *PessoaService) Get(ctx context.Context, identificador string) (*domain.PessoaDetalhe, error) {
	pessoa, err := s.resolve(ctx, identificador)
	if err != nil {
		return nil, err
	}

	ids, err := s.memoriaIDs(ctx, pessoa.ID)
	if err != nil {
		return nil, err
	}

	return &domain.PessoaDetalhe{Pessoa: *pessoa, MemoriaIDs: ids}, nil
}

// Update applies a partial update to a person resolved by either identifier form.
func (s *PessoaService) Update(ctx context.Context, identificador string, update domain.PessoaUpdate) (*domain.Pessoa, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	if update.DataNascimento != nil {
		truncated := domain.TruncateToDay(*update.DataNascimento)
		update.DataNascimento = &truncated
	}

	pessoa, err := s.resolve(ctx, identificador)
	if err != nil {
		return nil, err
	}

	if err := s.pessoas.Update(ctx, pessoa.ID, update); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "pessoa updated", slog.String("id", pessoa.ID))

	return s.pessoas.GetByID(ctx, pessoa.ID)
}

// Delete removes a person. Persons still referenced by memories cannot
// be removed.
func (s *PessoaService) Delete(ctx context.Context, identificador string) error {
	pessoa, err := s.resolve(ctx, identificador)
	if err != nil {
		return err
	}

	count, err := s.memorias.CountByPessoa(ctx, pessoa.ID)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.NewConflictErrorWithDetails("pessoa", "cannot delete", "has associated memories")
	}

	if err := s.pessoas.Delete(ctx, pessoa.ID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "pessoa deleted",
		slog.String("id", pessoa.ID),
		slog.String("nome", pessoa.Nome),
	)

	return nil
}

// resolve accepts either a hex storage id or the person's unique name.
func (s *PessoaService) resolve(ctx context.Context, identificador string) (*domain.Pessoa, error) {
	if domain.IsID(identificador) {
		return s.pessoas.GetByID(ctx, identificador)
	}

	return s.pessoas.GetByNome(ctx, identificador)
}

// memoriaIDs collects the storage ids of memories referencing a person.
func (s *PessoaService) memoriaIDs(ctx context.Context, pessoaID string) ([]string, error) {
	memorias, err := s.memorias.List(ctx, domain.MemoriaFilter{PessoaID: pessoaID}, ports.Page{})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(memorias))
	for i, memoria := range memorias {
		ids[i] = memoria.ID
	}

	return ids, nil
}
