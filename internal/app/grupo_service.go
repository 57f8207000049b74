package app

import (
	"context"
	"log/slog"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// enrichConcurrency bounds how many group members are re-resolved at once
// when listing groups.
const enrichConcurrency = 8

// GrupoService orchestrates group use cases. Groups embed PessoaRef
// projections; listing refreshes them against the current persons and
// memories so names and memory titles never go stale.
type GrupoService struct {
	grupos   ports.GrupoRepository
	pessoas  ports.PessoaRepository
	memorias ports.MemoriaRepository
	logger   *slog.Logger
}

// GrupoServiceConfig contains dependencies for the group service.
type GrupoServiceConfig struct {
	Grupos   ports.GrupoRepository
	Pessoas  ports.PessoaRepository
	Memorias ports.MemoriaRepository
	Logger   *slog.Logger
}

// NewGrupoService creates a new group service with the provided dependencies.
func NewGrupoService(cfg GrupoServiceConfig) *GrupoService {
	if cfg.Grupos == nil {
		panic("grupo service requires a grupo repository")
	}

	if cfg.Pessoas == nil {
		panic("grupo service requires a pessoa repository")
	}

	if cfg.Memorias == nil {
		panic("grupo service requires a memoria repository")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &GrupoService{
		grupos:   cfg.Grupos,
		pessoas:  cfg.Pessoas,
		memorias: cfg.Memorias,
		logger:   logger,
	}
}

// Create stores a new empty group. The name must be unique.
func (s *GrupoService) Create(ctx context.Context, nome string) (*domain.Grupo, error) {
	grupo := &domain.Grupo{Nome: nome, Pessoas: []domain.PessoaRef{}}
	if err := grupo.Validate(); err != nil {
		return nil, err
	}

	created, err := s.grupos.Insert(ctx, grupo)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create grupo",
			slog.String("nome", nome),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "grupo created",
		slog.String("id", created.ID),
		slog.String("nome", created.Nome),
	)

	return created, nil
}

// List returns all groups with member projections refreshed. Members are
// resolved concurrently; stored order is preserved. References to persons
// that no longer exist pass through unchanged.
func (s *GrupoService) List(ctx context.Context) ([]domain.Grupo, error) {
	grupos, err := s.grupos.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range grupos {
		refreshed, refreshErr := s.refreshMembers(ctx, grupos[i].Pessoas)
		if refreshErr != nil {
			return nil, refreshErr
		}

		grupos[i].Pessoas = refreshed
	}

	return grupos, nil
}

// AddPessoa adds a person to a group together with the titles of their
// memories. Adding an existing member is a no-op.
func (s *GrupoService) AddPessoa(ctx context.Context, grupoID, pessoaID string) (*domain.Grupo, error) {
	grupo, pessoa, err := s.loadPair(ctx, grupoID, pessoaID)
	if err != nil {
		return nil, err
	}

	if grupo.HasPessoa(pessoa.ID) {
		return grupo, nil
	}

	titulos, err := s.memoriaTitulos(ctx, pessoa.ID)
	if err != nil {
		return nil, err
	}

	grupo.Pessoas = append(grupo.Pessoas, domain.PessoaRef{
		ID:       pessoa.ID,
		Nome:     pessoa.Nome,
		Memorias: titulos,
	})

	if err := s.grupos.UpdatePessoas(ctx, grupo.ID, grupo.Pessoas); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "pessoa added to grupo",
		slog.String("grupo_id", grupo.ID),
		slog.String("pessoa_id", pessoa.ID),
	)

	return grupo, nil
}

// RemovePessoa removes a person from a group.
func (s *GrupoService) RemovePessoa(ctx context.Context, grupoID, pessoaID string) (*domain.Grupo, error) {
	grupo, pessoa, err := s.loadPair(ctx, grupoID, pessoaID)
	if err != nil {
		return nil, err
	}

	grupo.Pessoas = grupo.RemovePessoa(pessoa.ID)

	if err := s.grupos.UpdatePessoas(ctx, grupo.ID, grupo.Pessoas); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "pessoa removed from grupo",
		slog.String("grupo_id", grupo.ID),
		slog.String("pessoa_id", pessoa.ID),
	)

	return grupo, nil
}

// loadPair fetches a group and a person concurrently, validating both ids.
func (s *GrupoService) loadPair(ctx context.Context, grupoID, pessoaID string) (*domain.Grupo, *domain.Pessoa, error) {
	if !domain.IsID(grupoID) {
		return nil, nil, domain.NewValidationErrorWithValue("grupo_id", "must be a storage id", grupoID)
	}

	if !domain.IsID(pessoaID) {
		return nil, nil, domain.NewValidationErrorWithValue("pessoa_id", "must be a storage id", pessoaID)
	}

	return Parallel2(ctx,
		func(ctx context.Context) (*domain.Grupo, error) {
			return s.grupos.GetByID(ctx, grupoID)
		},
		func(ctx context.Context) (*domain.Pessoa, error) {
			return s.pessoas.GetByID(ctx, pessoaID)
		},
	)
}

// refreshMembers rebuilds PessoaRef projections from current data.
func (s *GrupoService) refreshMembers(ctx context.Context, refs []domain.PessoaRef) ([]domain.PessoaRef, error) {
	fns := make([]func(context.Context) (domain.PessoaRef, error), len(refs))
	for i, ref := range refs {
		fns[i] = func(ctx context.Context) (domain.PessoaRef, error) {
			pessoa, err := s.pessoas.GetByID(ctx, ref.ID)
			if err != nil {
				if domain.IsNotFound(err) {
					// Person deleted since they joined; keep the stale projection.
					return ref, nil
				}

				return domain.PessoaRef{}, err
			}

			titulos, err := s.memoriaTitulos(ctx, pessoa.ID)
			if err != nil {
				return domain.PessoaRef{}, err
			}

			return domain.PessoaRef{ID: pessoa.ID, Nome: pessoa.Nome, Memorias: titulos}, nil
		}
	}

	return ParallelLimit(ctx, enrichConcurrency, fns...)
}

// memoriaTitulos collects the titles of memories referencing a person.
func (s *GrupoService) memoriaTitulos(ctx context.Context, pessoaID string) ([]string, error) {
	memorias, err := s.memorias.List(ctx, domain.MemoriaFilter{PessoaID: pessoaID}, ports.Page{})
	if err != nil {
		return nil, err
	}

	titulos := make([]string, len(memorias))
	for i, memoria := range memorias {
		titulos[i] = memoria.Titulo
	}

	return titulos, nil
}
