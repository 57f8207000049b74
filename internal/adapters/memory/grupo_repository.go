package memory

import (
	"context"
	"sync"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// GrupoRepository is an in-memory ports.GrupoRepository.
type GrupoRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Grupo
	order orderedIDs
}

// NewGrupoRepository creates an empty repository.
func NewGrupoRepository() *GrupoRepository {
	return &GrupoRepository{byID: make(map[string]domain.Grupo)}
}

func (r *GrupoRepository) Insert(_ context.Context, grupo *domain.Grupo) (*domain.Grupo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Nome == grupo.Nome {
			return nil, domain.NewConflictError("grupo", "already exists")
		}
	}

	created := *grupo
	created.ID = newID()
	created.Pessoas = clonePessoas(grupo.Pessoas)
	r.byID[created.ID] = created
	r.order.append(created.ID)

	return &created, nil
}

func (r *GrupoRepository) List(_ context.Context) ([]domain.Grupo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grupos := make([]domain.Grupo, 0, len(r.byID))
	for _, id := range r.order.snapshot() {
		grupo := r.byID[id]
		grupo.Pessoas = clonePessoas(grupo.Pessoas)
		grupos = append(grupos, grupo)
	}

	return grupos, nil
}

func (r *GrupoRepository) GetByID(_ context.Context, id string) (*domain.Grupo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grupo, ok := r.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("grupo", id)
	}

	grupo.Pessoas = clonePessoas(grupo.Pessoas)

	return &grupo, nil
}

func (r *GrupoRepository) UpdatePessoas(_ context.Context, id string, pessoas []domain.PessoaRef) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	grupo, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("grupo", id)
	}

	grupo.Pessoas = clonePessoas(pessoas)
	r.byID[id] = grupo

	return nil
}

// clonePessoas copies the membership list so callers cannot mutate stored state.
func clonePessoas(refs []domain.PessoaRef) []domain.PessoaRef {
	cloned := make([]domain.PessoaRef, len(refs))
	for i, ref := range refs {
		cloned[i] = ref
		if ref.Memorias != nil {
			cloned[i].Memorias = append([]string(nil), ref.Memorias...)
		}
	}

	return cloned
}
