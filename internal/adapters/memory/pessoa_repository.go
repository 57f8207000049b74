package memory

import (
	"context"
	"sync"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

// PessoaRepository is an in-memory ports.PessoaRepository.
type PessoaRepository struct {
	mu    sync.RWMutex
	byID  map[string]domain.Pessoa
	order orderedIDs
}

// NewPessoaRepository creates an empty repository.
func NewPessoaRepository() *PessoaRepository {
	return &PessoaRepository{byID: make(map[string]domain.Pessoa)}
}

func (r *PessoaRepository) Insert(_ context.Context, pessoa *domain.Pessoa) (*domain.Pessoa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Nome == pessoa.Nome {
			return nil, domain.NewConflictError("pessoa", "already exists")
		}
	}

	created := *pessoa
	created.ID = newID()
	r.byID[created.ID] = created
	r.order.append(created.ID)

	return &created, nil
}

func (r *PessoaRepository) List(_ context.Context, page ports.Page) ([]domain.Pessoa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pessoas := make([]domain.Pessoa, 0, len(r.byID))
	for _, id := range r.order.snapshot() {
		pessoas = append(pessoas, r.byID[id])
	}

	return paginate(pessoas, page), nil
}

func (r *PessoaRepository) GetByID(_ context.Context, id string) (*domain.Pessoa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pessoa, ok := r.byID[id]
	if !ok {
		return nil, domain.NewNotFoundError("pessoa", id)
	}

	return &pessoa, nil
}

func (r *PessoaRepository) GetByNome(_ context.Context, nome string) (*domain.Pessoa, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, pessoa := range r.byID {
		if pessoa.Nome == nome {
			return &pessoa, nil
		}
	}

	return nil, domain.NewNotFoundError("pessoa", nome)
}

func (r *PessoaRepository) Update(_ context.Context, id string, update domain.PessoaUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pessoa, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("pessoa", id)
	}

	if update.Nome != nil {
		pessoa.Nome = *update.Nome
	}

	if update.DataNascimento != nil {
		pessoa.DataNascimento = *update.DataNascimento
	}

	r.byID[id] = pessoa

	return nil
}

func (r *PessoaRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return domain.NewNotFoundError("pessoa", id)
	}

	delete(r.byID, id)
	r.order.remove(id)

	return nil
}
