// Package memory provides in-memory repository implementations.
// They back integration tests and local development without a running
// MongoDB, mirroring the persistence semantics of the mongodb package:
// unique numeric categoria_id, unique pessoa and grupo names, and the
// same filter behavior for memory listings.
package memory

import (
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
	"github.com/memorias-pessoais/memorias-api/internal/ports"
)

func newID() string {
	return primitive.NewObjectID().Hex()
}

func paginate[T any](items []T, page ports.Page) []T {
	if page.Limit <= 0 {
		return items
	}

	skip := page.Skip
	if skip > int64(len(items)) {
		skip = int64(len(items))
	}

	end := skip + page.Limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}

	return items[skip:end]
}

// Store holds all four repositories over shared in-process state.
type Store struct {
	Categorias *CategoriaRepository
	Pessoas    *PessoaRepository
	Memorias   *MemoriaRepository
	Grupos     *GrupoRepository
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Categorias: NewCategoriaRepository(),
		Pessoas:    NewPessoaRepository(),
		Memorias:   NewMemoriaRepository(),
		Grupos:     NewGrupoRepository(),
	}
}

// matches mirrors the Mongo query the mongodb package builds for listings.
func matches(memoria domain.Memoria, filter domain.MemoriaFilter) bool {
	if filter.CategoriaID != nil {
		if memoria.CategoriaID == nil || *memoria.CategoriaID != *filter.CategoriaID {
			return false
		}
	}

	if filter.PessoaID != "" && memoria.PessoaID != filter.PessoaID {
		return false
	}

	if filter.Emocao != "" && memoria.Emocao != filter.Emocao {
		return false
	}

	if filter.DataInicio != nil && memoria.Data.Before(*filter.DataInicio) {
		return false
	}

	if filter.DataFim != nil && memoria.Data.After(*filter.DataFim) {
		return false
	}

	if filter.TituloContem != "" &&
		!strings.Contains(strings.ToLower(memoria.Titulo), strings.ToLower(filter.TituloContem)) {
		return false
	}

	return true
}

// sortByDataDesc orders memories newest first, matching the data index sort.
func sortByDataDesc(memorias []domain.Memoria) {
	sort.SliceStable(memorias, func(i, j int) bool {
		return memorias[i].Data.After(memorias[j].Data)
	})
}

// entity list helpers keep insertion order, matching natural collection order.
type orderedIDs struct {
	mu  sync.RWMutex
	ids []string
}

func (o *orderedIDs) append(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ids = append(o.ids, id)
}

func (o *orderedIDs) remove(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, existing := range o.ids {
		if existing == id {
			o.ids = append(o.ids[:i], o.ids[i+1:]...)

			return
		}
	}
}

func (o *orderedIDs) snapshot() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	ids := make([]string, len(o.ids))
	copy(ids, o.ids)

	return ids
}
