//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apiClient is a thin helper around the stdlib client for JSON round trips.
type apiClient struct {
	baseURL string
	client  *http.Client
}

func newAPIClient(t *testing.T) *apiClient {
	return &apiClient{
		baseURL: newTestServer(t),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *apiClient) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", string(raw))
	}

	return resp, decoded
}

// TestAPI_CategoriaLifecycle exercises the full category CRUD flow over HTTP.
func TestAPI_CategoriaLifecycle(t *testing.T) {
	api := newAPIClient(t)

	resp, body := api.do(t, http.MethodPost, "/api/v1/categorias", map[string]any{
		"categoria_id": 1,
		"nome":         "Viagens",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Viagens", body["nome"])
	assert.NotEmpty(t, body["id"])

	// Duplicate numeric id conflicts
	resp, body = api.do(t, http.MethodPost, "/api/v1/categorias", map[string]any{
		"categoria_id": 1,
		"nome":         "Passeios",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])

	// Rename via numeric id
	resp, body = api.do(t, http.MethodPut, "/api/v1/categorias/1", map[string]any{
		"nome": "Viagens e Passeios",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Viagens e Passeios", body["nome"])

	// Listing reports zero associated memories
	resp, body = api.do(t, http.MethodGet, "/api/v1/categorias", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(0), items[0].(map[string]any)["quantidade_memorias"])

	resp, _ = api.do(t, http.MethodDelete, "/api/v1/categorias/1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = api.do(t, http.MethodGet, "/api/v1/categorias/1", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// TestAPI_MemoriaReferences verifies referential rules between memories,
// categories, and people.
func TestAPI_MemoriaReferences(t *testing.T) {
	api := newAPIClient(t)

	resp, _ := api.do(t, http.MethodPost, "/api/v1/categorias", map[string]any{
		"categoria_id": 3,
		"nome":         "Trabalho",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, pessoa := api.do(t, http.MethodPost, "/api/v1/pessoas", map[string]any{
		"nome":            "Carlos Souza",
		"data_nascimento": "2000-03-11",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pessoaID := pessoa["id"].(string)

	resp, memoria := api.do(t, http.MethodPost, "/api/v1/memorias", map[string]any{
		"titulo":       "Primeiro emprego",
		"descricao":    "Meu primeiro dia de trabalho.",
		"data":         "2020-02-03",
		"emocao":       "Empolgado",
		"categoria_id": 3,
		"pessoa_id":    pessoaID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	memoriaID := memoria["id"].(string)
	assert.Equal(t, "2020-02-03", memoria["data"])

	// A referenced category cannot be deleted
	resp, body := api.do(t, http.MethodDelete, "/api/v1/categorias/3", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body["error"].(map[string]any)["code"])

	// A referenced person cannot be deleted
	resp, _ = api.do(t, http.MethodDelete, "/api/v1/pessoas/Carlos%20Souza", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// The person detail lists the memory id
	resp, body = api.do(t, http.MethodGet, "/api/v1/pessoas/Carlos%20Souza", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	memorias := body["memorias"].([]any)
	require.Len(t, memorias, 1)
	assert.Equal(t, memoriaID, memorias[0])

	// Dangling references are rejected up front
	resp, body = api.do(t, http.MethodPost, "/api/v1/memorias", map[string]any{
		"titulo":       "Sem categoria",
		"data":         "2021-01-01",
		"categoria_id": 42,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]any)["code"])

	// After removing the memory, the category can go too
	resp, _ = api.do(t, http.MethodDelete, "/api/v1/memorias/"+memoriaID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = api.do(t, http.MethodDelete, "/api/v1/categorias/3", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

// TestAPI_MemoriaQueries covers the listing and search surfaces.
func TestAPI_MemoriaQueries(t *testing.T) {
	api := newAPIClient(t)

	resp, _ := api.do(t, http.MethodPost, "/api/v1/categorias", map[string]any{
		"categoria_id": 5,
		"nome":         "Esportes",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	memorias := []map[string]any{
		{"titulo": "Maratona de São Paulo", "data": "2021-04-25", "emocao": "Euforia", "categoria_id": 5},
		{"titulo": "Corrida no parque", "data": "2021-06-12", "emocao": "Feliz", "categoria_id": 5},
		{"titulo": "Jogo de xadrez", "data": "2014-07-22", "emocao": "Curioso"},
	}
	for _, m := range memorias {
		resp, _ := api.do(t, http.MethodPost, "/api/v1/memorias", m)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := api.do(t, http.MethodGet, "/api/v1/memorias/categoria/5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])

	// Range search is ordered newest first
	resp, body = api.do(t, http.MethodGet, "/api/v1/memorias/datas/?data_inicio=2021-01-01&data_fim=2021-12-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Corrida no parque", items[0].(map[string]any)["titulo"])

	// Inverted range is rejected
	resp, body = api.do(t, http.MethodGet, "/api/v1/memorias/datas/?data_inicio=2021-12-31&data_fim=2021-01-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["error"].(map[string]any)["code"])

	resp, body = api.do(t, http.MethodGet, "/api/v1/memorias/busca/?texto=maratona", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	resp, body = api.do(t, http.MethodGet, "/api/v1/memorias/agregacoes/total-por-categoria/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])
}

// TestAPI_GrupoMembership covers group creation and membership management.
func TestAPI_GrupoMembership(t *testing.T) {
	api := newAPIClient(t)

	resp, pessoa := api.do(t, http.MethodPost, "/api/v1/pessoas", map[string]any{
		"nome":            "Ana Pereira",
		"data_nascimento": "1995-12-30",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	pessoaID := pessoa["id"].(string)

	resp, grupo := api.do(t, http.MethodPost, "/api/v1/grupos", map[string]any{
		"nome": "Amigos da faculdade",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	grupoID := grupo["id"].(string)
	assert.Empty(t, grupo["pessoas"])

	resp, body := api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/grupos/%s/pessoas/%s", grupoID, pessoaID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pessoas := body["pessoas"].([]any)
	require.Len(t, pessoas, 1)
	assert.Equal(t, "Ana Pereira", pessoas[0].(map[string]any)["nome"])

	// Adding the same member twice is a no-op
	resp, body = api.do(t, http.MethodPost, fmt.Sprintf("/api/v1/grupos/%s/pessoas/%s", grupoID, pessoaID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body["pessoas"].([]any), 1)

	resp, body = api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/grupos/%s/pessoas/%s", grupoID, pessoaID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["pessoas"])
}

// TestAPI_ConcurrentMemoriaCreation verifies that concurrent writes through
// the full HTTP stack complete without races or lost inserts.
func TestAPI_ConcurrentMemoriaCreation(t *testing.T) {
	api := newAPIClient(t)

	resp, _ := api.do(t, http.MethodPost, "/api/v1/categorias", map[string]any{
		"categoria_id": 9,
		"nome":         "Música",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	const numGoroutines = 30
	var wg sync.WaitGroup
	var successCount int32

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			payload, err := json.Marshal(map[string]any{
				"titulo":       fmt.Sprintf("Show número %d", id),
				"data":         "2022-08-15",
				"categoria_id": 9,
			})
			if err != nil {
				return
			}

			req, err := http.NewRequestWithContext(context.Background(), http.MethodPost,
				api.baseURL+"/api/v1/memorias", bytes.NewReader(payload))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")

			httpResp, err := api.client.Do(req)
			if err != nil {
				return
			}
			defer httpResp.Body.Close()
			_, _ = io.Copy(io.Discard, httpResp.Body)

			if httpResp.StatusCode == http.StatusCreated {
				atomic.AddInt32(&successCount, 1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(numGoroutines), atomic.LoadInt32(&successCount), "all inserts should succeed")

	resp, body := api.do(t, http.MethodGet, "/api/v1/memorias/categoria/9?limit=100", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(numGoroutines), body["count"])
}
