package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// PessoaHandler handles person HTTP endpoints.
type PessoaHandler struct {
	service *app.PessoaService
}

// NewPessoaHandler creates a new person handler.
func NewPessoaHandler(service *app.PessoaService) *PessoaHandler {
	return &PessoaHandler{
		service: service,
	}
}

// CreatePessoaRequest is the payload for creating a person. Dates travel as
// YYYY-MM-DD strings.
type CreatePessoaRequest struct {
	Nome           string `json:"nome" validate:"required,notempty"`
	DataNascimento string `json:"data_nascimento" validate:"required,dateonly"`
}

// UpdatePessoaRequest is the payload for a partial person update.
type UpdatePessoaRequest struct {
	Nome           *string `json:"nome" validate:"omitempty,notempty"`
	DataNascimento *string `json:"data_nascimento" validate:"omitempty,dateonly"`
}

// PessoaResponse is the HTTP response structure for a person.
type PessoaResponse struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento"`
}

// PessoaDetalheResponse is a person with the ids of memories referencing them.
type PessoaDetalheResponse struct {
	PessoaResponse
	Memorias []string `json:"memorias"`
}

func toPessoaResponse(pessoa *domain.Pessoa) PessoaResponse {
	return PessoaResponse{
		ID:             pessoa.ID,
		Nome:           pessoa.Nome,
		DataNascimento: pessoa.DataNascimento.Format(time.DateOnly),
	}
}

// CreatePessoa handles POST /api/v1/pessoas
func (h *PessoaHandler) CreatePessoa(c *gin.Context) {
	var req CreatePessoaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	nascimento, _ := time.Parse(time.DateOnly, req.DataNascimento)

	pessoa, err := h.service.Create(c.Request.Context(), &domain.Pessoa{
		Nome:           req.Nome,
		DataNascimento: nascimento,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPessoaResponse(pessoa))
}

// ListPessoas handles GET /api/v1/pessoas
func (h *PessoaHandler) ListPessoas(c *gin.Context) {
	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	detalhes, err := h.service.List(c.Request.Context(), page.ToPage())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]PessoaDetalheResponse, len(detalhes))
	for i, detalhe := range detalhes {
		items[i] = PessoaDetalheResponse{
			PessoaResponse: toPessoaResponse(&detalhe.Pessoa),
			Memorias:       detalhe.MemoriaIDs,
		}
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

// GetPessoa handles GET /api/v1/pessoas/:identificador
// The identifier may be a hex storage id or the person's unique name.
func (h *PessoaHandler) GetPessoa(c *gin.Context) {
	detalhe, err := h.service.Get(c.Request.Context(), c.Param("identificador"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PessoaDetalheResponse{
		PessoaResponse: toPessoaResponse(&detalhe.Pessoa),
		Memorias:       detalhe.MemoriaIDs,
	})
}

// UpdatePessoa handles PUT /api/v1/pessoas/:identificador
func (h *PessoaHandler) UpdatePessoa(c *gin.Context) {
	var req UpdatePessoaRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	update := domain.PessoaUpdate{Nome: req.Nome}
	if req.DataNascimento != nil {
		nascimento, _ := time.Parse(time.DateOnly, *req.DataNascimento)
		update.DataNascimento = &nascimento
	}

	pessoa, err := h.service.Update(c.Request.Context(), c.Param("identificador"), update)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPessoaResponse(pessoa))
}

// DeletePessoa handles DELETE /api/v1/pessoas/:identificador
// Returns 409 while memories still reference the person.
func (h *PessoaHandler) DeletePessoa(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("identificador")); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterPessoaRoutes registers person routes on the given router group.
func (h *PessoaHandler) RegisterPessoaRoutes(rg *gin.RouterGroup) {
	pessoas := rg.Group("/pessoas")
	pessoas.POST("", h.CreatePessoa)
	pessoas.GET("", h.ListPessoas)
	pessoas.GET("/:identificador", h.GetPessoa)
	pessoas.PUT("/:identificador", h.UpdatePessoa)
	pessoas.DELETE("/:identificador", h.DeletePessoa)
}
