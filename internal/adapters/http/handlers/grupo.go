package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/memorias-pessoais/memorias-api/internal/adapters/http/dto"
	"github.com/memorias-pessoais/memorias-api/internal/app"
	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// GrupoHandler handles group HTTP endpoints.
type GrupoHandler struct {
	service *app.GrupoService
}

// NewGrupoHandler creates a new group handler.
func NewGrupoHandler(service *app.GrupoService) *GrupoHandler {
	return &GrupoHandler{
		service: service,
	}
}

// CreateGrupoRequest is the payload for creating a group.
type CreateGrupoRequest struct {
	Nome string `json:"nome" validate:"required,notempty"`
}

// PessoaRefResponse is a member projection inside a group response.
type PessoaRefResponse struct {
	ID       string   `json:"id"`
	Nome     string   `json:"nome"`
	Memorias []string `json:"memorias"`
}

// GrupoResponse is the HTTP response structure for a group.
type GrupoResponse struct {
	ID      string              `json:"id"`
	Nome    string              `json:"nome"`
	Pessoas []PessoaRefResponse `json:"pessoas"`
}

func toGrupoResponse(grupo *domain.Grupo) GrupoResponse {
	pessoas := make([]PessoaRefResponse, len(grupo.Pessoas))
	for i, ref := range grupo.Pessoas {
		memorias := ref.Memorias
		if memorias == nil {
			memorias = []string{}
		}

		pessoas[i] = PessoaRefResponse{
			ID:       ref.ID,
			Nome:     ref.Nome,
			Memorias: memorias,
		}
	}

	return GrupoResponse{
		ID:      grupo.ID,
		Nome:    grupo.Nome,
		Pessoas: pessoas,
	}
}

// CreateGrupo handles POST /api/v1/grupos
func (h *GrupoHandler) CreateGrupo(c *gin.Context) {
	var req CreateGrupoRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindingError(c, err)
		return
	}

	grupo, err := h.service.Create(c.Request.Context(), req.Nome)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toGrupoResponse(grupo))
}

// ListGrupos handles GET /api/v1/grupos
// Member projections are refreshed against the current person records.
func (h *GrupoHandler) ListGrupos(c *gin.Context) {
	grupos, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	items := make([]GrupoResponse, len(grupos))
	for i := range grupos {
		items[i] = toGrupoResponse(&grupos[i])
	}

	c.JSON(http.StatusOK, dto.NewListResponse(items))
}

// AddPessoa handles POST /api/v1/grupos/:grupoId/pessoas/:pessoaId
// Adding a person already in the group is a no-op.
func (h *GrupoHandler) AddPessoa(c *gin.Context) {
	grupo, err := h.service.AddPessoa(c.Request.Context(), c.Param("grupoId"), c.Param("pessoaId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGrupoResponse(grupo))
}

// RemovePessoa handles DELETE /api/v1/grupos/:grupoId/pessoas/:pessoaId
func (h *GrupoHandler) RemovePessoa(c *gin.Context) {
	grupo, err := h.service.RemovePessoa(c.Request.Context(), c.Param("grupoId"), c.Param("pessoaId"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toGrupoResponse(grupo))
}

// RegisterGrupoRoutes registers group routes on the given router group.
func (h *GrupoHandler) RegisterGrupoRoutes(rg *gin.RouterGroup) {
	grupos := rg.Group("/grupos")
	grupos.POST("", h.CreateGrupo)
	grupos.GET("", h.ListGrupos)
	grupos.POST("/:grupoId/pessoas/:pessoaId", h.AddPessoa)
	grupos.DELETE("/:grupoId/pessoas/:pessoaId", h.RemovePessoa)
}
