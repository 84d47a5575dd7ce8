package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codedoc/internal/domain"
	"codedoc/internal/service"
)

// GenerateHandler handles the documentation generation endpoint.
type GenerateHandler struct {
	documentationService service.DocumentationService
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(documentationService service.DocumentationService) *GenerateHandler {
	return &GenerateHandler{documentationService: documentationService}
}

// Generate handles POST /api/generate
// @Summary Generate documentation for a code snippet
// @Description Produces a technical summary and a plain-language explanation by merging a code-summarizer draft with a language-model draft.
// @Tags documentation
// @Accept json
// @Produce json
// @Param request body domain.DocumentationRequest true "Code to document"
// @Success 200 {object} domain.DocumentationResponse "Generated documentation"
// @Failure 400 {object} ErrorResponse "No code provided"
// @Failure 500 {object} ErrorResponse "Upstream language model failure"
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req domain.DocumentationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		RespondError(c, http.StatusBadRequest, domain.ErrNoCodeProvided.Error())
		return
	}

	doc, err := h.documentationService.Generate(c.Request.Context(), req.Code)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}
