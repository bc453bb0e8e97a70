package handler

import (
	"github.com/docugen/docugen-api/internal/application/service"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/request"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	documentService  *service.DocumentService
	numberingService *service.NumberingService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService, numberingService *service.NumberingService) *DocumentHandler {
	return &DocumentHandler{
		documentService:  documentService,
		numberingService: numberingService,
	}
}

// NextNumber allocates the next document number for a type
func (h *DocumentHandler) NextNumber(c *gin.Context) {
	var req request.NumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	number, err := h.numberingService.Next(c.Request.Context(), enum.DocumentType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Number allocated successfully", gin.H{"number": number})
}

// Preview renders the HTML preview of a document
func (h *DocumentHandler) Preview(c *gin.Context) {
	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	html, err := h.documentService.PreviewHTML(c.Request.Context(), toDocumentInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview rendered successfully", gin.H{"html": html})
}

// PDFPreview renders the document as a base64 data URL for in-browser
// display
func (h *DocumentHandler) PDFPreview(c *gin.Context) {
	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dataURL, err := h.documentService.PDFPreview(c.Request.Context(), toDocumentInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preview rendered successfully", gin.H{"dataUrl": dataURL})
}

// ExportPDF consumes a download code and serves the final PDF
func (h *DocumentHandler) ExportPDF(c *gin.Context) {
	var req request.ExportDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	out, err := h.documentService.ExportPDF(c.Request.Context(), toDocumentInput(&req.DocumentRequest), req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(200, "application/pdf", out.Content)
}
