package handler

import (
	"github.com/docugen/docugen-api/internal/application/service"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/request"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/response"
	"github.com/docugen/docugen-api/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// CodeHandler handles download code HTTP requests
type CodeHandler struct {
	codeService *service.CodeService
}

// NewCodeHandler creates a new code handler
func NewCodeHandler(codeService *service.CodeService) *CodeHandler {
	return &CodeHandler{codeService: codeService}
}

// VerifyCode consumes a download code
func (h *CodeHandler) VerifyCode(c *gin.Context) {
	var req request.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.codeService.VerifyCode(c.Request.Context(), req.Code); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Code verified successfully", gin.H{"valid": true})
}

// GenerateCode creates a single download code
func (h *CodeHandler) GenerateCode(c *gin.Context) {
	code, err := h.codeService.GenerateCode(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Code generated successfully", code)
}

// GenerateBulkCodes creates a batch of download codes
func (h *CodeHandler) GenerateBulkCodes(c *gin.Context) {
	var req request.GenerateBulkCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Quantity must be between 1 and 100")
		return
	}

	codes, err := h.codeService.GenerateBulkCodes(c.Request.Context(), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	// every code in a batch shares one expiry
	response.Created(c, "Codes generated successfully", gin.H{
		"codes":      codes,
		"count":      len(codes),
		"expires_at": codes[0].ExpiresAt,
	})
}

// ListCodes returns download codes, newest first
func (h *CodeHandler) ListCodes(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.codeService.ListCodes(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Codes retrieved successfully", result)
}
