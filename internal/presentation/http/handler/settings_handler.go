package handler

import (
	"io"

	"github.com/docugen/docugen-api/internal/application/service"
	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/request"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles business settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the business settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// SaveSettings persists the business settings
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var req request.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.SaveSettings(c.Request.Context(), entity.BusinessProfile{
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		BusinessPhone:   req.BusinessPhone,
		BusinessEmail:   req.BusinessEmail,
		LogoURL:         req.LogoURL,
		SignatureURL:    req.SignatureURL,
		TaxRatePercent:  req.TaxRatePercent,
		CurrencyCode:    req.CurrencyCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings saved successfully", settings)
}

// ExportSettings serves the settings as a downloadable JSON file
func (h *SettingsHandler) ExportSettings(c *gin.Context) {
	out, err := h.settingsService.ExportSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+out.Filename+`"`)
	c.Data(200, "application/json", out.Payload)
}

// ImportSettings restores the settings from an exported JSON file. The
// payload may arrive as a multipart upload or as the raw request body.
func (h *SettingsHandler) ImportSettings(c *gin.Context) {
	var payload []byte

	file, err := c.FormFile("file")
	if err == nil {
		f, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Invalid settings file")
			return
		}
		defer f.Close()
		payload, err = io.ReadAll(io.LimitReader(f, 1<<20))
		if err != nil {
			response.BadRequest(c, "Invalid settings file")
			return
		}
	} else {
		payload, err = c.GetRawData()
		if err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	settings, err := h.settingsService.ImportSettings(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings imported successfully", settings)
}
