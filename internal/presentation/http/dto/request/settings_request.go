package request

// SaveSettingsRequest represents a business settings save request. Field
// names mirror the exported settings file so an export can be posted back
// unchanged.
type SaveSettingsRequest struct {
	BusinessName    string  `json:"businessName" binding:"max=200"`
	BusinessAddress string  `json:"businessAddress"`
	BusinessPhone   string  `json:"businessPhone" binding:"max=50"`
	BusinessEmail   string  `json:"businessEmail" binding:"omitempty,email"`
	LogoURL         string  `json:"businessLogoUrl" binding:"omitempty,url"`
	SignatureURL    string  `json:"signatureUrl" binding:"omitempty,url"`
	TaxRatePercent  float64 `json:"taxRate" binding:"gte=0,lte=100"`
	CurrencyCode    string  `json:"currency" binding:"max=10"`
}
