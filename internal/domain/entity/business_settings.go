package entity

import (
	"time"

	"gorm.io/gorm"
)

// BusinessProfile is the wire shape of the business settings consumed by
// the document pipeline and exchanged with the settings endpoints.
type BusinessProfile struct {
	BusinessName    string  `json:"businessName"`
	BusinessAddress string  `json:"businessAddress"`
	BusinessPhone   string  `json:"businessPhone"`
	BusinessEmail   string  `json:"businessEmail"`
	LogoURL         string  `json:"businessLogoUrl"`
	SignatureURL    string  `json:"signatureUrl"`
	TaxRatePercent  float64 `json:"taxRate"`
	CurrencyCode    string  `json:"currency"`
}

// DefaultBusinessProfile returns the profile served before any settings
// have been saved.
func DefaultBusinessProfile() BusinessProfile {
	return BusinessProfile{CurrencyCode: "USD"}
}

// BusinessSettings is the persisted form of the business profile.
// The store holds a single row that is created on first save.
type BusinessSettings struct {
	ID              uint           `gorm:"primary_key" json:"-"`
	BusinessName    string         `gorm:"size:200" json:"businessName"`
	BusinessAddress string         `gorm:"type:text" json:"businessAddress"`
	BusinessPhone   string         `gorm:"size:50" json:"businessPhone"`
	BusinessEmail   string         `gorm:"size:100" json:"businessEmail"`
	LogoURL         string         `gorm:"size:500" json:"businessLogoUrl"`
	SignatureURL    string         `gorm:"size:500" json:"signatureUrl"`
	TaxRatePercent  float64        `gorm:"default:0" json:"taxRate"`
	CurrencyCode    string         `gorm:"size:10;default:'USD'" json:"currency"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for the BusinessSettings model
func (BusinessSettings) TableName() string {
	return "business_settings"
}

// Profile converts the persisted row into the wire shape
func (s *BusinessSettings) Profile() BusinessProfile {
	return BusinessProfile{
		BusinessName:    s.BusinessName,
		BusinessAddress: s.BusinessAddress,
		BusinessPhone:   s.BusinessPhone,
		BusinessEmail:   s.BusinessEmail,
		LogoURL:         s.LogoURL,
		SignatureURL:    s.SignatureURL,
		TaxRatePercent:  s.TaxRatePercent,
		CurrencyCode:    s.CurrencyCode,
	}
}

// ApplyProfile copies the wire shape onto the persisted row
func (s *BusinessSettings) ApplyProfile(p BusinessProfile) {
	s.BusinessName = p.BusinessName
	s.BusinessAddress = p.BusinessAddress
	s.BusinessPhone = p.BusinessPhone
	s.BusinessEmail = p.BusinessEmail
	s.LogoURL = p.LogoURL
	s.SignatureURL = p.SignatureURL
	s.TaxRatePercent = p.TaxRatePercent
	if p.CurrencyCode == "" {
		s.CurrencyCode = "USD"
	} else {
		s.CurrencyCode = p.CurrencyCode
	}
}
