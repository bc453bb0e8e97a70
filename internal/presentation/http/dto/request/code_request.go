package request

// VerifyCodeRequest represents a download code verification request
type VerifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GenerateBulkCodesRequest represents a bulk code generation request
type GenerateBulkCodesRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=100"`
}

// AdminLoginRequest represents an admin login request
type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
