package request

// LineItemRequest represents a single document row as typed into the form
type LineItemRequest struct {
	Description     string  `json:"description"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"price"`
	DiscountPercent float64 `json:"discount" binding:"gte=0,lte=100"`
}

// ClientRequest represents the client details of a document
type ClientRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address"`
}

// DocumentRequest represents a document submitted for numbering, preview
// or PDF rendering
type DocumentRequest struct {
	Type      string            `json:"type" binding:"required,oneof=invoice quotation purchase_order receipt"`
	Number    string            `json:"number"`
	IssueDate string            `json:"date"`
	DueDate   string            `json:"dueDate"`
	Client    ClientRequest     `json:"client"`
	Items     []LineItemRequest `json:"items" binding:"max=50,dive"`
}

// ExportDocumentRequest represents a final PDF download request. The
// download code is consumed on success.
type ExportDocumentRequest struct {
	DocumentRequest
	Code string `json:"code" binding:"required"`
}

// NumberRequest represents a document number allocation request
type NumberRequest struct {
	Type string `json:"type" binding:"required,oneof=invoice quotation purchase_order receipt"`
}
