package enum

import (
	"database/sql/driver"
	"fmt"
)

// DocumentType identifies the kind of business document being generated
type DocumentType string

const (
	DocumentTypeInvoice       DocumentType = "invoice"
	DocumentTypeQuotation     DocumentType = "quotation"
	DocumentTypePurchaseOrder DocumentType = "purchase_order"
	DocumentTypeReceipt       DocumentType = "receipt"
)

// AllDocumentTypes lists every supported document type
var AllDocumentTypes = []DocumentType{
	DocumentTypeInvoice,
	DocumentTypeQuotation,
	DocumentTypePurchaseOrder,
	DocumentTypeReceipt,
}

// Valid reports whether t is a known document type
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypeInvoice, DocumentTypeQuotation, DocumentTypePurchaseOrder, DocumentTypeReceipt:
		return true
	}
	return false
}

func (t DocumentType) String() string {
	return string(t)
}

// Title returns the printed heading for the document type
func (t DocumentType) Title() string {
	switch t {
	case DocumentTypeInvoice:
		return "INVOICE"
	case DocumentTypeQuotation:
		return "QUOTATION"
	case DocumentTypePurchaseOrder:
		return "PURCHASE ORDER"
	case DocumentTypeReceipt:
		return "RECEIPT"
	}
	return "DOCUMENT"
}

// Prefix returns the document number prefix for the type
func (t DocumentType) Prefix() string {
	switch t {
	case DocumentTypeInvoice:
		return "INV"
	case DocumentTypeQuotation:
		return "QUO"
	case DocumentTypePurchaseOrder:
		return "PO"
	case DocumentTypeReceipt:
		return "REC"
	}
	return "DOC"
}

// CounterSeed returns the first number in the type's sequence. The ranges
// are disjoint so numbers never collide across types.
func (t DocumentType) CounterSeed() int64 {
	switch t {
	case DocumentTypeInvoice:
		return 1000
	case DocumentTypeQuotation:
		return 2000
	case DocumentTypePurchaseOrder:
		return 3000
	case DocumentTypeReceipt:
		return 4000
	}
	return 9000
}

func (t DocumentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *DocumentType) Scan(value interface{}) error {
	if value == nil {
		*t = DocumentTypeInvoice
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = DocumentType(v)
	case []byte:
		*t = DocumentType(v)
	default:
		return fmt.Errorf("cannot scan %T into DocumentType", value)
	}
	return nil
}
