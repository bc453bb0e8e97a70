package handler

import (
	"github.com/docugen/docugen-api/internal/application/service"
	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/internal/presentation/http/dto/request"
)

// toDocumentInput converts a document request into the service input shape
func toDocumentInput(req *request.DocumentRequest) *service.DocumentInput {
	items := make([]entity.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, entity.LineItem{
			Description:     item.Description,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			DiscountPercent: item.DiscountPercent,
		})
	}

	return &service.DocumentInput{
		Type:      enum.DocumentType(req.Type),
		Number:    req.Number,
		IssueDate: req.IssueDate,
		DueDate:   req.DueDate,
		Client: entity.PartyInfo{
			Name:    req.Client.Name,
			Email:   req.Client.Email,
			Address: req.Client.Address,
		},
		Items: items,
	}
}
