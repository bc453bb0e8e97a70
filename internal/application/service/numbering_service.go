package service

import (
	"context"
	"fmt"

	"github.com/docugen/docugen-api/internal/domain/entity"
	"github.com/docugen/docugen-api/internal/domain/enum"
	"github.com/docugen/docugen-api/internal/domain/repository"
	"github.com/docugen/docugen-api/pkg/apperror"
)

// NumberingService hands out sequential document numbers per document type
type NumberingService struct {
	counterRepo repository.CounterRepository
}

// NewNumberingService creates a new numbering service
func NewNumberingService(counterRepo repository.CounterRepository) *NumberingService {
	return &NumberingService{
		counterRepo: counterRepo,
	}
}

// Next allocates the next number for the document type and advances the
// counter. Counters missing from the store are seeded on first use, so a
// fresh database starts invoices at INV-1000, quotations at QUO-2000 and
// so on.
func (s *NumberingService) Next(ctx context.Context, docType enum.DocumentType) (string, error) {
	if !docType.Valid() {
		return "", apperror.NewBadRequestError("Unknown document type")
	}

	counter, err := s.counterRepo.Get(ctx, docType)
	if err != nil {
		return "", err
	}
	if counter == nil {
		counter = &entity.DocumentCounter{
			DocumentType: docType,
			NextValue:    docType.CounterSeed(),
		}
	}

	number := fmt.Sprintf("%s-%d", docType.Prefix(), counter.NextValue)

	counter.NextValue++
	if err := s.counterRepo.Save(ctx, counter); err != nil {
		return "", err
	}

	return number, nil
}

// Peek returns the number the next allocation would produce without
// advancing the counter.
func (s *NumberingService) Peek(ctx context.Context, docType enum.DocumentType) (string, error) {
	if !docType.Valid() {
		return "", apperror.NewBadRequestError("Unknown document type")
	}

	counter, err := s.counterRepo.Get(ctx, docType)
	if err != nil {
		return "", err
	}
	next := docType.CounterSeed()
	if counter != nil {
		next = counter.NextValue
	}

	return fmt.Sprintf("%s-%d", docType.Prefix(), next), nil
}
