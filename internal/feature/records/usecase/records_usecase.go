// Package usecase implements the business logic for saved-record operations.
package usecase

import (
	"context"
	"fmt"

	"scorecard_backend/internal/feature/records/domain/entity"
)

// Repository abstracts the record store for read and delete operations.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type Repository interface {
	// ListCompanies returns the user's saved company names in stable order.
	ListCompanies(ctx context.Context, user string) ([]string, error)

	// Get returns the company's record and whether one exists.
	Get(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error)

	// Delete removes the company's record, reporting whether anything was removed.
	Delete(ctx context.Context, user, company string) (bool, error)
}

// recordsUsecase provides listing, detail, and deletion of saved records.
type recordsUsecase struct {
	repo Repository
}

// NewRecordsUsecase creates a new recordsUsecase with the given repository.
func NewRecordsUsecase(r Repository) *recordsUsecase {
	return &recordsUsecase{repo: r}
}

// ListCompanies returns the companies the user has any saved record for.
// Unknown users get an empty list, never an error.
func (u *recordsUsecase) ListCompanies(ctx context.Context, user string) ([]string, error) {
	names, err := u.repo.ListCompanies(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return names, nil
}

// Get returns the company's saved record and whether one exists.
func (u *recordsUsecase) Get(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error) {
	rec, found, err := u.repo.Get(ctx, user, company)
	if err != nil {
		return entity.CompanyRecord{}, false, fmt.Errorf("get record: %w", err)
	}
	return rec, found, nil
}

// Delete removes the company's record. Deleting an unknown company is a
// no-op, not an error.
func (u *recordsUsecase) Delete(ctx context.Context, user, company string) error {
	if _, err := u.repo.Delete(ctx, user, company); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
