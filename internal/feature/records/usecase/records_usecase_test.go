package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	growthentity "scorecard_backend/internal/feature/growth/domain/entity"
	"scorecard_backend/internal/feature/records/domain/entity"
)

// mockRepository is a mock implementation of the Repository interface.
type mockRepository struct {
	ListCompaniesFunc func(ctx context.Context, user string) ([]string, error)
	GetFunc           func(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error)
	DeleteFunc        func(ctx context.Context, user, company string) (bool, error)
}

func (m *mockRepository) ListCompanies(ctx context.Context, user string) ([]string, error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx, user)
	}
	return []string{}, nil
}

func (m *mockRepository) Get(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, user, company)
	}
	return entity.CompanyRecord{}, false, nil
}

func (m *mockRepository) Delete(ctx context.Context, user, company string) (bool, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, user, company)
	}
	return false, nil
}

func TestRecordsUsecase_ListCompanies(t *testing.T) {
	t.Parallel()

	uc := NewRecordsUsecase(&mockRepository{
		ListCompaniesFunc: func(ctx context.Context, user string) ([]string, error) {
			assert.Equal(t, "alice", user)
			return []string{"Acme", "Initech"}, nil
		},
	})

	names, err := uc.ListCompanies(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Initech"}, names)
}

func TestRecordsUsecase_Get(t *testing.T) {
	t.Parallel()

	rec := entity.CompanyRecord{Growth: &growthentity.Result{TotalScore: 50}}
	uc := NewRecordsUsecase(&mockRepository{
		GetFunc: func(ctx context.Context, user, company string) (entity.CompanyRecord, bool, error) {
			return rec, true, nil
		},
	})

	got, found, err := uc.Get(context.Background(), "alice", "Acme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, rec, got)
}

func TestRecordsUsecase_Get_Absent(t *testing.T) {
	t.Parallel()

	uc := NewRecordsUsecase(&mockRepository{})

	_, found, err := uc.Get(context.Background(), "alice", "Ghost")
	require.NoError(t, err, "absent records are reported via the bool, not an error")
	assert.False(t, found)
}

func TestRecordsUsecase_Delete_UnknownIsNoOp(t *testing.T) {
	t.Parallel()

	uc := NewRecordsUsecase(&mockRepository{
		DeleteFunc: func(ctx context.Context, user, company string) (bool, error) {
			return false, nil
		},
	})

	assert.NoError(t, uc.Delete(context.Background(), "alice", "Ghost"))
}

func TestRecordsUsecase_Delete_RepositoryFailure(t *testing.T) {
	t.Parallel()

	uc := NewRecordsUsecase(&mockRepository{
		DeleteFunc: func(ctx context.Context, user, company string) (bool, error) {
			return false, errors.New("disk full")
		},
	})

	assert.ErrorContains(t, uc.Delete(context.Background(), "alice", "Acme"), "disk full")
}
