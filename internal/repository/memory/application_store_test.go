package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visahub/visahub/internal/domain/application"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

func newTestApplication(id string) *application.Application {
	return &application.Application{
		ID:              id,
		ReferenceNumber: types.GenerateReferenceNumber(types.REFERENCE_PREFIX_APPLICATION),
		FirstName:       "Ana",
		LastName:        "Silva",
		Email:           id + "@example.com",
		Phone:           "+351912345678",
		Country:         "Canada",
		VisaType:        "Work Permit",
		Status:          types.ApplicationStatusPending,
		Documents:       application.DocumentList{},
		BaseModel:       types.GetDefaultBaseModel(),
	}
}

func TestApplicationStoreCRUD(t *testing.T) {
	store := NewInMemoryApplicationStore()
	ctx := context.Background()

	app := newTestApplication("app_1")
	require.NoError(t, store.Create(ctx, app))

	// duplicate ids are rejected
	err := store.Create(ctx, newTestApplication("app_1"))
	require.Error(t, err)
	assert.True(t, ierr.IsAlreadyExists(err))

	got, err := store.Get(ctx, "app_1")
	require.NoError(t, err)
	assert.Equal(t, app.Email, got.Email)

	got.Status = types.ApplicationStatusApproved
	require.NoError(t, store.Update(ctx, got))

	updated, err := store.Get(ctx, "app_1")
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationStatusApproved, updated.Status)

	require.NoError(t, store.Delete(ctx, "app_1"))
	_, err = store.Get(ctx, "app_1")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))

	err = store.Delete(ctx, "app_1")
	require.Error(t, err)
	assert.True(t, ierr.IsNotFound(err))
}

func TestApplicationStoreReturnsCopies(t *testing.T) {
	store := NewInMemoryApplicationStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newTestApplication("app_1")))

	first, err := store.Get(ctx, "app_1")
	require.NoError(t, err)
	first.FirstName = "mutated"
	first.Documents = append(first.Documents, application.DocumentRef{ID: "doc_1"})

	second, err := store.Get(ctx, "app_1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", second.FirstName)
	assert.Empty(t, second.Documents)
}

func TestApplicationStoreListFilterAndPagination(t *testing.T) {
	store := NewInMemoryApplicationStore()
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		app := newTestApplication(fmt.Sprintf("app_%02d", i))
		if i%3 == 0 {
			app.Status = types.ApplicationStatusApproved
		}
		require.NoError(t, store.Create(ctx, app))
	}

	approved, err := store.List(ctx, &types.ApplicationFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		Status:      types.ApplicationStatusApproved,
	})
	require.NoError(t, err)
	assert.Len(t, approved, 5)

	total, err := store.Count(ctx, &types.ApplicationFilter{Status: types.ApplicationStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	page2, err := store.List(ctx, &types.ApplicationFilter{
		QueryFilter: &types.QueryFilter{Page: lo.ToPtr(2), Limit: lo.ToPtr(10)},
	})
	require.NoError(t, err)
	assert.Len(t, page2, 5)

	// past the last page comes back empty, not an error
	page3, err := store.List(ctx, &types.ApplicationFilter{
		QueryFilter: &types.QueryFilter{Page: lo.ToPtr(3), Limit: lo.ToPtr(10)},
	})
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestApplicationStoreListOrderIsDeterministic(t *testing.T) {
	store := NewInMemoryApplicationStore()
	ctx := context.Background()

	base := types.GetDefaultBaseModel()
	for i := 0; i < 5; i++ {
		app := newTestApplication(fmt.Sprintf("app_%d", i))
		app.BaseModel = base
		require.NoError(t, store.Create(ctx, app))
	}

	first, err := store.List(ctx, &types.ApplicationFilter{QueryFilter: types.NewNoLimitQueryFilter()})
	require.NoError(t, err)

	second, err := store.List(ctx, &types.ApplicationFilter{QueryFilter: types.NewNoLimitQueryFilter()})
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}
