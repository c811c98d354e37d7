package customer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/ordenes-api/internal/entity"
	"github.com/MikeMC777/ordenes-api/internal/guard"
	"github.com/MikeMC777/ordenes-api/internal/store/memstore"
)

func newRepo() (*StoreRepo, *memstore.Provider[entity.Customer, *entity.Customer]) {
	p := memstore.New[entity.Customer]()
	return NewStoreRepo(p), p
}

func john(t *testing.T) *Customer {
	t.Helper()
	c, err := New(0, "John", "Doe", "078 0156 5740", "john.doe@lineten.com")
	require.NoError(t, err)
	return c
}

func TestAddThenGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	added, err := repo.Add(ctx, john(t))
	require.NoError(t, err)
	assert.Equal(t, 1, added.ID)

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	want := john(t)
	want.ID = 1
	assert.Equal(t, want, got)
}

func TestGetMissingReturnsNil(t *testing.T) {
	repo, _ := newRepo()
	got, err := repo.Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateThenGet(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()
	added, err := repo.Add(ctx, john(t))
	require.NoError(t, err)

	changed := *added
	changed.Email = "j.doe@lineten.com"
	changed.Phone = "078 0000 0000"

	updated, err := repo.Update(ctx, &changed)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, &changed, updated)

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "j.doe@lineten.com", got.Email)
	assert.Equal(t, "078 0000 0000", got.Phone)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	repo, p := newRepo()
	c := john(t)
	c.ID = 99

	got, err := repo.Update(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, p.Len())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, p := newRepo()
	added, err := repo.Add(ctx, john(t))
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, p.Len())

	got, err := repo.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err = repo.Delete(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()
	repo, _ := newRepo()

	list, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for i := 0; i < 3; i++ {
		_, err := repo.Add(ctx, john(t))
		require.NoError(t, err)
	}
	list, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestRepoArgumentChecks(t *testing.T) {
	ctx := context.Background()
	repo, p := newRepo()

	_, err := repo.Add(ctx, nil)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)
	param, _ := guard.Param(err)
	assert.Equal(t, "newCustomer", param)

	_, err = repo.Update(ctx, nil)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)

	_, err = repo.Update(ctx, john(t))
	assert.ErrorIs(t, err, guard.ErrOutOfRange)
	param, _ = guard.Param(err)
	assert.Equal(t, "updatedCustomer.Id", param)

	_, err = repo.Get(ctx, 0)
	assert.ErrorIs(t, err, guard.ErrOutOfRange)

	_, err = repo.Delete(ctx, 0)
	assert.ErrorIs(t, err, guard.ErrOutOfRange)

	assert.Equal(t, 0, p.Len())
}

func TestCancelledContextDiscardsAdd(t *testing.T) {
	repo, p := newRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Add(ctx, john(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, p.Len())
}

func TestAddOverExistingIDFails(t *testing.T) {
	ctx := context.Background()
	repo, p := newRepo()
	_, err := repo.Add(ctx, john(t))
	require.NoError(t, err)

	eve, err := New(1, "Eve", "Doe", "078 0156 5741", "eve@lineten.com")
	require.NoError(t, err)
	_, err = repo.Add(ctx, eve)
	assert.ErrorIs(t, err, memstore.ErrDuplicateKey)

	assert.Equal(t, 1, p.Len())
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "John", got.FirstName)
}
