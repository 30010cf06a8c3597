package user

import (
	"context"
	"testing"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	cache, err := bigcache.New(context.Background(), bigcache.DefaultConfig(time.Hour))
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return NewRepository(cache)
}

func TestToggleSavedJobOnUser(t *testing.T) {
	u := User{ID: "u1"}
	assert.True(t, u.ToggleSavedJob("1"))
	assert.True(t, u.ToggleSavedJob("4"))
	assert.Equal(t, []string{"1", "4"}, u.SavedJobIDs)
	assert.True(t, u.HasSavedJob("4"))

	assert.False(t, u.ToggleSavedJob("1"))
	assert.Equal(t, []string{"4"}, u.SavedJobIDs)
	assert.False(t, u.HasSavedJob("1"))
}

func TestRepositorySaveGetDelete(t *testing.T) {
	repo := newTestRepository(t)
	u := User{
		ID:     "u-1",
		Name:   "ana",
		Email:  "ana@example.com",
		Role:   RoleCandidate,
		Skills: []string{"Go", "React"},
		Education: []Education{
			{ID: "e1", Institution: "UEM", Degree: "Informática"},
		},
	}
	require.NoError(t, repo.Save(u))

	got, err := repo.Get("u-1")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	require.NoError(t, repo.Delete("u-1"))
	_, err = repo.Get("u-1")
	assert.True(t, errors.Is(err, ErrUserNotFound))

	assert.NoError(t, repo.Delete("u-1"))
}

func TestRepositoryToggleSavedJob(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Save(User{ID: "u-2", Role: RoleCandidate}))

	u, saved, err := repo.ToggleSavedJob("u-2", "3")
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []string{"3"}, u.SavedJobIDs)

	u, saved, err = repo.ToggleSavedJob("u-2", "3")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, u.SavedJobIDs)

	stored, err := repo.Get("u-2")
	require.NoError(t, err)
	assert.Empty(t, stored.SavedJobIDs)

	_, _, err = repo.ToggleSavedJob("missing", "3")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestRepositoryPending(t *testing.T) {
	repo := newTestRepository(t)
	p := Pending{Name: "Empresa X", Email: "rh@x.co.mz", Role: RoleCompany}

	token, err := repo.SavePending(p)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := repo.GetPending(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)

	require.NoError(t, repo.DeletePending(token))
	_, err = repo.GetPending(token)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestRepositorySavedJobIDs(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Save(User{ID: "u-3", SavedJobIDs: []string{"1", "4"}}))

	ids, err := repo.SavedJobIDs("u-3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids)

	_, err = repo.SavedJobIDs("missing")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
