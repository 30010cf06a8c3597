package job

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositorySlugsAndLookups(t *testing.T) {
	repo := NewRepository(MockJobs)

	j, err := repo.JobByID("1")
	require.NoError(t, err)
	assert.Equal(t, "desenvolvedor-senior-react-techmoz-solutions-1", j.Slug)

	bySlug, err := repo.JobBySlug(j.Slug)
	require.NoError(t, err)
	assert.Equal(t, j, bySlug)

	_, err = repo.JobBySlug("nope")
	assert.True(t, errors.Is(err, ErrJobNotFound))
	_, err = repo.JobByID("42")
	assert.True(t, errors.Is(err, ErrJobNotFound))
}

func TestRepositoryDoesNotShareBackingData(t *testing.T) {
	repo := NewRepository(MockJobs)
	all := repo.All()
	all[0].Title = "changed"
	all[0].Requirements[0] = "changed"

	j, err := repo.JobByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Desenvolvedor Senior React", j.Title)
	assert.Equal(t, "5+ anos de experiência em React", MockJobs[0].Requirements[0])
}

func TestRepositoryFeatured(t *testing.T) {
	assert.Equal(t, []string{"1", "4"}, ids(NewRepository(MockJobs).Featured()))
}

func TestRepositoryJobsByQueryPagination(t *testing.T) {
	repo := NewRepository(MockJobs)

	page, total := repo.JobsByQuery(Criteria{}, 1, 3)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"1", "2", "3"}, ids(page))

	page, total = repo.JobsByQuery(Criteria{}, 2, 3)
	assert.Equal(t, 4, total)
	assert.Equal(t, []string{"4"}, ids(page))

	page, _ = repo.JobsByQuery(Criteria{}, 0, 3)
	assert.Equal(t, []string{"1", "2", "3"}, ids(page))

	page, total = repo.JobsByQuery(Criteria{}, 5, 3)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)

	page, total = repo.JobsByQuery(Criteria{}, math.MaxInt64, 10)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)

	page, total = repo.JobsByQuery(Criteria{}, math.MaxInt64/3+1, 3)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)

	page, total = repo.JobsByQuery(Criteria{}, 1, math.MaxInt64)
	assert.Equal(t, 4, total)
	assert.Len(t, page, 4)

	page, total = repo.JobsByQuery(Criteria{Types: []Type{TypeFullTime}}, 1, 0)
	assert.Equal(t, 3, total)
	assert.Len(t, page, 3)
}

func TestRepositoryLastN(t *testing.T) {
	repo := NewRepository(MockJobs)
	assert.Equal(t, []string{"4", "3"}, ids(repo.LastN(Criteria{}, 2)))
	assert.Equal(t, []string{"4", "2", "1"}, ids(repo.LastN(Criteria{Types: []Type{TypeFullTime}}, 0)))
}

func TestRepositoryFilterOptions(t *testing.T) {
	repo := NewRepository(MockJobs)
	provinces := repo.Provinces()
	assert.Equal(t, Provinces, provinces)
	provinces[0] = "changed"
	assert.NotEqual(t, "changed", repo.Provinces()[0])
	assert.Equal(t, Categories, repo.Categories())
}
