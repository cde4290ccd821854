package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugisham37/moses-mugisha/pkg/catalog"
	"github.com/mugisham37/moses-mugisha/pkg/models"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

func newWorkService(t *testing.T) services.WorkService {
	t.Helper()

	c, err := catalog.New()
	require.NoError(t, err)

	return services.NewWorkService(services.WorkServiceConfig{
		Catalog: c,
	})
}

func TestGetAllMatchesSlugs(t *testing.T) {
	service := newWorkService(t)

	all := service.GetAll()
	slugs := service.GetAllSlugs()

	require.Len(t, slugs, len(all))

	for index, project := range all {
		assert.Equal(t, project.ID, slugs[index])
	}
}

func TestGetByCategory(t *testing.T) {
	service := newWorkService(t)

	categories := []models.Category{
		models.CategoryProducts,
		models.CategoryUIUX,
		models.Category3D,
	}

	total := 0

	for _, category := range categories {
		projects := service.GetByCategory(category)
		total += len(projects)

		for _, project := range projects {
			assert.Equal(t, category, project.Category)
		}
	}

	// Categories are single-valued, so the three lists partition the catalog.
	assert.Equal(t, len(service.GetAll()), total)
}

func TestGetByCategoryUnknownValueYieldsEmpty(t *testing.T) {
	service := newWorkService(t)

	assert.Empty(t, service.GetByCategory(models.Category("watercolors")))
}

func TestCategoryWrappers(t *testing.T) {
	service := newWorkService(t)

	assert.Equal(t, service.GetByCategory(models.CategoryProducts), service.GetProducts())
	assert.Equal(t, service.GetByCategory(models.CategoryUIUX), service.GetUIUX())
	assert.Equal(t, service.GetByCategory(models.Category3D), service.Get3D())
}

func TestGetBySlug(t *testing.T) {
	service := newWorkService(t)

	for _, slug := range service.GetAllSlugs() {
		project, err := service.GetBySlug(slug)

		require.NoError(t, err)
		assert.Equal(t, slug, project.ID)
	}

	project, err := service.GetBySlug("corevia-financial-platform")
	require.NoError(t, err)
	assert.Equal(t, models.CategoryProducts, project.Category)
	assert.Equal(t, "https://corevias.netlify.app/", project.ExternalLink)

	_, err = service.GetBySlug("does-not-exist")
	assert.ErrorIs(t, err, models.ErrProjectNotFound)
}

func TestGetSummaries(t *testing.T) {
	service := newWorkService(t)

	all := service.GetAll()
	summaries := service.GetSummaries()

	require.Len(t, summaries, len(all))

	for index, summary := range summaries {
		assert.Equal(t, all[index].ID, summary.ID)
		assert.Equal(t, all[index].Title, summary.Title)
		assert.Equal(t, all[index].Description, summary.Description)
		assert.Equal(t, all[index].ThumbnailImage, summary.Image)
	}

	wanted, err := service.GetBySlug("stayli-vacation-rental-platform")
	require.NoError(t, err)

	found := false

	for _, summary := range summaries {
		if summary.ID == wanted.ID {
			found = true
			assert.Equal(t, wanted.ThumbnailImage, summary.Image)
		}
	}

	assert.True(t, found)
}

func TestQueriesAreIdempotent(t *testing.T) {
	service := newWorkService(t)

	assert.Equal(t, service.GetAll(), service.GetAll())
	assert.Equal(t, service.GetAllSlugs(), service.GetAllSlugs())
	assert.Equal(t, service.GetSummaries(), service.GetSummaries())
	assert.Equal(t, service.GetProducts(), service.GetProducts())

	first, err := service.GetBySlug("nova-audio-lineup")
	require.NoError(t, err)

	second, err := service.GetBySlug("nova-audio-lineup")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
