package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugisham37/moses-mugisha/pkg/images"
	"github.com/mugisham37/moses-mugisha/pkg/models"
)

func TestNewBuildsOrderedCatalog(t *testing.T) {
	c, err := New()

	require.NoError(t, err)
	require.Equal(t, len(projectData), c.Len())

	all := c.All()
	slugs := c.Slugs()

	require.Len(t, all, c.Len())
	require.Len(t, slugs, c.Len())

	for index, project := range all {
		assert.Equal(t, projectData[index].ID, project.ID)
		assert.Equal(t, project.ID, slugs[index])
	}
}

func TestGet(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	project, ok := c.Get("corevia-financial-platform")

	require.True(t, ok)
	assert.Equal(t, "corevia-financial-platform", project.ID)
	assert.Equal(t, models.CategoryProducts, project.Category)
	assert.Equal(t, "https://corevias.netlify.app/", project.ExternalLink)

	_, ok = c.Get("does-not-exist")
	assert.False(t, ok)
}

func TestEveryProjectUsesTheImageBuilders(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	for _, project := range c.All() {
		large := []models.Image{project.HeroImage, project.ClosingImage}
		secondary := []models.Image{project.SecondaryImage, project.ProcessImage}

		for _, img := range large {
			assert.Equal(t, images.SrcSet(img.Src), img.SrcSet, project.ID)
			assert.Equal(t, 2400, img.Width, project.ID)
			assert.Equal(t, 1600, img.Height, project.ID)
			assert.Equal(t, images.DefaultSizes, img.Sizes, project.ID)
			assert.NotEmpty(t, img.Alt, project.ID)
		}

		for _, img := range secondary {
			assert.Equal(t, images.SrcSet(img.Src), img.SrcSet, project.ID)
			assert.Zero(t, img.Width, project.ID)
			assert.Zero(t, img.Height, project.ID)
			assert.NotEmpty(t, img.Alt, project.ID)
		}

		assert.NotEmpty(t, project.ProblemDescription, project.ID)
		assert.NotEmpty(t, project.SolutionDescription, project.ID)
	}
}

func TestBuildRejectsDuplicateSlugs(t *testing.T) {
	data := []models.Project{
		{ID: "twice", Category: models.CategoryProducts},
		{ID: "twice", Category: models.CategoryUIUX},
	}

	_, err := build(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate project slug")
}

func TestBuildRejectsUnknownCategories(t *testing.T) {
	data := []models.Project{
		{ID: "odd-one", Category: models.Category("sculptures")},
	}

	_, err := build(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}
