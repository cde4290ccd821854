package services

import (
	"github.com/mugisham37/moses-mugisha/pkg/catalog"
	"github.com/mugisham37/moses-mugisha/pkg/models"
)

type WorkServicer interface {
	GetAll() []models.Project
	GetByCategory(category models.Category) []models.Project
	GetProducts() []models.Project
	GetUIUX() []models.Project
	Get3D() []models.Project
	GetBySlug(slug string) (models.Project, error)
	GetAllSlugs() []string
	GetSummaries() []models.ProjectSummary
}

type WorkServiceConfig struct {
	Catalog *catalog.Catalog
}

/*
WorkService answers every read over the work catalog. The catalog is
immutable, so all methods are pure and safe for concurrent callers.
Summaries are projected once at construction.
*/
type WorkService struct {
	catalog   *catalog.Catalog
	summaries []models.ProjectSummary
}

func NewWorkService(config WorkServiceConfig) WorkService {
	summaries := make([]models.ProjectSummary, 0, config.Catalog.Len())

	for _, project := range config.Catalog.All() {
		summaries = append(summaries, models.ProjectSummary{
			ID:          project.ID,
			Title:       project.Title,
			Description: project.Description,
			Image:       project.ThumbnailImage,
		})
	}

	return WorkService{
		catalog:   config.Catalog,
		summaries: summaries,
	}
}

func (s WorkService) GetAll() []models.Project {
	return s.catalog.All()
}

/*
GetByCategory filters the catalog, preserving order. A category
outside the known set yields an empty slice, never an error.
*/
func (s WorkService) GetByCategory(category models.Category) []models.Project {
	result := []models.Project{}

	for _, project := range s.catalog.All() {
		if project.Category == category {
			result = append(result, project)
		}
	}

	return result
}

func (s WorkService) GetProducts() []models.Project {
	return s.GetByCategory(models.CategoryProducts)
}

func (s WorkService) GetUIUX() []models.Project {
	return s.GetByCategory(models.CategoryUIUX)
}

func (s WorkService) Get3D() []models.Project {
	return s.GetByCategory(models.Category3D)
}

/*
GetBySlug looks a project up by its slug. A missing slug is reported
as models.ErrProjectNotFound rather than a fault.
*/
func (s WorkService) GetBySlug(slug string) (models.Project, error) {
	project, ok := s.catalog.Get(slug)

	if !ok {
		return models.Project{}, models.ErrProjectNotFound
	}

	return project, nil
}

func (s WorkService) GetAllSlugs() []string {
	return s.catalog.Slugs()
}

func (s WorkService) GetSummaries() []models.ProjectSummary {
	return s.summaries
}
