package catalog

import (
	"fmt"

	"github.com/mugisham37/moses-mugisha/pkg/models"
)

/*
Catalog is the complete slug -> Project mapping for the portfolio. It
is built once from the authored data in Projects.go and never mutated
afterward, so any number of callers may read it concurrently without
coordination.
*/
type Catalog struct {
	slugs    []string
	projects map[string]models.Project
}

/*
New builds the catalog from the authored project list. Each map key
is taken from its project's ID, so key and ID agree by construction.
A duplicate slug or a category outside the known set fails fast.
*/
func New() (*Catalog, error) {
	return build(projectData)
}

func build(data []models.Project) (*Catalog, error) {
	result := &Catalog{
		slugs:    make([]string, 0, len(data)),
		projects: make(map[string]models.Project, len(data)),
	}

	for _, project := range data {
		if _, exists := result.projects[project.ID]; exists {
			return nil, fmt.Errorf("duplicate project slug %q", project.ID)
		}

		if !project.Category.IsValid() {
			return nil, fmt.Errorf("project %q has unknown category %q", project.ID, project.Category)
		}

		result.slugs = append(result.slugs, project.ID)
		result.projects[project.ID] = project
	}

	return result, nil
}

/*
All returns every project in authored order.
*/
func (c *Catalog) All() []models.Project {
	result := make([]models.Project, 0, len(c.slugs))

	for _, slug := range c.slugs {
		result = append(result, c.projects[slug])
	}

	return result
}

/*
Get looks a project up by its slug.
*/
func (c *Catalog) Get(slug string) (models.Project, bool) {
	project, ok := c.projects[slug]
	return project, ok
}

/*
Slugs returns every slug in the same order as All.
*/
func (c *Catalog) Slugs() []string {
	result := make([]string, len(c.slugs))
	copy(result, c.slugs)
	return result
}

func (c *Catalog) Len() int {
	return len(c.slugs)
}
