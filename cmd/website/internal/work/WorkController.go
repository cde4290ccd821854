package work

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"

	"github.com/mugisham37/moses-mugisha/cmd/website/internal/viewmodels"
	"github.com/mugisham37/moses-mugisha/pkg/models"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

type WorkHandlers interface {
	ListWorks(w http.ResponseWriter, r *http.Request)
	ListWorksByCategory(w http.ResponseWriter, r *http.Request)
	GetWork(w http.ResponseWriter, r *http.Request)
	ListSlugs(w http.ResponseWriter, r *http.Request)
	ListSummaries(w http.ResponseWriter, r *http.Request)
}

type WorkControllerConfig struct {
	WorkService services.WorkServicer
}

type WorkController struct {
	workService services.WorkServicer
}

func NewWorkController(config WorkControllerConfig) WorkController {
	return WorkController{
		workService: config.WorkService,
	}
}

/*
GET /api/works
*/
func (c WorkController) ListWorks(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, c.workService.GetAll())
}

/*
GET /api/works/category/{category}

An unknown category yields an empty list, not an error.
*/
func (c WorkController) ListWorksByCategory(w http.ResponseWriter, r *http.Request) {
	category := httphelpers.GetFromRequest[string](r, "category")
	writeJson(w, http.StatusOK, c.workService.GetByCategory(models.Category(category)))
}

/*
GET /api/works/{slug}
*/
func (c WorkController) GetWork(w http.ResponseWriter, r *http.Request) {
	slug := httphelpers.GetFromRequest[string](r, "slug")

	project, err := c.workService.GetBySlug(slug)

	if err != nil {
		writeJson(w, http.StatusNotFound, viewmodels.ErrorResponse{
			Message: "work not found",
		})

		return
	}

	writeJson(w, http.StatusOK, project)
}

/*
GET /api/slugs
*/
func (c WorkController) ListSlugs(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, c.workService.GetAllSlugs())
}

/*
GET /api/summaries
*/
func (c WorkController) ListSummaries(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, c.workService.GetSummaries())
}

func writeJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
