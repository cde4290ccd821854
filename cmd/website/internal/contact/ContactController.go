package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"

	"github.com/mugisham37/moses-mugisha/cmd/website/internal/configuration"
	"github.com/mugisham37/moses-mugisha/cmd/website/internal/viewmodels"
	"github.com/mugisham37/moses-mugisha/pkg/models"
	"github.com/mugisham37/moses-mugisha/pkg/services"
)

type ContactHandlers interface {
	SubmitInquiry(w http.ResponseWriter, r *http.Request)
}

type ContactControllerConfig struct {
	Config         *configuration.Config
	InquiryService services.InquiryServicer
}

type ContactController struct {
	config         *configuration.Config
	inquiryService services.InquiryServicer
}

func NewContactController(config ContactControllerConfig) ContactController {
	return ContactController{
		config:         config.Config,
		inquiryService: config.InquiryService,
	}
}

/*
POST /api/contact
*/
func (c ContactController) SubmitInquiry(w http.ResponseWriter, r *http.Request) {
	inquiry := models.Inquiry{
		Name:    httphelpers.GetFromRequest[string](r, "name"),
		Email:   httphelpers.GetFromRequest[string](r, "email"),
		Message: httphelpers.GetFromRequest[string](r, "message"),
	}

	id, err := c.inquiryService.Save(inquiry)

	if err != nil {
		if errors.Is(err, services.ErrInvalidInquiry) {
			writeJson(w, http.StatusBadRequest, viewmodels.ErrorResponse{
				Message: err.Error(),
			})

			return
		}

		slog.Error("error saving inquiry", "error", err, "email", inquiry.Email)

		writeJson(w, http.StatusInternalServerError, viewmodels.ErrorResponse{
			Message: "There was a problem saving your message.",
		})

		return
	}

	// Notification delivery must not hold up the response.
	go func() {
		err := services.SendInquiryEmail(
			c.config.EmailApiKey,
			c.config.ContactToName,
			c.config.ContactToEmail,
			c.config.ContactFromName,
			c.config.ContactFromEmail,
			inquiry,
		)

		if err != nil {
			slog.Error("failed to send inquiry notification", "error", err, "email", inquiry.Email)
		}
	}()

	writeJson(w, http.StatusCreated, viewmodels.ContactResponse{
		ID:     id,
		Status: "received",
	})
}

func writeJson(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}
