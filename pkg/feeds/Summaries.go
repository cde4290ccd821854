package feeds

import (
	"encoding/json"
	"fmt"

	"github.com/mugisham37/moses-mugisha/pkg/models"
)

/*
Summaries renders the listing-view projection as an indented JSON
document for static consumers.
*/
func Summaries(summaries []models.ProjectSummary) ([]byte, error) {
	body, err := json.MarshalIndent(summaries, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("error rendering summaries: %w", err)
	}

	return body, nil
}
