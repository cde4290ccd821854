package models

import (
	"fmt"
)

var (
	ErrProjectNotFound = fmt.Errorf("project not found")
)

/*
Category is the closed set of portfolio categories. Anything outside
this set is a modeling error and is rejected when the catalog is built.
*/
type Category string

const (
	CategoryProducts Category = "products"
	CategoryUIUX     Category = "uiux"
	Category3D       Category = "3d"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryProducts, CategoryUIUX, Category3D:
		return true
	}

	return false
}

type ProjectAbout struct {
	Client       string `json:"client"`
	Contribution string `json:"contribution"`
	Year         string `json:"year"`
}

/*
Project is one portfolio case study, keyed by its ID slug.
ProblemDescription and SolutionDescription are ordered paragraph
lists and are rendered in sequence.
*/
type Project struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Category            Category     `json:"category"`
	ThumbnailImage      string       `json:"thumbnailImage"`
	HeroImage           Image        `json:"heroImage"`
	SecondaryImage      Image        `json:"secondaryImage"`
	ProcessImage        Image        `json:"processImage"`
	ClosingImage        Image        `json:"closingImage"`
	About               ProjectAbout `json:"about"`
	FullDescription     string       `json:"fullDescription"`
	ProblemTitle        string       `json:"problemTitle"`
	SolutionTitle       string       `json:"solutionTitle"`
	ProblemDescription  []string     `json:"problemDescription"`
	SolutionDescription []string     `json:"solutionDescription"`
	ExternalLink        string       `json:"externalLink,omitempty"`
}

/*
ProjectSummary is the reduced projection used by listing views. Image
carries the project's thumbnail URL.
*/
type ProjectSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
