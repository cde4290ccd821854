package images

import (
	"fmt"
	"strings"

	"github.com/mugisham37/moses-mugisha/pkg/models"
)

const (
	/* Sizes hint applied to every image built here. */
	DefaultSizes = "calc(100vw - 24px)"

	largeWidth  = 2400
	largeHeight = 1600
)

var scaleTargets = []int{512, 1024, 2048, 4096}

/*
SrcSet expands source into a comma-separated srcset string: four
entries requesting progressively larger renditions through the
?scale-down-to query convention, then the unmodified source as the
highest-width (4500w) fallback. Pure string assembly; the URL is
never validated.
*/
func SrcSet(source string) string {
	entries := make([]string, 0, len(scaleTargets)+1)

	for _, target := range scaleTargets {
		entries = append(entries, fmt.Sprintf("%s?scale-down-to=%d %dw", source, target, target))
	}

	entries = append(entries, fmt.Sprintf("%s 4500w", source))
	return strings.Join(entries, ", ")
}

/*
New combines source, its derived srcset, alt text, and the fixed
sizes hint into an image descriptor. Width and height are carried
over only when positive.
*/
func New(source, alt string, width, height int) models.Image {
	result := models.Image{
		Src:    source,
		SrcSet: SrcSet(source),
		Alt:    alt,
		Sizes:  DefaultSizes,
	}

	if width > 0 {
		result.Width = width
	}

	if height > 0 {
		result.Height = height
	}

	return result
}

/*
Large builds the descriptor used for hero and closing images. These
always report 2400x1600.
*/
func Large(source, alt string) models.Image {
	return New(source, alt, largeWidth, largeHeight)
}

/*
Secondary builds the descriptor used for secondary and process
images. No explicit dimensions.
*/
func Secondary(source, alt string) models.Image {
	return New(source, alt, 0, 0)
}
