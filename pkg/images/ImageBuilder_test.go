package images_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mugisham37/moses-mugisha/pkg/images"
)

func TestSrcSet(t *testing.T) {
	source := "https://framerusercontent.com/images/a1b2c3.png"

	got := images.SrcSet(source)
	entries := strings.Split(got, ", ")

	require.Len(t, entries, 5)

	assert.Equal(t, source+"?scale-down-to=512 512w", entries[0])
	assert.Equal(t, source+"?scale-down-to=1024 1024w", entries[1])
	assert.Equal(t, source+"?scale-down-to=2048 2048w", entries[2])
	assert.Equal(t, source+"?scale-down-to=4096 4096w", entries[3])
	assert.Equal(t, source+" 4500w", entries[4])
}

func TestSrcSetIsDeterministic(t *testing.T) {
	source := "https://framerusercontent.com/images/d4e5f6.jpg"
	assert.Equal(t, images.SrcSet(source), images.SrcSet(source))
}

func TestLarge(t *testing.T) {
	img := images.Large("https://framerusercontent.com/images/hero.png", "Hero shot")

	assert.Equal(t, "https://framerusercontent.com/images/hero.png", img.Src)
	assert.Equal(t, images.SrcSet(img.Src), img.SrcSet)
	assert.Equal(t, "Hero shot", img.Alt)
	assert.Equal(t, 2400, img.Width)
	assert.Equal(t, 1600, img.Height)
	assert.Equal(t, images.DefaultSizes, img.Sizes)
}

func TestSecondary(t *testing.T) {
	img := images.Secondary("https://framerusercontent.com/images/process.png", "Process collage")

	assert.Equal(t, "Process collage", img.Alt)
	assert.Zero(t, img.Width)
	assert.Zero(t, img.Height)
	assert.Equal(t, images.DefaultSizes, img.Sizes)
}

func TestNewSkipsNonPositiveDimensions(t *testing.T) {
	img := images.New("https://framerusercontent.com/images/odd.png", "Odd one", 800, 0)

	assert.Equal(t, 800, img.Width)
	assert.Zero(t, img.Height)
}
