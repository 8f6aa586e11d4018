package services

import (
	"errors"
	"io/fs"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/ns-engineering/contentbuild/internal/core/domain"
	"github.com/ns-engineering/contentbuild/internal/core/ports/driven"
	"github.com/ns-engineering/contentbuild/internal/logger"
)

// Hero carousel content locations.
const (
	HeroFile      = "homepage_hero/hero_carousel.csv"
	HeroImagesDir = "homepage_hero/images"
	HeroPublicDir = "hero"
)

var (
	altSeparators = strings.NewReplacer("-", " ", "_", " ")
	altDigits     = regexp.MustCompile(`\d+`)
)

// HeroArtifact is the body of hero-carousel.json.
type HeroArtifact struct {
	Images   []domain.HeroImage `json:"images"`
	Metadata domain.Envelope    `json:"metadata"`
}

// HeroCarousel builds the homepage slides from the images directory.
type HeroCarousel struct {
	reader driven.RecordReader
	media  driven.MediaResolver
	brand  string
}

// NewHeroCarousel creates a carousel builder. brand prefixes generated
// alt text.
func NewHeroCarousel(reader driven.RecordReader, media driven.MediaResolver, brand string) *HeroCarousel {
	return &HeroCarousel{reader: reader, media: media, brand: brand}
}

// Images lists the carousel slides in natural filename order. It never
// fails: a missing directory or unreadable CSV only warns.
func (h *HeroCarousel) Images(warn *Warnings) []domain.HeroImage {
	images := []domain.HeroImage{}

	if !h.media.Exists(HeroImagesDir) {
		warn.Add("", "images directory not found: %s", contentPath(h.media, HeroImagesDir))
		return images
	}
	files, err := h.media.List(HeroImagesDir, domain.MediaCarousel)
	if err != nil {
		warn.Add("", "could not read %s: %v", HeroImagesDir, err)
		return images
	}
	if len(files) == 0 {
		warn.Add("", "no images found in %s", contentPath(h.media, HeroImagesDir))
		return images
	}
	logger.Debug("found %d hero images", len(files))

	alt := h.altTexts(files, warn)
	for i, f := range files {
		text := alt(i, f)
		if text == "" {
			text = GenerateAltText(h.brand, f, i)
		}
		images = append(images, domain.HeroImage{
			Order:    i + 1,
			Filename: f,
			Alt:      text,
			Path:     "/" + path.Join(HeroPublicDir, f),
		})
	}
	return images
}

// altTexts loads the optional CSV and returns a lookup by sorted index
// and filename. With a filename column rows match by name; without it
// they match by position.
func (h *HeroCarousel) altTexts(files []string, warn *Warnings) func(int, string) string {
	none := func(int, string) string { return "" }

	records, err := h.reader.Read(contentPath(h.media, HeroFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("no hero_carousel.csv, generating alt text")
		return none
	case err != nil:
		warn.Add("", "could not parse hero_carousel.csv, using generated alt text: %v", err)
		return none
	}

	if len(records) > 0 && records[0].Has("filename") {
		known := make(map[string]bool, len(files))
		for _, f := range files {
			known[f] = true
		}
		byName := make(map[string]string, len(records))
		for _, rec := range records {
			name, text := rec.Get("filename"), rec.Get("alt_text")
			if name == "" || text == "" {
				continue
			}
			if !known[name] {
				warn.Add("", "alt text given for unknown image %q", name)
				continue
			}
			byName[name] = text
		}
		return func(_ int, name string) string { return byName[name] }
	}

	var positional []string
	for _, rec := range records {
		if text := rec.Get("alt_text"); text != "" {
			positional = append(positional, text)
		}
	}
	if len(records) > 0 && len(positional) != len(files) {
		warn.Add("", "%d alt texts for %d images, matching by position", len(positional), len(files))
	}
	return func(i int, _ string) string {
		if i < len(positional) {
			return positional[i]
		}
		return ""
	}
}

// GenerateAltText derives alt text from a filename: separators become
// spaces and digits are dropped. index is the 0-based slide position.
func GenerateAltText(brand, filename string, index int) string {
	name := strings.TrimSuffix(filename, path.Ext(filename))
	clean := strings.TrimSpace(altDigits.ReplaceAllString(altSeparators.Replace(name), ""))
	if clean != "" {
		return brand + " - " + clean
	}
	return brand + " organizational evolution - Image " + strconv.Itoa(index+1)
}

func heroFilenames(images []domain.HeroImage) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.Filename
	}
	return out
}
