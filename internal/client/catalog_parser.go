package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"dynamic/catalogs/internal/domain"

	log "github.com/sirupsen/logrus"
)

const (
	imageBaseURL   = "https://images.metahub.space"
	videoIDLength  = 11
	videoIDMarker  = "v="
	trailerKindTag = "Trailer"
)

type catalogParser struct {
	imageBaseURL string
}

func newCatalogParser() *catalogParser {
	return &catalogParser{
		imageBaseURL: imageBaseURL,
	}
}

// ParseCatalogPage normalizes a Trakt item array into a catalog page, keeping
// provider order. Any malformed item fails the whole page.
func (p *catalogParser) ParseCatalogPage(raw json.RawMessage, genre *string) (domain.CatalogPage, error) {
	var items []traktItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%w: expected an array of items: %v", domain.ErrParse, err)
	}

	page := domain.EmptyCatalogPage()
	for i, item := range items {
		meta, err := p.parseItem(item)
		if err != nil {
			return domain.CatalogPage{}, fmt.Errorf("item %d: %w", i, err)
		}
		page.Metas = append(page.Metas, meta)
	}

	if genre != nil {
		log.Debugf("Parsed %d items for genre %q", len(page.Metas), *genre)
	} else {
		log.Debugf("Parsed %d items", len(page.Metas))
	}
	return page, nil
}

func (p *catalogParser) parseItem(item traktItem) (domain.CatalogItem, error) {
	tag := item.Type
	if tag == "" {
		tag = inferTag(item)
	}

	var (
		contentType domain.ContentType
		body        json.RawMessage
	)
	switch tag {
	case traktTypeMovie:
		contentType, body = domain.ContentTypeMovie, item.Movie
	case traktTypeShow:
		contentType, body = domain.ContentTypeSeries, item.Show
	default:
		return domain.CatalogItem{}, fmt.Errorf("%w: unknown item type %q", domain.ErrParse, item.Type)
	}

	if isAbsent(body) {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s item has no %s object", domain.ErrParse, tag, tag)
	}

	var media traktMedia
	if err := json.Unmarshal(body, &media); err != nil {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s: %v", domain.ErrParse, tag, err)
	}

	if media.IDs.IMDB == nil || *media.IDs.IMDB == "" {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s has no imdb id", domain.ErrParse, tag)
	}
	if media.Title == nil {
		return domain.CatalogItem{}, fmt.Errorf("%w: %s %s has no title", domain.ErrParse, tag, *media.IDs.IMDB)
	}

	id := *media.IDs.IMDB
	return domain.CatalogItem{
		Type:          contentType,
		ID:            id,
		Name:          *media.Title,
		Poster:        p.image("poster", id),
		Background:    p.image("background", id),
		Logo:          p.image("logo", id),
		Genres:        media.Genres,
		ReleaseInfo:   optional(func() (string, error) { return formatYear(media.Year) }),
		Description:   media.Overview,
		Runtime:       optional(func() (string, error) { return formatRuntime(media.Runtime) }),
		Trailer:       optional(func() (domain.Trailer, error) { return trailer(media.Trailer) }),
		BehaviorHints: &domain.BehaviorHints{DefaultVideoID: id},
	}, nil
}

func (p *catalogParser) image(kind, id string) *string {
	u := fmt.Sprintf("%s/%s/medium/%s/img", p.imageBaseURL, kind, id)
	return &u
}

// inferTag names the variant of an untagged item by the object it carries.
func inferTag(item traktItem) string {
	switch {
	case !isAbsent(item.Movie):
		return traktTypeMovie
	case !isAbsent(item.Show):
		return traktTypeShow
	default:
		return ""
	}
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// optional turns a failing derivation into an absent field.
func optional[T any](fn func() (T, error)) *T {
	v, err := fn()
	if err != nil {
		return nil
	}
	return &v
}

func formatYear(year *int) (string, error) {
	if year == nil {
		return "", fmt.Errorf("no year")
	}
	return strconv.Itoa(*year), nil
}

func formatRuntime(minutes *int) (string, error) {
	if minutes == nil {
		return "", fmt.Errorf("no runtime")
	}
	return fmt.Sprintf("%d mins", *minutes), nil
}

func trailer(link *string) (domain.Trailer, error) {
	if link == nil {
		return domain.Trailer{}, fmt.Errorf("no trailer")
	}

	id, err := videoID(*link)
	if err != nil {
		return domain.Trailer{}, err
	}

	return domain.Trailer{Source: id, Type: trailerKindTag}, nil
}

// videoID returns the 11 bytes following the first "v=" of a YouTube link.
// A cut through a multibyte character is an extraction failure.
func videoID(link string) (string, error) {
	_, after, found := strings.Cut(link, videoIDMarker)
	if !found {
		return "", fmt.Errorf("no %q in %q", videoIDMarker, link)
	}
	if len(after) < videoIDLength {
		return "", fmt.Errorf("video id in %q is shorter than %d bytes", link, videoIDLength)
	}
	id := after[:videoIDLength]
	if !utf8.ValidString(id) {
		return "", fmt.Errorf("video id in %q does not end on a character boundary", link)
	}
	return id, nil
}
