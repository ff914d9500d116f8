package domain

import (
	"fmt"
	"strings"
)

type ContentType string

func (c ContentType) String() string {
	return string(c)
}

const (
	ContentTypeMovie  ContentType = "movie"
	ContentTypeSeries ContentType = "series"
)

var ContentTypes = []ContentType{
	ContentTypeMovie,
	ContentTypeSeries,
}

// ProviderSegment returns the path segment Trakt uses for this content type.
func (c ContentType) ProviderSegment() string {
	switch c {
	case ContentTypeMovie:
		return "movies"
	case ContentTypeSeries:
		return "shows"
	default:
		return ""
	}
}

func (c ContentType) Valid() bool {
	return c == ContentTypeMovie || c == ContentTypeSeries
}

func ParseContentType(s string) (ContentType, error) {
	c := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return c, nil
}

type Endpoint string

const (
	EndpointTrending Endpoint = "Trending"
	EndpointList     Endpoint = "List"
	EndpointGenres   Endpoint = "Genres"
)

func (e Endpoint) String() string {
	return string(e)
}

func (e Endpoint) Valid() bool {
	switch e {
	case EndpointTrending, EndpointList, EndpointGenres:
		return true
	default:
		return false
	}
}

// ParseEndpoint accepts any casing plus the legacy "TrendingMovies" spelling.
func ParseEndpoint(s string) (Endpoint, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trending", "trendingmovies":
		return EndpointTrending, nil
	case "list":
		return EndpointList, nil
	case "genres":
		return EndpointGenres, nil
	default:
		return "", fmt.Errorf("unknown endpoint %q", s)
	}
}

func (e *Endpoint) UnmarshalText(text []byte) error {
	parsed, err := ParseEndpoint(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
