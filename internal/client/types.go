package client

import "encoding/json"

type traktIDs struct {
	Trakt *int    `json:"trakt"`
	Slug  *string `json:"slug"`
	IMDB  *string `json:"imdb"`
}

// traktMedia covers the fields movies and shows share.
type traktMedia struct {
	Title    *string  `json:"title"`
	Year     *int     `json:"year"`
	IDs      traktIDs `json:"ids"`
	Genres   []string `json:"genres"`
	Overview *string  `json:"overview"`
	Runtime  *int     `json:"runtime"`
	Trailer  *string  `json:"trailer"`
}

// traktItem is one element of a list or trending response. List items carry
// a "type" tag; trending items only carry the movie or show object.
type traktItem struct {
	Type  string          `json:"type"`
	Movie json.RawMessage `json:"movie"`
	Show  json.RawMessage `json:"show"`
}

const (
	traktTypeMovie = "movie"
	traktTypeShow  = "show"
)
