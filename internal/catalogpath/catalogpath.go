// Package catalogpath decomposes the tail of a catalog request path.
//
// Four shapes reach the addon:
//
//	<token>.json
//	<token>/skip=200.json
//	<token>/genre=Adventure.json
//	<token>/skip=43&genre=Top%20Rated.json
package catalogpath

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"dynamic/catalogs/internal/domain"
)

const jsonSuffix = ".json"

// Parse splits an escaped catalog path into token, source, pagination and genre.
// Splitting happens before percent-decoding so an escaped '/' or '&' stays inside its value.
func Parse(path string) (domain.CatalogRequest, error) {
	trimmed, ok := strings.CutSuffix(path, jsonSuffix)
	if !ok {
		return domain.CatalogRequest{}, fmt.Errorf("%w: expected a .json resource, got %q", domain.ErrFormat, path)
	}

	segments := strings.Split(trimmed, "/")
	if len(segments) > 2 {
		return domain.CatalogRequest{}, fmt.Errorf("%w: expected at most one parameter segment, got %d", domain.ErrFormat, len(segments)-1)
	}

	baseID, source, err := splitToken(unescape(segments[0]))
	if err != nil {
		return domain.CatalogRequest{}, err
	}

	req := domain.CatalogRequest{
		BaseID:     baseID,
		Source:     source,
		Pagination: domain.PaginationFromSkip(0),
	}

	if len(segments) == 1 {
		return req, nil
	}

	for _, param := range strings.Split(segments[1], "&") {
		key, value, found := strings.Cut(param, "=")
		if !found || strings.Contains(value, "=") {
			continue
		}

		switch unescape(key) {
		case "skip":
			skip, err := strconv.Atoi(unescape(value))
			if err != nil || skip < 0 {
				return domain.CatalogRequest{}, fmt.Errorf("%w: skip must be a non-negative integer, got %q", domain.ErrFormat, value)
			}
			req.Pagination = domain.PaginationFromSkip(skip)
		case "genre":
			genre := unescape(value)
			req.Genre = &genre
		}
	}

	return req, nil
}

// splitToken separates "<base>-<source>" on the last dash.
func splitToken(token string) (string, domain.Source, error) {
	idx := strings.LastIndex(token, "-")
	if idx < 0 {
		return "", "", fmt.Errorf("%w: catalog id %q has no source tag", domain.ErrFormat, token)
	}

	baseID, tag := token[:idx], token[idx+1:]
	if baseID == "" || tag == "" {
		return "", "", fmt.Errorf("%w: catalog id %q must be <token>-<source>", domain.ErrFormat, token)
	}

	source := domain.Source(tag)
	if !source.Known() {
		return "", "", fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, tag)
	}

	return baseID, source, nil
}

// unescape percent-decodes s, keeping it verbatim when it is not valid escaping.
func unescape(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
