package catalogpath

import (
	"strconv"
	"testing"

	"dynamic/catalogs/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TokenOnly(t *testing.T) {
	req, err := Parse("abc-trakt.json")
	require.NoError(t, err)
	assert.Equal(t, "abc", req.BaseID)
	assert.Equal(t, domain.SourceTrakt, req.Source)
	assert.Equal(t, domain.Pagination{Page: 1, PageSize: 100}, req.Pagination)
	assert.Nil(t, req.Genre)
}

func TestParse_Skip(t *testing.T) {
	req, err := Parse("abc-trakt/skip=250.json")
	require.NoError(t, err)
	assert.Equal(t, 3, req.Pagination.Page)
	assert.Equal(t, 100, req.Pagination.PageSize)
	assert.Nil(t, req.Genre)
}

func TestParse_SkipAndGenre(t *testing.T) {
	req, err := Parse("abc-trakt/skip=50&genre=Action.json")
	require.NoError(t, err)
	assert.Equal(t, 1, req.Pagination.Page)
	require.NotNil(t, req.Genre)
	assert.Equal(t, "Action", *req.Genre)
}

func TestParse_PageLaw(t *testing.T) {
	for skip := 0; skip < 1000; skip += 7 {
		req, err := Parse("abc-trakt/skip=" + strconv.Itoa(skip) + ".json")
		require.NoError(t, err)
		assert.Equal(t, skip/100+1, req.Pagination.Page, "skip=%d", skip)
	}

	for _, tc := range []struct{ skip, page int }{{0, 1}, {99, 1}, {100, 2}, {199, 2}, {200, 3}} {
		req, err := Parse("abc-trakt/skip=" + strconv.Itoa(tc.skip) + ".json")
		require.NoError(t, err)
		assert.Equal(t, tc.page, req.Pagination.Page)
	}
}

func TestParse_EscapedValues(t *testing.T) {
	req, err := Parse("ab%2Fc%3D%3D-trakt/genre=Short%20%26%20Sweet&skip=100.json")
	require.NoError(t, err)
	assert.Equal(t, "ab/c==", req.BaseID)
	require.NotNil(t, req.Genre)
	assert.Equal(t, "Short & Sweet", *req.Genre)
	assert.Equal(t, 2, req.Pagination.Page)
}

func TestParse_IgnoresUnknownKeys(t *testing.T) {
	req, err := Parse("abc-trakt/search=foo&skip=100&novalue.json")
	require.NoError(t, err)
	assert.Equal(t, 2, req.Pagination.Page)
	assert.Nil(t, req.Genre)
}

func TestParse_TokenWithDashesSplitsOnLast(t *testing.T) {
	req, err := Parse("a-b-c-trakt.json")
	require.NoError(t, err)
	assert.Equal(t, "a-b-c", req.BaseID)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
		kind error
	}{
		{"no json suffix", "abc-trakt", domain.ErrFormat},
		{"wrong suffix", "abc-trakt/skip=100.xml", domain.ErrFormat},
		{"too many segments", "abc-trakt/skip=100/genre=x.json", domain.ErrFormat},
		{"no source tag", "abc.json", domain.ErrFormat},
		{"empty base", "-trakt.json", domain.ErrFormat},
		{"empty tag", "abc-.json", domain.ErrFormat},
		{"unknown source", "abc-unknown.json", domain.ErrUnsupportedSource},
		{"skip not a number", "abc-trakt/skip=ten.json", domain.ErrFormat},
		{"negative skip", "abc-trakt/skip=-100.json", domain.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}
