package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/domain"
	"dynamic/catalogs/internal/metrics"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

const apiVersion = "2"

type TraktClient interface {
	// Query issues the provider request d describes and returns the raw JSON body.
	Query(ctx context.Context, d domain.CatalogDescriptor) (json.RawMessage, error)
	// Catalog queries the provider for a resolved descriptor and normalizes the result.
	Catalog(ctx context.Context, res domain.Resolution) (domain.CatalogPage, error)
	Genres(ctx context.Context, contentType domain.ContentType) ([]domain.Genre, error)
	ResolveListID(ctx context.Context, listURL string) (string, error)
	Close() error
}

type traktClient struct {
	rl         ratelimit.Limiter
	webHost    string
	env        *config.Environment
	httpClient *resty.Client
	parser     *catalogParser
	metrics    *metrics.Metrics
}

func NewTraktClient(cfg config.TraktConfig, env *config.Environment, m *metrics.Metrics) TraktClient {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("trakt-api-version", apiVersion)

	rl := ratelimit.NewUnlimited()
	if cfg.ScrapeRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.ScrapeRequestsPerSecond)
	}

	return &traktClient{
		rl:         rl,
		webHost:    strings.ToLower(cfg.WebHost),
		env:        env,
		httpClient: client,
		parser:     newCatalogParser(),
		metrics:    m,
	}
}

func (c *traktClient) Query(ctx context.Context, d domain.CatalogDescriptor) (json.RawMessage, error) {
	path, err := providerPath(d)
	if err != nil {
		return nil, err
	}

	creds, err := c.env.Credentials()
	if err != nil {
		return nil, fmt.Errorf("failed to read trakt credentials: %w", err)
	}

	req := c.httpClient.R().
		SetContext(ctx).
		SetHeader("trakt-api-key", creds.ClientID)

	if d.ExtendedInfo {
		req.SetQueryParam("extended", "full")
	}
	if d.Pagination != nil {
		req.SetQueryParam("page", strconv.Itoa(d.Pagination.Page))
		req.SetQueryParam("limit", strconv.Itoa(d.Pagination.PageSize))
	}

	start := time.Now()
	resp, err := req.Get(path)
	c.metrics.ObserveProvider(strings.ToLower(d.Endpoint.String()), start)

	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, path, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: GET %s: HTTP %s", domain.ErrUpstream, path, resp.Status())
	}

	body := resp.Bytes()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: GET %s returned a non-JSON body", domain.ErrParse, path)
	}

	log.Debugf("📡 GET %s returned %d bytes in %v", path, len(body), resp.Duration().Round(time.Millisecond))
	return json.RawMessage(body), nil
}

func (c *traktClient) Catalog(ctx context.Context, res domain.Resolution) (domain.CatalogPage, error) {
	raw, err := c.Query(ctx, res.Descriptor)
	if err != nil {
		return domain.CatalogPage{}, err
	}

	page, err := c.parser.ParseCatalogPage(raw, res.Descriptor.Genre)
	if err != nil {
		return domain.CatalogPage{}, fmt.Errorf("failed to parse catalog page: %w", err)
	}

	return page, nil
}

func (c *traktClient) Genres(ctx context.Context, contentType domain.ContentType) ([]domain.Genre, error) {
	raw, err := c.Query(ctx, domain.CatalogDescriptor{
		Endpoint:    domain.EndpointGenres,
		ContentType: contentType,
	})
	if err != nil {
		return nil, err
	}

	var genres []domain.Genre
	if err := json.Unmarshal(raw, &genres); err != nil {
		return nil, fmt.Errorf("%w: genres: %v", domain.ErrParse, err)
	}

	return genres, nil
}

func (c *traktClient) Close() error {
	return c.httpClient.Close()
}

// providerPath maps a descriptor onto the Trakt resource it reads.
func providerPath(d domain.CatalogDescriptor) (string, error) {
	segment := d.ContentType.ProviderSegment()
	if segment == "" {
		return "", fmt.Errorf("%w: unknown content type %q", domain.ErrParse, d.ContentType)
	}

	switch d.Endpoint {
	case domain.EndpointTrending:
		return "/" + segment + "/trending", nil
	case domain.EndpointList:
		if !d.HasListID() {
			return "", domain.ErrMissingListID
		}
		return "/lists/" + url.PathEscape(*d.ListID) + "/items/" + segment, nil
	case domain.EndpointGenres:
		return "/genres/" + segment, nil
	default:
		return "", fmt.Errorf("%w: unknown endpoint %q", domain.ErrParse, d.Endpoint)
	}
}
