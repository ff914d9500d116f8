package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"dynamic/catalogs/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

const listIDSelector = `input[id="list-id"]`

// ResolveListID scrapes a Trakt list web page for its numeric list id.
func (c *traktClient) ResolveListID(ctx context.Context, listURL string) (string, error) {
	if err := validateListURL(listURL, c.webHost); err != nil {
		return "", err
	}

	html, err := c.fetchHTML(ctx, listURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch list page: %w", err)
	}

	id, err := parseListID(html)
	if err != nil {
		return "", fmt.Errorf("failed to parse list page %s: %w", listURL, err)
	}

	log.Debugf("🔎 Resolved %s to list id %s", listURL, id)
	return id, nil
}

func (c *traktClient) fetchHTML(ctx context.Context, pageURL string) (string, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		Get(pageURL)

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("%w: GET %s: %v", domain.ErrUpstream, pageURL, err)
	}

	if !resp.IsSuccess() {
		return "", fmt.Errorf("%w: GET %s: HTTP %s", domain.ErrUpstream, pageURL, resp.Status())
	}

	return resp.String(), nil
}

func parseListID(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	value, ok := doc.Find(listIDSelector).First().Attr("value")
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: page has no list id", domain.ErrParse)
	}

	return value, nil
}

// validateListURL accepts absolute http(s) urls on webHost or one of its subdomains.
func validateListURL(listURL, webHost string) error {
	if strings.TrimSpace(listURL) == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidListURL)
	}

	u, err := url.Parse(listURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidListURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: %q is not an absolute http(s) url", domain.ErrInvalidListURL, listURL)
	}

	host := strings.ToLower(u.Hostname())
	if webHost == "" || host != webHost && !strings.HasSuffix(host, "."+webHost) {
		return fmt.Errorf("%w: host %q is not %s", domain.ErrInvalidListURL, u.Hostname(), webHost)
	}

	return nil
}
