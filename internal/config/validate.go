package config

import (
	"fmt"

	"dynamic/catalogs/internal/domain"

	log "github.com/sirupsen/logrus"
)

// Validate checks the configuration and returns one message per problem.
func (c *Config) Validate() []string {
	var errs []string

	if c.Trakt.ClientID == "" {
		errs = append(errs, "trakt.client_id: required (TRAKT_CLIENT_ID)")
	}
	if c.Trakt.ClientSecret == "" {
		errs = append(errs, "trakt.client_secret: required (TRAKT_CLIENT_SECRET)")
	}
	if c.Trakt.WebHost == "" {
		errs = append(errs, "trakt.web_host: required")
	}
	if c.Trakt.ScrapeRequestsPerSecond < 1 {
		errs = append(errs, fmt.Sprintf("trakt.scrape_requests_per_second: must be positive, got %d", c.Trakt.ScrapeRequestsPerSecond))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if _, err := log.ParseLevel(c.Server.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("server.log_level: %v", err))
	}

	for i, cat := range c.Catalogs {
		if _, err := cat.Descriptor(); err != nil {
			errs = append(errs, fmt.Sprintf("catalogs[%d]: %v", i, err))
		}
		if cat.Name == "" {
			errs = append(errs, fmt.Sprintf("catalogs[%d].name: required", i))
		}
	}

	return errs
}

// Descriptor converts a configured catalog into the descriptor its token encodes.
func (c CatalogConfig) Descriptor() (domain.CatalogDescriptor, error) {
	contentType, err := domain.ParseContentType(c.Type)
	if err != nil {
		return domain.CatalogDescriptor{}, err
	}

	endpoint, err := domain.ParseEndpoint(c.Endpoint)
	if err != nil {
		return domain.CatalogDescriptor{}, err
	}
	if endpoint == domain.EndpointGenres {
		return domain.CatalogDescriptor{}, fmt.Errorf("endpoint %q does not produce a catalog", c.Endpoint)
	}

	d := domain.CatalogDescriptor{
		Endpoint:     endpoint,
		ContentType:  contentType,
		ExtendedInfo: c.ExtendedInfo,
	}

	if endpoint == domain.EndpointList {
		if c.ListID == "" {
			return domain.CatalogDescriptor{}, domain.ErrMissingListID
		}
		id := c.ListID
		d.ListID = &id
	}

	return d, nil
}
