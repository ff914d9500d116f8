package service

import (
	"context"
	"fmt"

	"dynamic/catalogs/internal/catalogpath"
	"dynamic/catalogs/internal/client"
	"dynamic/catalogs/internal/codec"
	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/domain"
	"dynamic/catalogs/internal/metrics"

	log "github.com/sirupsen/logrus"
)

type Service struct {
	client   client.TraktClient
	metrics  *metrics.Metrics
	manifest domain.Manifest
}

func NewService(client client.TraktClient, m *metrics.Metrics, catalogs []config.CatalogConfig) (*Service, error) {
	manifest, err := BuildManifest(catalogs)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest: %w", err)
	}

	log.Infof("📚 Publishing %d catalogs", len(manifest.Catalogs))
	for _, cat := range manifest.Catalogs {
		log.Debugf("📚 %s (%s): %s", cat.Name, cat.Type, cat.ID)
	}

	return &Service{
		client:   client,
		metrics:  m,
		manifest: manifest,
	}, nil
}

func (s *Service) Manifest() domain.Manifest {
	return s.manifest
}

// Catalog serves one catalog request path, e.g. "<token>/skip=100&genre=Action.json".
func (s *Service) Catalog(ctx context.Context, path string) (domain.CatalogPage, error) {
	page, outcome, err := s.catalog(ctx, path)
	s.metrics.ObserveCatalog(outcome, len(page.Metas))
	return page, err
}

func (s *Service) catalog(ctx context.Context, path string) (domain.CatalogPage, string, error) {
	req, err := catalogpath.Parse(path)
	if err != nil {
		return domain.CatalogPage{}, metrics.OutcomeCallerError, err
	}

	descriptor, err := codec.DecodeBase(req.BaseID)
	if err != nil {
		return domain.CatalogPage{}, metrics.OutcomeCallerError, err
	}

	if descriptor.Endpoint == domain.EndpointGenres {
		return domain.CatalogPage{}, metrics.OutcomeCallerError,
			fmt.Errorf("%w: genres endpoint does not produce a catalog", domain.ErrFormat)
	}

	res := Resolve(descriptor, req)
	if ReturnsEmptyPage(res) {
		log.Debugf("Genre-filtered page %d of %s is empty", res.Page(), descriptor.Endpoint)
		return domain.EmptyCatalogPage(), metrics.OutcomeEmpty, nil
	}

	// The provider call outlives a disconnecting client.
	page, err := s.client.Catalog(context.WithoutCancel(ctx), res)
	if err != nil {
		if domain.IsCallerError(err) {
			return domain.CatalogPage{}, metrics.OutcomeCallerError, err
		}
		return domain.CatalogPage{}, metrics.OutcomeUpstreamError, err
	}

	return page, metrics.OutcomeOK, nil
}

func (s *Service) Genres(ctx context.Context, contentType domain.ContentType) ([]domain.Genre, error) {
	genres, err := s.client.Genres(context.WithoutCancel(ctx), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s genres: %w", contentType, err)
	}
	return genres, nil
}

func (s *Service) ExtractListID(ctx context.Context, listURL string) (string, error) {
	return s.client.ResolveListID(ctx, listURL)
}

// ListCatalog resolves a Trakt list page into a catalog token serving that list.
func (s *Service) ListCatalog(ctx context.Context, listURL string, contentType domain.ContentType) (string, error) {
	if !contentType.Valid() {
		return "", fmt.Errorf("%w: unknown content type %q", domain.ErrFormat, contentType)
	}

	listID, err := s.client.ResolveListID(ctx, listURL)
	if err != nil {
		return "", err
	}

	token, err := codec.Encode(domain.CatalogDescriptor{
		Endpoint:     domain.EndpointList,
		ContentType:  contentType,
		ListID:       &listID,
		ExtendedInfo: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode list catalog: %w", err)
	}

	return token, nil
}
