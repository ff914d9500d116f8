package service

import (
	"fmt"

	"dynamic/catalogs/internal/codec"
	"dynamic/catalogs/internal/config"
	"dynamic/catalogs/internal/domain"
)

const (
	manifestID      = "com.dynamic.catalogs"
	manifestVersion = "0.0.1"
	manifestName    = "Dynamic Catalogs"
	manifestLogo    = "logo.png"

	resourceCatalog = "catalog"
)

// SortOptions are offered as the genre extra of every catalog.
var SortOptions = []string{
	"Trending Now",
	"New Releases",
	"A-Z",
	"Short & Sweet",
	"Top Rated",
	"Recently Watched",
	"Fan Favorites",
}

// BuildManifest encodes every configured catalog into its token and assembles the manifest.
func BuildManifest(catalogs []config.CatalogConfig) (domain.Manifest, error) {
	manifest := domain.Manifest{
		ID:          manifestID,
		Version:     manifestVersion,
		Name:        manifestName,
		Description: manifestName,
		Logo:        manifestLogo,
		Resources:   make([]string, 0, 1),
		Types:       make([]domain.ContentType, 0, len(domain.ContentTypes)),
		Catalogs:    make([]domain.ManifestCatalog, 0, len(catalogs)),
	}

	seen := make(map[domain.ContentType]bool, len(domain.ContentTypes))
	for i, cat := range catalogs {
		descriptor, err := cat.Descriptor()
		if err != nil {
			return domain.Manifest{}, fmt.Errorf("catalog %d (%s): %w", i, cat.Name, err)
		}

		token, err := codec.Encode(descriptor)
		if err != nil {
			return domain.Manifest{}, fmt.Errorf("catalog %d (%s): %w", i, cat.Name, err)
		}

		manifest.Catalogs = append(manifest.Catalogs, domain.ManifestCatalog{
			ID:    token,
			Type:  descriptor.ContentType,
			Name:  cat.Name,
			Extra: catalogExtras(),
		})

		if !seen[descriptor.ContentType] {
			seen[descriptor.ContentType] = true
			manifest.Types = append(manifest.Types, descriptor.ContentType)
		}
	}

	if len(manifest.Catalogs) > 0 {
		manifest.Resources = append(manifest.Resources, resourceCatalog)
	}

	return manifest, nil
}

func catalogExtras() []domain.Extra {
	options := make([]string, len(SortOptions))
	copy(options, SortOptions)

	return []domain.Extra{
		{Name: "skip", IsRequired: false},
		{Name: "genre", Options: options, IsRequired: false},
	}
}
