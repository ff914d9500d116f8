package service

import "dynamic/catalogs/internal/domain"

// Resolve merges request-time overrides into a copy of d.
//
// Trakt cannot sort list items server-side, so a genre-filtered list is fetched
// as one large page and narrowed later; every other request takes the
// caller's pagination verbatim.
func Resolve(d domain.CatalogDescriptor, r domain.CatalogRequest) domain.Resolution {
	resolved := d.Clone()

	if d.Endpoint == domain.EndpointList && r.Genre != nil {
		genre := *r.Genre
		resolved.Genre = &genre
		resolved.Pagination = &domain.Pagination{
			Page:     r.Pagination.Page,
			PageSize: domain.GenreFilteredPageSize,
		}
		return domain.Resolution{Descriptor: resolved, GenreFiltered: true}
	}

	pagination := r.Pagination
	resolved.Pagination = &pagination
	if r.Genre != nil {
		genre := *r.Genre
		resolved.Genre = &genre
	}

	return domain.Resolution{Descriptor: resolved}
}

// ReturnsEmptyPage reports whether res is answered with an empty page without
// asking the provider. The first genre-filtered page already carries every
// item the provider would return, so later pages are empty.
func ReturnsEmptyPage(res domain.Resolution) bool {
	return res.GenreFiltered && res.Page() > 1
}
