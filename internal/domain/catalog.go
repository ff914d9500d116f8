package domain

import "fmt"

const (
	// RequestPageSize is the page size Stremio's skip offsets are expressed in.
	RequestPageSize = 100
	// GenreFilteredPageSize is fetched in one go when a list is filtered by genre,
	// since Trakt cannot sort list items server-side.
	GenreFilteredPageSize = 500
)

type Pagination struct {
	Page     int `json:"current_page"`   // 1-based
	PageSize int `json:"items_per_page"` // items requested per page
}

func (p Pagination) Valid() bool {
	return p.Page >= 1 && p.PageSize > 0
}

// PaginationFromSkip converts an item offset into a page at RequestPageSize.
func PaginationFromSkip(skip int) Pagination {
	return Pagination{
		Page:     skip/RequestPageSize + 1,
		PageSize: RequestPageSize,
	}
}

// CatalogDescriptor is the structured query a catalog token carries.
type CatalogDescriptor struct {
	Endpoint     Endpoint    `json:"endpoint"`
	Pagination   *Pagination `json:"pagination"`
	ExtendedInfo bool        `json:"extended_info"`
	ListID       *string     `json:"list_id"`
	ContentType  ContentType `json:"catalog_type"`
	Genre        *string     `json:"genre"`
}

// Validate checks the schema-level invariants of a decoded descriptor.
func (d CatalogDescriptor) Validate() error {
	if !d.Endpoint.Valid() {
		return fmt.Errorf("unknown endpoint %q", d.Endpoint)
	}
	if !d.ContentType.Valid() {
		return fmt.Errorf("unknown content type %q", d.ContentType)
	}
	if d.Pagination != nil && !d.Pagination.Valid() {
		return fmt.Errorf("invalid pagination page=%d page_size=%d", d.Pagination.Page, d.Pagination.PageSize)
	}
	return nil
}

// HasListID reports whether the descriptor carries a usable list identifier.
func (d CatalogDescriptor) HasListID() bool {
	return d.ListID != nil && *d.ListID != ""
}

// Clone returns a deep copy; resolution works on the copy.
func (d CatalogDescriptor) Clone() CatalogDescriptor {
	out := d
	if d.Pagination != nil {
		p := *d.Pagination
		out.Pagination = &p
	}
	if d.ListID != nil {
		id := *d.ListID
		out.ListID = &id
	}
	if d.Genre != nil {
		g := *d.Genre
		out.Genre = &g
	}
	return out
}

// CatalogRequest is an inbound catalog path broken into its parts.
type CatalogRequest struct {
	BaseID     string
	Source     Source
	Pagination Pagination
	Genre      *string
}

// Resolution is a descriptor merged with request-time overrides.
type Resolution struct {
	Descriptor    CatalogDescriptor
	GenreFiltered bool
}

// Page returns the resolved page number, 1 when no pagination was resolved.
func (r Resolution) Page() int {
	if r.Descriptor.Pagination == nil {
		return 1
	}
	return r.Descriptor.Pagination.Page
}
