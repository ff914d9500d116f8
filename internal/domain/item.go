package domain

type Trailer struct {
	Source string `json:"source"`
	Type   string `json:"type"`
}

type BehaviorHints struct {
	DefaultVideoID string `json:"defaultVideoId"`
}

// CatalogItem is one provider-neutral entry of a catalog page.
// Optional fields serialize as null when absent.
type CatalogItem struct {
	Type          ContentType    `json:"type"`
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Poster        *string        `json:"poster"`
	Background    *string        `json:"background"`
	Genres        []string       `json:"genres"`
	ReleaseInfo   *string        `json:"releaseInfo"`
	Description   *string        `json:"description"`
	BehaviorHints *BehaviorHints `json:"behaviorHints"`
	Trailer       *Trailer       `json:"trailer"`
	Logo          *string        `json:"logo"`
	Runtime       *string        `json:"runtime"`
}

type CatalogPage struct {
	Metas []CatalogItem `json:"metas"`
}

// EmptyCatalogPage returns a page whose metas serialize as [] rather than null.
func EmptyCatalogPage() CatalogPage {
	return CatalogPage{Metas: make([]CatalogItem, 0)}
}
