package domain

type Extra struct {
	Name       string   `json:"name"`
	Options    []string `json:"options,omitempty"`
	IsRequired bool     `json:"isRequired"`
}

type ManifestCatalog struct {
	ID    string      `json:"id"`
	Type  ContentType `json:"type"`
	Name  string      `json:"name"`
	Extra []Extra     `json:"extra"`
}

type Manifest struct {
	ID          string            `json:"id"`
	Version     string            `json:"version"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	Resources   []string          `json:"resources"`
	Types       []ContentType     `json:"types"`
	Catalogs    []ManifestCatalog `json:"catalogs"`
}
