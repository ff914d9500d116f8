package domain

// Source identifies the provider a catalog token belongs to.
type Source string

const SourceTrakt Source = "trakt"

var knownSources = map[Source]struct{}{
	SourceTrakt: {},
}

func (s Source) String() string {
	return string(s)
}

func (s Source) Known() bool {
	_, ok := knownSources[s]
	return ok
}
