// Package codec turns catalog descriptors into the opaque tokens used as catalog ids, and back.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"dynamic/catalogs/internal/domain"
)

// Suffix marks a token as belonging to the Trakt source.
const Suffix = "-" + string(domain.SourceTrakt)

// Encode serializes d into a token: base64(json(d)) + Suffix.
func Encode(d domain.CatalogDescriptor) (string, error) {
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("refusing to encode descriptor: %w", err)
	}

	raw, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to serialize descriptor: %w", err)
	}

	return base64.StdEncoding.EncodeToString(raw) + Suffix, nil
}

// Decode parses a full token, suffix included.
func Decode(token string) (domain.CatalogDescriptor, error) {
	base, ok := strings.CutSuffix(token, Suffix)
	if !ok {
		return domain.CatalogDescriptor{}, fmt.Errorf("%w: token does not end in %q", domain.ErrDecode, Suffix)
	}
	return DecodeBase(base)
}

// DecodeBase parses a token whose source suffix has already been removed.
func DecodeBase(base string) (domain.CatalogDescriptor, error) {
	raw, err := base64.StdEncoding.DecodeString(base)
	if err != nil {
		return domain.CatalogDescriptor{}, fmt.Errorf("%w: base64: %v", domain.ErrDecode, err)
	}

	if !utf8.Valid(raw) {
		return domain.CatalogDescriptor{}, fmt.Errorf("%w: decoded token is not UTF-8", domain.ErrEncoding)
	}

	var d domain.CatalogDescriptor
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.CatalogDescriptor{}, fmt.Errorf("%w: %w: %v", domain.ErrDecode, domain.ErrParse, err)
	}

	if err := d.Validate(); err != nil {
		return domain.CatalogDescriptor{}, fmt.Errorf("%w: %w: %v", domain.ErrDecode, domain.ErrParse, err)
	}

	return d, nil
}
