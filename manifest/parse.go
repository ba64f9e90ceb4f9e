// Parses the manifest inspector's JSON document. Unlike the diagnostic
// stream, a document that fails to decode ends the whole manifest pipeline:
// there is nothing meaningful to audit without it.

package manifest

import (
	"encoding/json"

	"github.com/pkg/errors"
)

/// Internal types mirroring the cargo metadata document

type jsonDependency struct {
	Name   string  `json:"name"`
	Source *string `json:"source"`
}

type jsonPackage struct {
	Name         string           `json:"name"`
	ManifestPath string           `json:"manifest_path"`
	Version      string           `json:"version"`
	License      *string          `json:"license"`
	LicenseFile  *string          `json:"license_file"`
	Description  *string          `json:"description"`
	Authors      []string         `json:"authors"`
	Repository   *string          `json:"repository"`
	Dependencies []jsonDependency `json:"dependencies"`
}

type jsonMetadata struct {
	Packages []jsonPackage `json:"packages"`
}

// Parse decodes the complete metadata document.
func Parse(document []byte) (Metadata, error) {
	var parsed jsonMetadata
	if err := json.Unmarshal(document, &parsed); err != nil {
		return Metadata{}, errors.Wrap(err, "decoding metadata document")
	}

	metadata := Metadata{}
	for _, p := range parsed.Packages {
		converted := Package{
			Name:         p.Name,
			ManifestPath: p.ManifestPath,
			Version:      p.Version,
			License:      optional(p.License),
			LicenseFile:  optional(p.LicenseFile),
			Description:  optional(p.Description),
			Authors:      p.Authors,
			Repository:   optional(p.Repository),
		}
		for _, d := range p.Dependencies {
			converted.Dependencies = append(converted.Dependencies, Dependency{
				Name:   d.Name,
				Source: optional(d.Source),
			})
		}
		metadata.Packages = append(metadata.Packages, converted)
	}
	return metadata, nil
}

func optional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
