package manifest

// Dependency is one entry of a package's dependency list. Source pins the
// external origin, e.g. "git+https://host/repo?branch=v1"; it is empty for
// path and registry dependencies without a recorded source.
type Dependency struct {
	Name   string
	Source string
}

// Package is one package of the inspected workspace. Optional fields are
// empty when absent from the manifest. Dependencies keep their manifest
// order, which fixes the report order.
type Package struct {
	Name         string
	ManifestPath string
	Version      string
	License      string
	LicenseFile  string
	Description  string
	Authors      []string
	Repository   string
	Dependencies []Dependency
}

// Metadata is the top-level document produced by the manifest inspector.
type Metadata struct {
	Packages []Package
}
