package app

import "crate-resolver/internal/types"

type ResolveRequest struct {
	CrateName string
}

type ResolveResult struct {
	CrateName  string
	Resolution types.Resolution
}

type TableResult struct {
	ManifestPath string
	Crates       types.ResolutionTable
}

type LocateResult struct {
	ManifestPath string
}
