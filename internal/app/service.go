package app

import (
	"context"

	"crate-resolver/internal/adapters"
	"crate-resolver/internal/ports"
)

// Service is the application facade over one process-wide Resolver.
type Service struct {
	resolver *Resolver
}

// NewService wires the default adapters: process environment, manifest
// file on disk, TOML decoder.
func NewService() Service {
	return NewServiceWith(
		adapters.NewCargoEnvAdapter(),
		adapters.NewManifestFileAdapter(),
		adapters.NewTOMLDecoderAdapter(),
	)
}

func NewServiceWith(env ports.EnvironmentPort, manifest ports.ManifestPort, decoder ports.DecoderPort) Service {
	return Service{resolver: NewResolver(env, manifest, decoder)}
}

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	resolution, err := s.resolver.Resolve(ctx, req.CrateName)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{CrateName: req.CrateName, Resolution: resolution}, nil
}

func (s Service) Table(ctx context.Context) (TableResult, error) {
	crates, err := s.resolver.CrateNames(ctx)
	if err != nil {
		return TableResult{}, err
	}
	path, err := s.resolver.ManifestPath(ctx)
	if err != nil {
		return TableResult{}, err
	}
	return TableResult{ManifestPath: path, Crates: crates}, nil
}

func (s Service) Locate(ctx context.Context) (LocateResult, error) {
	path, err := s.resolver.ManifestPath(ctx)
	if err != nil {
		return LocateResult{}, err
	}
	return LocateResult{ManifestPath: path}, nil
}
