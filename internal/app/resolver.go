package app

import (
	"context"
	"fmt"
	"sync"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"crate-resolver/internal/core"
	"crate-resolver/internal/ports"
	"crate-resolver/internal/types"
)

// Resolver answers canonical-name lookups against a manifest parsed at
// most once per Resolver. The first call locates, reads, and extracts the
// manifest; concurrent first callers block on the same initialization and
// every caller observes the same outcome, success or failure.
type Resolver struct {
	Env      ports.EnvironmentPort
	Manifest ports.ManifestPort
	Decoder  ports.DecoderPort

	once  sync.Once
	cache resolverCache
}

type resolverCache struct {
	manifestDir  string
	manifestPath string
	crateNames   types.ResolutionTable
	err          error
}

func NewResolver(env ports.EnvironmentPort, manifest ports.ManifestPort, decoder ports.DecoderPort) *Resolver {
	return &Resolver{
		Env:      env,
		Manifest: manifest,
		Decoder:  decoder,
	}
}

// Resolve maps the canonical crate name to its local resolution. The
// manifest directory is read from the environment on every call and must
// never change within one process; a change means corrupted process
// state, not user error, and aborts.
func (r *Resolver) Resolve(ctx context.Context, crateName string) (types.Resolution, error) {
	if crateName == "" {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("crate name must not be empty")
	}

	cache, err := r.load(ctx)
	if err != nil {
		return types.Resolution{}, err
	}

	resolution, ok := cache.crateNames[crateName]
	if !ok {
		return types.Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("could not find %q in dependencies or dev-dependencies in %s", crateName, cache.manifestPath))
	}
	return resolution, nil
}

// ManifestPath returns the resolved manifest location, initializing the
// cache if needed.
func (r *Resolver) ManifestPath(ctx context.Context) (string, error) {
	cache, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	return cache.manifestPath, nil
}

// CrateNames returns a copy of the full resolution table.
func (r *Resolver) CrateNames(ctx context.Context) (types.ResolutionTable, error) {
	cache, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	table := make(types.ResolutionTable, len(cache.crateNames))
	for name, resolution := range cache.crateNames {
		table[name] = resolution
	}
	return table, nil
}

func (r *Resolver) load(ctx context.Context) (resolverCache, error) {
	dir, ok := r.Env.ManifestDir()
	if !ok {
		return resolverCache{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("manifest dir environment variable not set")
	}

	r.once.Do(func() {
		r.cache = r.initialize(ctx, dir)
	})
	if r.cache.err != nil {
		return resolverCache{}, r.cache.err
	}

	// The manifest dir must not change within one process run.
	assert.Assert(ctx, dir == r.cache.manifestDir, "manifest dir changed after resolver cache initialization")

	return r.cache, nil
}

func (r *Resolver) initialize(ctx context.Context, dir string) resolverCache {
	path, err := r.Manifest.Locate(dir)
	if err != nil {
		return resolverCache{err: err}
	}
	data, err := r.Manifest.Read(path)
	if err != nil {
		return resolverCache{err: err}
	}
	doc, err := r.Decoder.Decode(data)
	if err != nil {
		return resolverCache{err: err}
	}

	table := core.NewExtractor().ExtractCrateNames(ctx, doc, r.Env.BuildContext())
	log.Ctx(ctx).Debug().
		Str("manifest", path).
		Int("crates", len(table)).
		Msg("resolver cache initialized")

	return resolverCache{
		manifestDir:  dir,
		manifestPath: path,
		crateNames:   table,
	}
}
