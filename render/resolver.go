package render

import (
	"go.uber.org/zap"

	"fce/content"
	"fce/style"
)

// Resolver memoizes style resolution per block and style configuration
// version. Not safe for concurrent use.
type Resolver struct {
	styles *style.Configuration
	cache  map[string]style.Result
	hits   int
	log    *zap.Logger
}

func NewResolver(styles *style.Configuration, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		styles: styles,
		cache:  make(map[string]style.Result),
		log:    log.Named("resolver"),
	}
}

// Block returns style resolution for a block.
func (r *Resolver) Block(b content.Block) style.Result {
	key := style.CacheKey(b, r.styles)
	if res, ok := r.cache[key]; ok {
		r.hits++
		return res
	}
	res := style.ResolveBlock(b, r.styles)
	r.cache[key] = res
	return res
}

// Stats reports number of cached results and cache hits.
func (r *Resolver) Stats() (size, hits int) {
	return len(r.cache), r.hits
}

func (r *Resolver) LogStats() {
	size, hits := r.Stats()
	r.log.Debug("Style resolution cache", zap.Int("size", size), zap.Int("hits", hits))
}
