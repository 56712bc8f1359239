package pipeline

// cacheKey identifies a validated pipeline by its caller-chosen key and the hash of
// its vertex input layout, so the same key can coexist with different layouts.
type cacheKey struct {
	key        string
	layoutHash uint64
}

// Cache memoizes validated pipelines. Building through the cache guarantees the
// layout/program compatibility checks run at most once per (key, layout) pair; later
// lookups return the already validated pipeline without re-checking.
//
// The cache is not safe for concurrent use: pipeline construction is part of the
// single-threaded setup path, matching the synchronous model of the rest of the
// library.
type Cache struct {
	pipelines map[cacheKey]GraphicsPipeline
}

// NewCache creates an empty pipeline cache.
//
// Returns:
//   - *Cache: the new cache
func NewCache() *Cache {
	return &Cache{pipelines: make(map[cacheKey]GraphicsPipeline)}
}

// GraphicsPipeline returns the cached pipeline for the given key and vertex layout,
// building and validating it on the first request.
//
// Parameters:
//   - key: the unique key for the pipeline
//   - program: the introspection data of the linked program
//   - opts: a variadic list of GraphicsPipelineOption functions to configure the pipeline
//
// Returns:
//   - GraphicsPipeline: the cached or newly validated pipeline
//   - error: the first layout incompatibility when building, nil on a cache hit
func (c *Cache) GraphicsPipeline(key string, program Program, opts ...GraphicsPipelineOption) (GraphicsPipeline, error) {
	candidate := newGraphicsPipeline(key, program, opts...)
	ck := cacheKey{key: key, layoutHash: candidate.vertexLayout.Hash()}
	if p, ok := c.pipelines[ck]; ok {
		return p, nil
	}
	if err := candidate.validate(); err != nil {
		return nil, err
	}
	c.pipelines[ck] = candidate
	return candidate, nil
}

// Len returns the number of validated pipelines held by the cache.
//
// Returns:
//   - int: the cached pipeline count
func (c *Cache) Len() int {
	return len(c.pipelines)
}
