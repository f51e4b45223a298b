package vectordb

// DefaultTopK is used when a search does not specify a result count.
const DefaultTopK = 10

type SearchOptions struct {
	TopK int
	Meta map[string]string
}

type SearchOption func(*SearchOptions)

func SearchWithTopK(topK int) SearchOption {
	return func(o *SearchOptions) {
		o.TopK = topK
	}
}

func SearchWithMeta(meta map[string]string) SearchOption {
	return func(o *SearchOptions) {
		o.Meta = meta
	}
}

func NewSearchOptions(opts ...SearchOption) *SearchOptions {
	ret := new(SearchOptions)
	for _, opt := range opts {
		opt(ret)
	}
	if ret.TopK <= 0 {
		ret.TopK = DefaultTopK
	}
	return ret
}
