package cache

// ResultKeyOpts are the analysis options that change a cached result.
type ResultKeyOpts struct {
	Mode   string `json:"mode"`
	Prefix string `json:"prefix,omitempty"`
}

// Keyer derives cache keys for analysis results.
type Keyer interface {
	// ResultKey returns the key for the result of analyzing the graph with
	// content hash graphHash under opts.
	ResultKey(graphHash string, opts ResultKeyOpts) string
}

// DefaultKeyer produces "result:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey hashes the graph hash together with the options.
func (DefaultKeyer) ResultKey(graphHash string, opts ResultKeyOpts) string {
	return hashKey("result", graphHash, opts)
}
