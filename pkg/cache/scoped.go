package cache

// ScopedKeyer wraps a Keyer with a prefix so that several tenants can share
// one backend. The API server scopes keys per deployment:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "daygrid:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer is replaced by a DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) DayKey(source, contentHash string) string {
	return k.prefix + k.inner.DayKey(source, contentHash)
}

func (k *ScopedKeyer) LayoutKey(dayHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(dayHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
