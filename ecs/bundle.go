package ecs

// Bundle is the named key/value container components write their persisted
// state into. Readers must tolerate missing keys.
type Bundle struct {
	PropertyMap
	name string
}

// NewBundle returns an empty bundle called name.
func NewBundle(name string) *Bundle {
	return &Bundle{name: name}
}

func (b *Bundle) Name() string { return b.name }

// Bundle returns the nested bundle stored under key.
func (b *Bundle) Bundle(key string) (*Bundle, bool) {
	return PropertyValue[*Bundle](&b.PropertyMap, key)
}

// PutBundle stores sub under its own name.
func (b *Bundle) PutBundle(sub *Bundle) {
	b.Set(sub.name, sub)
}
