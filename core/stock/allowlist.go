package stock

// AllowList restricts which identities are eligible for display.
type AllowList interface {
	IsListed(id Identity) bool
}

// AllowListFunc adapts a plain function to the AllowList interface.
type AllowListFunc func(id Identity) bool

// IsListed calls f(id).
func (f AllowListFunc) IsListed(id Identity) bool {
	return f(id)
}

type preciseList map[Identity]struct{}

func (p preciseList) IsListed(id Identity) bool {
	_, ok := p[id]
	return ok
}

type fuzzyList map[string]struct{}

func (f fuzzyList) IsListed(id Identity) bool {
	_, ok := f[id.Item]
	return ok
}

// NewAllowList returns a list admitting exactly the given identities.
// With no identities it returns nil, meaning "no restriction".
func NewAllowList(ids ...Identity) AllowList {
	if len(ids) == 0 {
		return nil
	}
	p := make(preciseList, len(ids))
	for _, id := range ids {
		p[id] = struct{}{}
	}
	return p
}

// NewFuzzyAllowList returns a list admitting any variant of the given items.
// With no identities it returns nil, meaning "no restriction".
func NewFuzzyAllowList(ids ...Identity) AllowList {
	if len(ids) == 0 {
		return nil
	}
	f := make(fuzzyList, len(ids))
	for _, id := range ids {
		f[id.Item] = struct{}{}
	}
	return f
}
