package panel

// Registry owns the canonical panel set and the content of each panel for the
// lifetime of the process.
type Registry struct {
	contents map[ID]*Content
}

// Option customises registry construction.
type Option func(*Registry)

// WithPermanent marks the given panels as permanent: they may move between
// placements through docking but can never be closed or undocked.
func WithPermanent(ids ...ID) Option {
	return func(r *Registry) {
		for _, id := range ids {
			if c, ok := r.contents[id]; ok {
				c.Permanent = true
			}
		}
	}
}

// NewRegistry creates content for every known panel.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{contents: make(map[ID]*Content, len(names))}
	for _, id := range All() {
		r.contents[id] = &Content{ID: id, Title: id.String()}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// ContentOf returns the stable content handle for id, or nil for an unknown id.
func (r *Registry) ContentOf(id ID) *Content {
	if r == nil {
		return nil
	}
	return r.contents[id]
}

// IDs lists the registered panels in canonical order.
func (r *Registry) IDs() []ID {
	if r == nil {
		return nil
	}
	ids := make([]ID, 0, len(r.contents))
	for _, id := range All() {
		if _, ok := r.contents[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
