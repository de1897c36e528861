package overlay

// Layers is an ordered membership set. Objects are drawn in the order they
// were added.
type Layers struct {
	order []Overlay
	index map[string]struct{}
}

func NewLayers() *Layers {
	return &Layers{index: make(map[string]struct{})}
}

func (l *Layers) AddLayer(o Overlay) {
	id := o.OverlayID()
	if _, ok := l.index[id]; ok {
		return
	}
	l.index[id] = struct{}{}
	l.order = append(l.order, o)
}

func (l *Layers) RemoveLayer(o Overlay) {
	id := o.OverlayID()
	if _, ok := l.index[id]; !ok {
		return
	}
	delete(l.index, id)
	for i, x := range l.order {
		if x.OverlayID() == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}

func (l *Layers) HasLayer(o Overlay) bool {
	_, ok := l.index[o.OverlayID()]
	return ok
}

// Len returns the number of members.
func (l *Layers) Len() int { return len(l.order) }

// Each calls fn for every member in draw order.
func (l *Layers) Each(fn func(Overlay)) {
	for _, o := range l.order {
		fn(o)
	}
}

// Clear removes every member.
func (l *Layers) Clear() {
	l.order = nil
	l.index = make(map[string]struct{})
}

// Group is a retained collection of overlays that mirrors its members onto
// a surface, like the drawn-items layer of the map.
type Group struct {
	surface Surface
	items   []Overlay
}

// NewGroup returns a group whose members are also added to s. s may be nil.
func NewGroup(s Surface) *Group {
	return &Group{surface: s}
}

func (g *Group) AddLayer(o Overlay) {
	g.items = append(g.items, o)
	if g.surface != nil {
		g.surface.AddLayer(o)
	}
}

// Items returns the retained overlays in insertion order.
func (g *Group) Items() []Overlay { return g.items }

// Len returns the number of retained overlays.
func (g *Group) Len() int { return len(g.items) }
