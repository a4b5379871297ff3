package gallery

// Ordering is the client-side scratch ordering of an album's media for book
// mode. Entries live in an arena keyed by stable id; the ordering itself is a
// separate id sequence, so reorders move ids around without ever touching
// entry identity. It is a pure permutation of the current media set: moves
// never add or remove items.
//
// The ordering is speculative client state. It is discarded and rebuilt from
// the authoritative media list whenever that list changes, and is never sent
// to the backend.
type Ordering struct {
	byID  map[string]MediaItem
	order []string
}

// NewOrdering builds an ordering from an authoritative media list.
func NewOrdering(media []MediaItem) *Ordering {
	o := &Ordering{
		byID:  make(map[string]MediaItem, len(media)),
		order: make([]string, 0, len(media)),
	}
	for _, m := range media {
		o.byID[m.ID] = m
		o.order = append(o.order, m.ID)
	}
	return o
}

// Len returns the number of items in the ordering.
func (o *Ordering) Len() int {
	return len(o.order)
}

// IDs returns the current id sequence.
func (o *Ordering) IDs() []string {
	ids := make([]string, len(o.order))
	copy(ids, o.order)
	return ids
}

// Items materializes the ordered media list.
func (o *Ordering) Items() []MediaItem {
	items := make([]MediaItem, 0, len(o.order))
	for _, id := range o.order {
		items = append(items, o.byID[id])
	}
	return items
}

// Move extracts the item at global index 'from' and reinserts it at global
// index 'to', shifting items between the two positions by one. Out-of-range
// indices and from == to are no-ops.
func (o *Ordering) Move(from, to int) {
	n := len(o.order)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return
	}
	id := o.order[from]
	order := append(o.order[:from], o.order[from+1:]...)
	order = append(order, "")
	copy(order[to+1:], order[to:])
	order[to] = id
	o.order = order
}
