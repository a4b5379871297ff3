package gallery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderingMoveNoop(t *testing.T) {
	media := testMedia(7)

	table := []struct {
		label    string
		from, to int
	}{
		{"same index", 2, 2},
		{"negative from", -1, 3},
		{"negative to", 3, -1},
		{"from past end", 7, 0},
		{"to past end", 0, 7},
	}
	for _, ts := range table {
		ts := ts
		t.Run(ts.label, func(t *testing.T) {
			o := NewOrdering(media)
			before := Pack(o.Items())
			o.Move(ts.from, ts.to)
			if diff := cmp.Diff(media, o.Items()); diff != "" {
				t.Fatalf("ordering changed: %s", diff)
			}
			if diff := cmp.Diff(before, Pack(o.Items())); diff != "" {
				t.Fatalf("spread output changed: %s", diff)
			}
		})
	}
}

func TestOrderingMoveForward(t *testing.T) {
	o := NewOrdering(testMedia(5))

	// Move index 1 to index 3: remove then reinsert, shifting 2 and 3 left.
	o.Move(1, 3)

	exp := []string{"media-0", "media-2", "media-3", "media-1", "media-4"}
	if diff := cmp.Diff(exp, o.IDs()); diff != "" {
		t.Fatalf("unexpected ordering after forward move: %s", diff)
	}
}

func TestOrderingMoveBackward(t *testing.T) {
	o := NewOrdering(testMedia(5))

	// Move index 3 to index 0: 0..2 shift right by one.
	o.Move(3, 0)

	exp := []string{"media-3", "media-0", "media-1", "media-2", "media-4"}
	if diff := cmp.Diff(exp, o.IDs()); diff != "" {
		t.Fatalf("unexpected ordering after backward move: %s", diff)
	}
}

func TestOrderingMoveIsPermutation(t *testing.T) {
	media := testMedia(6)
	o := NewOrdering(media)
	o.Move(0, 5)
	o.Move(4, 2)
	o.Move(3, 3)

	if o.Len() != len(media) {
		t.Fatalf("expected %d items, got %d", len(media), o.Len())
	}
	seen := make(map[string]bool)
	for _, id := range o.IDs() {
		if seen[id] {
			t.Fatalf("duplicate id %s after moves", id)
		}
		seen[id] = true
	}
	for _, m := range media {
		if !seen[m.ID] {
			t.Fatalf("id %s lost after moves", m.ID)
		}
	}
}

func TestOrderingItemsKeepIdentity(t *testing.T) {
	media := testMedia(3)
	o := NewOrdering(media)
	o.Move(2, 0)

	items := o.Items()
	if diff := cmp.Diff(media[2], items[0]); diff != "" {
		t.Fatalf("moved item lost identity: %s", diff)
	}
}
