package gallery

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testMedia(n int) []MediaItem {
	items := make([]MediaItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, MediaItem{
			ID:      fmt.Sprintf("media-%d", i),
			Type:    MediaImage,
			ViewURL: fmt.Sprintf("https://cdn.example.com/media-%d", i),
		})
	}
	return items
}

func spreadSizes(spreads []Spread) []int {
	sizes := make([]int, 0, len(spreads))
	for _, s := range spreads {
		sizes = append(sizes, len(s.Media))
	}
	return sizes
}

func spreadLayouts(spreads []Spread) []SpreadLayout {
	layouts := make([]SpreadLayout, 0, len(spreads))
	for _, s := range spreads {
		layouts = append(layouts, s.Layout)
	}
	return layouts
}

func TestPackEmpty(t *testing.T) {
	if got := Pack(nil); len(got) != 0 {
		t.Fatalf("expected no spreads for empty input, got %d", len(got))
	}
	if got := Pack([]MediaItem{}); len(got) != 0 {
		t.Fatalf("expected no spreads for empty slice, got %d", len(got))
	}
}

func TestPackLayouts(t *testing.T) {
	table := []struct {
		n          int
		expSizes   []int
		expLayouts []SpreadLayout
	}{
		{1, []int{1}, []SpreadLayout{LayoutHeroOne}},
		{2, []int{2}, []SpreadLayout{LayoutTwoEqual}},
		{3, []int{3}, []SpreadLayout{LayoutHeroTwo}},
		{4, []int{3, 1}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne}},
		{5, []int{3, 2}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne}},
		{6, []int{3, 2, 1}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne, LayoutHeroOne}},
		{7, []int{3, 2, 2}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne, LayoutTwoEqual}},
		{8, []int{3, 2, 2, 1}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne, LayoutHeroOne, LayoutHeroOne}},
		{9, []int{3, 2, 2, 2}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne, LayoutHeroOne, LayoutHeroOne}},
		{10, []int{3, 2, 2, 3}, []SpreadLayout{LayoutHeroTwo, LayoutHeroOne, LayoutHeroOne, LayoutHeroTwo}},
	}
	for _, ts := range table {
		ts := ts
		t.Run(fmt.Sprintf("%d items", ts.n), func(t *testing.T) {
			spreads := Pack(testMedia(ts.n))
			if diff := cmp.Diff(ts.expSizes, spreadSizes(spreads)); diff != "" {
				t.Fatalf("unexpected spread sizes: %s", diff)
			}
			if diff := cmp.Diff(ts.expLayouts, spreadLayouts(spreads)); diff != "" {
				t.Fatalf("unexpected spread layouts: %s", diff)
			}
		})
	}
}

func TestPackPreservesOrder(t *testing.T) {
	for n := 0; n <= 25; n++ {
		media := testMedia(n)
		spreads := Pack(media)

		var flat []MediaItem
		for _, s := range spreads {
			if len(s.Media) < 1 || len(s.Media) > 3 {
				t.Fatalf("n=%d: spread size %d out of range", n, len(s.Media))
			}
			flat = append(flat, s.Media...)
		}
		if n == 0 {
			if len(flat) != 0 {
				t.Fatalf("n=0: expected no media, got %d", len(flat))
			}
			continue
		}
		if diff := cmp.Diff(media, flat); diff != "" {
			t.Fatalf("n=%d: concatenated spreads do not match input: %s", n, diff)
		}

		// A one-item spread may only ever be the final spread.
		for i, s := range spreads[:len(spreads)-1] {
			if len(s.Media) == 1 {
				t.Fatalf("n=%d: spread %d has a single item but is not final", n, i)
			}
		}
	}
}

func TestPackDeterministic(t *testing.T) {
	media := testMedia(11)
	first := Pack(media)
	second := Pack(media)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("pack is not deterministic: %s", diff)
	}
}

func TestPackTrailingSingleIsHeroOne(t *testing.T) {
	spreads := Pack(testMedia(4))
	last := spreads[len(spreads)-1]
	if last.Layout != LayoutHeroOne {
		t.Fatalf("expected trailing single-item spread to be hero-one, got %s", last.Layout)
	}
	if len(last.Media) != 1 {
		t.Fatalf("expected trailing spread to hold 1 item, got %d", len(last.Media))
	}
}
