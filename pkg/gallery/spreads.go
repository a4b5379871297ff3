package gallery

// SpreadLayout names the visual arrangement of a spread's media slots.
type SpreadLayout string

const (
	LayoutHeroTwo  SpreadLayout = "hero-two"
	LayoutTwoEqual SpreadLayout = "two-equal"
	LayoutHeroOne  SpreadLayout = "hero-one"
)

// Spread is one two-page display unit holding 1-3 media items. Spreads are a
// derived view over an album's ordering, never persisted, and recomputed
// whenever the ordering changes.
type Spread struct {
	Media  []MediaItem  `json:"media"`
	Layout SpreadLayout `json:"layout"`
}

var layoutRotation = []SpreadLayout{LayoutHeroTwo, LayoutTwoEqual, LayoutHeroOne}

// Pack turns an ordered media list into an ordered list of spreads. It is a
// total, deterministic function of its input: a single left-to-right pass with
// no lookahead, every item landing in exactly one spread in original order.
//
// The rotation counter advances once per spread produced. A slot that lands on
// hero-two and has at least 3 items remaining consumes 3; otherwise 2 items
// are consumed, as two-equal only when exactly 2 remain on an even counter.
// A single trailing item always renders as hero-one with one media slot;
// renderers must tolerate that, it is not an error.
func Pack(media []MediaItem) []Spread {
	if len(media) == 0 {
		return nil
	}

	var spreads []Spread
	i := 0
	rotation := 0

	for i < len(media) {
		remaining := len(media) - i

		switch {
		case remaining >= 3 && layoutRotation[rotation%len(layoutRotation)] == LayoutHeroTwo:
			spreads = append(spreads, Spread{
				Media:  media[i : i+3],
				Layout: LayoutHeroTwo,
			})
			i += 3
		case remaining >= 2:
			layout := LayoutHeroOne
			if remaining == 2 && rotation%2 == 0 {
				layout = LayoutTwoEqual
			}
			spreads = append(spreads, Spread{
				Media:  media[i : i+2],
				Layout: layout,
			})
			i += 2
		default:
			spreads = append(spreads, Spread{
				Media:  media[i : i+1],
				Layout: LayoutHeroOne,
			})
			i++
		}

		rotation++
	}

	return spreads
}
