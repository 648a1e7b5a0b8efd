package views

import "dragdeck/internal/domain"

// Cell-space layout constants. Columns are fixed-width blocks joined
// horizontally after a two-row header; every card block is three rows
// (border, title line, border). The View renders from the same numbers
// computeLayout uses, so the rect table always matches what is on
// screen.
const (
	headerRows = 2
	colWidth   = 26
	cardRows   = 3

	colContentWidth = colWidth - 4        // inside column border and padding
	cardInnerWidth  = colContentWidth - 2 // card block width minus its border
	cardTextWidth   = cardInnerWidth - 2  // card text minus card padding
)

type cardSlot struct {
	rect  domain.Rect
	list  domain.ListID
	index int
}

type columnSlot struct {
	id   domain.ListID
	rect domain.Rect
}

// boardLayout maps every rendered card and column to its screen-space
// rect. It is rebuilt on each reflow and implements the bounds lookups
// the drag controller needs.
type boardLayout struct {
	cards         map[domain.ItemID]cardSlot
	columns       []columnSlot
	contentHeight int
}

// computeLayout derives the rect table for the given reconciled lists.
// The width argument bounds nothing today (columns are fixed-width) but
// keeps the signature honest about what layout depends on.
func computeLayout(lists []domain.DeclaredList[domain.Card], width int) boardLayout {
	maxCards := 1
	for _, l := range lists {
		if n := len(l.Items); n*cardRows > maxCards {
			maxCards = n * cardRows
		}
	}
	contentH := 1 + maxCards // column title line + card area

	layout := boardLayout{
		cards:         make(map[domain.ItemID]cardSlot),
		contentHeight: contentH,
	}

	for i, l := range lists {
		colX := float64(i * colWidth)
		layout.columns = append(layout.columns, columnSlot{
			id: l.ID,
			rect: domain.Rect{
				X:      colX + 1,
				Y:      headerRows + 1,
				Width:  colWidth - 2,
				Height: float64(contentH),
			},
		})

		for j, card := range l.Items {
			layout.cards[card.ID] = cardSlot{
				list:  l.ID,
				index: j,
				rect: domain.Rect{
					X:      colX + 2,
					Y:      float64(headerRows + 2 + cardRows*j),
					Width:  colContentWidth,
					Height: cardRows,
				},
			}
		}
	}
	return layout
}

// cardAt hit-tests the pointer against every rendered card.
func (l boardLayout) cardAt(p domain.Point) (domain.ItemID, domain.ListID, int, bool) {
	for id, slot := range l.cards {
		if slot.rect.Contains(p) {
			return id, slot.list, slot.index, true
		}
	}
	return "", "", 0, false
}

// listAt hit-tests the pointer against column interiors.
func (l boardLayout) listAt(p domain.Point) (domain.ListID, bool) {
	for _, col := range l.columns {
		if col.rect.Contains(p) {
			return col.id, true
		}
	}
	return "", false
}
