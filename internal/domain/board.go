package domain

// Card is one draggable card on a board.
type Card struct {
	ID    ItemID
	Title string
	Note  string
}

// BoardList is one ordered column of cards.
type BoardList struct {
	ID    ListID
	Title string
	Cards []Card
}

// Board is the host-side source of truth the drag engine reorders. The
// engine never mutates a board; it emits Committed events and the host
// applies them with ApplyMove.
type Board struct {
	Lists []BoardList
}

// DeclaredLists projects the board into the reconciler's input shape.
func (b Board) DeclaredLists() []DeclaredList[Card] {
	lists := make([]DeclaredList[Card], len(b.Lists))
	for i, l := range b.Lists {
		lists[i] = DeclaredList[Card]{ID: l.ID, Items: l.Cards}
	}
	return lists
}

// List returns the list with the given ID.
func (b Board) List(id ListID) (BoardList, bool) {
	for _, l := range b.Lists {
		if l.ID == id {
			return l, true
		}
	}
	return BoardList{}, false
}

// FindCard returns a card and its current position.
func (b Board) FindCard(id ItemID) (Card, Position, bool) {
	for _, l := range b.Lists {
		for i, c := range l.Cards {
			if c.ID == id {
				return c, Position{List: l.ID, Index: i}, true
			}
		}
	}
	return Card{}, Position{}, false
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	lists := make([]BoardList, len(b.Lists))
	for i, l := range b.Lists {
		cards := make([]Card, len(l.Cards))
		copy(cards, l.Cards)
		lists[i] = BoardList{ID: l.ID, Title: l.Title, Cards: cards}
	}
	return Board{Lists: lists}
}

// ApplyMove applies a committed drag to the board and returns the
// updated copy. The card is located by identity rather than trusting the
// event's from-index, so a stale index cannot corrupt the board. Unknown
// cards and unknown target lists leave the board unchanged.
func (b Board) ApplyMove(ev Committed) Board {
	_, _, ok := b.FindCard(ev.Item)
	if !ok {
		return b
	}
	if _, ok := b.List(ev.List); !ok {
		return b
	}

	out := b.Clone()

	var card Card
remove:
	for i := range out.Lists {
		for j, c := range out.Lists[i].Cards {
			if c.ID == ev.Item {
				card = c
				out.Lists[i].Cards = append(out.Lists[i].Cards[:j], out.Lists[i].Cards[j+1:]...)
				break remove
			}
		}
	}

	for i := range out.Lists {
		if out.Lists[i].ID != ev.List {
			continue
		}
		idx := ev.Index
		if idx < 0 {
			idx = 0
		}
		if idx > len(out.Lists[i].Cards) {
			idx = len(out.Lists[i].Cards)
		}
		cards := out.Lists[i].Cards
		cards = append(cards, Card{})
		copy(cards[idx+1:], cards[idx:])
		cards[idx] = card
		out.Lists[i].Cards = cards
		break
	}
	return out
}
