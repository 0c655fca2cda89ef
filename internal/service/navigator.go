package service

import "github.com/atinyakov/JokeDeck/internal/models"

// Navigator tracks which card of the active collection is displayed and
// whether its answer side is showing. The position is re-validated against
// the current collection length before every use, so a removal can never
// leave it pointing past the end.
type Navigator struct {
	cards    *CardService
	active   Collection
	index    int
	revealed bool
}

// NewNavigator constructs a Navigator browsing the given collection.
func NewNavigator(cards *CardService, active Collection) *Navigator {
	return &Navigator{cards: cards, active: active}
}

// Active returns the collection being browsed.
func (n *Navigator) Active() Collection {
	return n.active
}

// Index returns the current position. It is meaningless while the active
// collection is empty.
func (n *Navigator) Index() int {
	return n.index
}

// Revealed reports whether the answer side is showing.
func (n *Navigator) Revealed() bool {
	return n.revealed
}

// SetActive switches browsing to another collection, starting at its first
// card with the answer hidden.
func (n *Navigator) SetActive(target Collection) {
	n.active = target
	n.index = 0
	n.revealed = false
}

// Current returns the displayed card, or ok=false when the active collection
// is empty and an empty state should render instead.
func (n *Navigator) Current() (models.Card, bool) {
	cards := n.cards.Cards(n.active)
	if len(cards) == 0 {
		return models.Card{}, false
	}
	if n.index >= len(cards) {
		n.index %= len(cards)
	}
	return cards[n.index], true
}

// Advance moves to the next card circularly and hides the answer.
// No-op on an empty collection.
func (n *Navigator) Advance() {
	length := n.cards.Len(n.active)
	if length == 0 {
		return
	}
	n.index = (n.index + 1) % length
	n.revealed = false
}

// ToggleAnswer flips between the question and answer sides.
func (n *Navigator) ToggleAnswer() {
	n.revealed = !n.revealed
}

// OnMutated re-derives a valid position after the active collection changed
// length. An append jumps to the new card so it is shown immediately.
func (n *Navigator) OnMutated(newLength int, appended bool) {
	if newLength == 0 {
		n.index = 0
		n.revealed = false
		return
	}
	if appended {
		n.index = newLength - 1
		n.revealed = false
		return
	}
	if n.index >= newLength {
		n.index %= newLength
	}
}
