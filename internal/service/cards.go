package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/atinyakov/JokeDeck/internal/errs"
	"github.com/atinyakov/JokeDeck/internal/models"
)

// Collection selects one of the two card collections.
type Collection string

const (
	// SeededCards is the shared, pre-populated collection.
	SeededCards Collection = "seeded"
	// AuthoredCards holds jokes created by signed-in identities.
	AuthoredCards Collection = "authored"
)

// SeededAuthor is the identity recorded on the pre-populated cards.
const SeededAuthor = "admin"

// DefaultSeededCards returns the shared jokes every install starts with.
func DefaultSeededCards() []models.Card {
	return []models.Card{
		{
			Question: "Why don’t skeletons fight each other?",
			Answer:   "Because they don’t have the guts!",
			Author:   SeededAuthor,
		},
		{
			Question: "Why did the scarecrow win an award?",
			Answer:   "Because he was outstanding in his field!",
			Author:   SeededAuthor,
		},
		{
			Question: "Why couldn’t the bicycle stand up by itself?",
			Answer:   "It was two-tired!",
			Author:   SeededAuthor,
		},
		{
			Question: "What do you call fake spaghetti?",
			Answer:   "An impasta!",
			Author:   SeededAuthor,
		},
	}
}

// CardStore defines the persistence operations required by the CardService.
type CardStore interface {
	// SaveCards replaces the persisted authored collection.
	SaveCards(cards []models.Card) error
	// LoadCards returns the persisted authored collection, empty when absent.
	LoadCards() ([]models.Card, error)
}

// CardService owns the seeded and authored card collections. Persistence of
// the authored collection is best-effort: failures are logged, never surfaced.
type CardService struct {
	seeded   []models.Card
	authored []models.Card
	// store persists the authored collection; nil disables persistence.
	store CardStore
	log   *zap.Logger
}

// NewCardService constructs a CardService, restoring the authored collection
// from store when one is configured. Missing or corrupt saved data loads as
// an empty collection.
func NewCardService(seeded []models.Card, store CardStore, log *zap.Logger) *CardService {
	if log == nil {
		log = zap.NewNop()
	}
	s := &CardService{seeded: seeded, store: store, log: log}
	if store != nil {
		cards, err := store.LoadCards()
		if err != nil {
			log.Warn("restore authored cards", zap.Error(err))
		}
		s.authored = cards
	}
	return s
}

// Cards returns the current contents of the collection, in display order.
func (s *CardService) Cards(target Collection) []models.Card {
	if target == SeededCards {
		return s.seeded
	}
	return s.authored
}

// Len returns the length of the collection.
func (s *CardService) Len(target Collection) int {
	return len(s.Cards(target))
}

// Submit appends a new card to the target collection. A question or answer
// that is empty after trimming rejects the submission with errs.ErrEmptyCard
// and the collection is unchanged.
func (s *CardService) Submit(question, answer, author string, target Collection) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return errs.ErrEmptyCard
	}
	card := models.Card{Question: question, Answer: answer, Author: author}
	if target == SeededCards {
		s.seeded = append(s.seeded, card)
		return nil
	}
	s.authored = append(s.authored, card)
	s.persist()
	return nil
}

// Remove deletes the card at index from the target collection, preserving the
// relative order of the rest. Seeded cards require the privileged role;
// authored cards may be removed by their author or a privileged requester.
func (s *CardService) Remove(target Collection, index int, requester string, role models.Role) error {
	cards := s.Cards(target)
	if index < 0 || index >= len(cards) {
		return errs.ErrNotFound
	}
	if target == SeededCards {
		if role != models.RolePrivileged {
			return errs.ErrNotPermitted
		}
		s.seeded = append(s.seeded[:index], s.seeded[index+1:]...)
		return nil
	}
	if cards[index].Author != requester && role != models.RolePrivileged {
		return errs.ErrNotPermitted
	}
	s.authored = append(s.authored[:index], s.authored[index+1:]...)
	s.persist()
	return nil
}

func (s *CardService) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.SaveCards(s.authored); err != nil {
		s.log.Warn("persist authored cards", zap.Error(err))
	}
}
