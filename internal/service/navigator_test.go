package service

import (
	"testing"

	"github.com/atinyakov/JokeDeck/internal/models"
)

func TestAdvance_Modulo(t *testing.T) {
	svc := NewCardService(DefaultSeededCards(), nil, nil)
	nav := NewNavigator(svc, SeededCards)
	length := svc.Len(SeededCards)

	for n := 1; n <= 10; n++ {
		nav.Advance()
		if nav.Index() != n%length {
			t.Fatalf("after %d advances index = %d; want %d", n, nav.Index(), n%length)
		}
	}
}

func TestAdvance_EmptyCollection(t *testing.T) {
	svc := NewCardService(nil, nil, nil)
	nav := NewNavigator(svc, AuthoredCards)

	nav.Advance()
	nav.Advance()
	if _, ok := nav.Current(); ok {
		t.Error("Current reported a card for an empty collection")
	}
	if nav.Index() != 0 {
		t.Errorf("index = %d; want 0", nav.Index())
	}
}

func TestToggleAnswer(t *testing.T) {
	svc := NewCardService(DefaultSeededCards(), nil, nil)
	nav := NewNavigator(svc, SeededCards)

	nav.ToggleAnswer()
	if !nav.Revealed() {
		t.Error("answer not revealed after toggle")
	}
	nav.ToggleAnswer()
	if nav.Revealed() {
		t.Error("answer still revealed after second toggle")
	}

	// Advancing always flips back to the question side.
	nav.ToggleAnswer()
	nav.Advance()
	if nav.Revealed() {
		t.Error("answer revealed after advance")
	}
}

func TestOnMutated_RemovalRepairsIndex(t *testing.T) {
	store := &recordingStore{loaded: []models.Card{
		{Question: "Q1", Answer: "A1", Author: "alice"},
		{Question: "Q2", Answer: "A2", Author: "alice"},
		{Question: "Q3", Answer: "A3", Author: "alice"},
	}}
	svc := NewCardService(nil, store, nil)
	nav := NewNavigator(svc, AuthoredCards)
	nav.Advance()
	nav.Advance() // index 2

	if err := svc.Remove(AuthoredCards, 2, "alice", models.RoleRegular); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	nav.OnMutated(svc.Len(AuthoredCards), false)

	if got := nav.Index(); got < 0 || got >= svc.Len(AuthoredCards) {
		t.Fatalf("index = %d out of range [0,%d)", got, svc.Len(AuthoredCards))
	}
	if _, ok := nav.Current(); !ok {
		t.Fatal("Current reported empty for a non-empty collection")
	}
}

func TestOnMutated_ShrinkToEmpty(t *testing.T) {
	store := &recordingStore{loaded: []models.Card{
		{Question: "Q1", Answer: "A1", Author: "alice"},
	}}
	svc := NewCardService(nil, store, nil)
	nav := NewNavigator(svc, AuthoredCards)

	if err := svc.Remove(AuthoredCards, 0, "alice", models.RoleRegular); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	nav.OnMutated(0, false)

	if _, ok := nav.Current(); ok {
		t.Error("Current reported a card after the collection emptied")
	}
}

func TestOnMutated_AppendJumpsToNewCard(t *testing.T) {
	svc := NewCardService(nil, nil, nil)
	nav := NewNavigator(svc, AuthoredCards)

	for i, q := range []string{"Q1", "Q2", "Q3"} {
		if err := svc.Submit(q, "A", "alice", AuthoredCards); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}
		nav.OnMutated(svc.Len(AuthoredCards), true)
		if nav.Index() != i {
			t.Fatalf("index = %d after append %d", nav.Index(), i)
		}
	}
}

func TestSetActive_ResetsPosition(t *testing.T) {
	svc := NewCardService(DefaultSeededCards(), nil, nil)
	nav := NewNavigator(svc, SeededCards)
	nav.Advance()
	nav.ToggleAnswer()

	nav.SetActive(AuthoredCards)
	if nav.Active() != AuthoredCards || nav.Index() != 0 || nav.Revealed() {
		t.Errorf("navigator after SetActive = {%s %d %v}", nav.Active(), nav.Index(), nav.Revealed())
	}
}

func TestScenario_SignUpSubmitAdvanceDelete(t *testing.T) {
	sessions := NewSessionService(newTestVerifier())
	svc := NewCardService(DefaultSeededCards(), nil, nil)
	nav := NewNavigator(svc, AuthoredCards)

	sessions.BeginSignUp()
	if err := sessions.CompleteSignUp("alice"); err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	sess := sessions.Current()

	if err := svc.Submit("Q1", "A1", sess.Identity, AuthoredCards); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	nav.OnMutated(svc.Len(AuthoredCards), true)

	want := models.Card{Question: "Q1", Answer: "A1", Author: "alice"}
	if got := svc.Cards(AuthoredCards); len(got) != 1 || got[0] != want {
		t.Fatalf("authored = %+v; want [%+v]", got, want)
	}
	if nav.Index() != 0 {
		t.Fatalf("index = %d; want 0", nav.Index())
	}

	// Length 1 wraps to itself.
	nav.Advance()
	if nav.Index() != 0 {
		t.Errorf("index after advance = %d; want 0", nav.Index())
	}

	// bob is not privileged and not the author.
	if err := svc.Remove(AuthoredCards, 0, "bob", models.RoleRegular); err == nil {
		t.Fatal("Remove by non-owner succeeded")
	}
	if svc.Len(AuthoredCards) != 1 {
		t.Errorf("authored length = %d; want 1", svc.Len(AuthoredCards))
	}
}
