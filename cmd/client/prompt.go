package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/atinyakov/JokeDeck/internal/errs"
	"github.com/atinyakov/JokeDeck/internal/service"
)

// prompt prints label and reads one trimmed line. ok is false on EOF.
func (a *app) prompt(label string) (line string, ok bool) {
	fmt.Print(label)
	if !a.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.scanner.Text()), true
}

func fields(line string) []string {
	return strings.Fields(strings.TrimSpace(line))
}

// showCard renders the current card of the active collection, or the empty
// state when there is nothing to show.
func (a *app) showCard() {
	card, ok := a.nav.Current()
	if !ok {
		fmt.Println("No jokes available")
		return
	}
	side := card.Question
	if a.nav.Revealed() {
		side = card.Answer
	}
	fmt.Printf("[%d/%d] %s\n", a.nav.Index()+1, a.cards.Len(a.nav.Active()), side)
}

// addCard prompts for a new joke and appends it to the authored collection.
func (a *app) addCard() {
	question, ok := a.prompt("Enter question: ")
	if !ok {
		return
	}
	answer, ok := a.prompt("Enter answer: ")
	if !ok {
		return
	}
	sess := a.sessions.Current()
	if err := a.cards.Submit(question, answer, sess.Identity, service.AuthoredCards); err != nil {
		fmt.Println("Both question and answer are required.")
		return
	}
	if a.nav.Active() == service.AuthoredCards {
		a.nav.OnMutated(a.cards.Len(service.AuthoredCards), true)
	}
	fmt.Println("Joke added.")
}

// listCards prints both collections with their one-based positions.
func (a *app) listCards() {
	fmt.Println("Shared jokes:")
	for i, card := range a.cards.Cards(service.SeededCards) {
		fmt.Printf("  %d. %s\n", i+1, card.Question)
	}
	authored := a.cards.Cards(service.AuthoredCards)
	fmt.Println("Your jokes:")
	if len(authored) == 0 {
		fmt.Println("  You haven't created any jokes yet.")
		return
	}
	for i, card := range authored {
		fmt.Printf("  %d. %s (by %s)\n", i+1, card.Question, card.Author)
	}
}

// deleteCard removes the card at the one-based position given in args.
func (a *app) deleteCard(target service.Collection, args []string) {
	if len(args) < 2 {
		fmt.Printf("Usage: %s <n>\n", args[0])
		return
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 {
		fmt.Printf("Usage: %s <n>\n", args[0])
		return
	}
	sess := a.sessions.Current()
	switch err := a.cards.Remove(target, n-1, sess.Identity, sess.Role); {
	case err == nil:
		if a.nav.Active() == target {
			a.nav.OnMutated(a.cards.Len(target), false)
		}
		fmt.Println("Joke deleted.")
	case errors.Is(err, errs.ErrNotFound):
		fmt.Println("Joke not found.")
	case target == service.SeededCards:
		fmt.Println("Only the admin can delete shared jokes.")
	default:
		fmt.Println("You can only delete your own jokes!")
	}
}

// saveFrame writes one captured frame to the snapshot directory.
func (a *app) saveFrame(frame []byte) (string, error) {
	if err := os.MkdirAll(a.snapshotDir, 0o700); err != nil {
		return "", err
	}
	path := filepath.Join(a.snapshotDir, uuid.NewString()+".jpg")
	if err := os.WriteFile(path, frame, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
