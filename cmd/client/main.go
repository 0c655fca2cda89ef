// Command client is the interactive JokeDeck flip-card shell.
package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/atinyakov/JokeDeck/internal/capability"
	"github.com/atinyakov/JokeDeck/internal/client/storage"
	"github.com/atinyakov/JokeDeck/internal/config"
	"github.com/atinyakov/JokeDeck/internal/logger"
	"github.com/atinyakov/JokeDeck/internal/models"
	"github.com/atinyakov/JokeDeck/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// app bundles the client's services for the shell loops.
type app struct {
	scanner     *bufio.Scanner
	sessions    *service.SessionService
	cards       *service.CardService
	nav         *service.Navigator
	locator     *capability.Locator
	camera      *capability.Camera
	snapshotDir string
	timeout     time.Duration
}

// main parses configuration, wires the services and runs the shell.
func main() {
	options := config.Parse()

	fmt.Printf("JokeDeck Client\nVersion: %s\nBuild Date: %s\n",
		cmp.Or(version, "N/A"), cmp.Or(buildDate, "N/A"))

	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	zapLogger := log.Log

	// Persistence is optional; without it the authored jokes live only in
	// this process.
	var store service.CardStore
	if options.Persist {
		store = storage.New(options.StorePath)
	}

	verifier := service.NewVerifier(service.DefaultPrivileged, service.DefaultRegulars)
	sessions := service.NewSessionService(verifier)
	cards := service.NewCardService(service.DefaultSeededCards(), store, zapLogger)
	nav := service.NewNavigator(cards, service.SeededCards)

	httpClient := &http.Client{Timeout: options.Timeout}

	a := &app{
		scanner:     bufio.NewScanner(os.Stdin),
		sessions:    sessions,
		cards:       cards,
		nav:         nav,
		locator:     capability.NewLocator(httpClient, options.GeoURL, zapLogger),
		camera:      capability.NewCamera(capability.NewSnapshotOpener(httpClient, options.CameraURL), zapLogger),
		snapshotDir: options.SnapshotDir,
		timeout:     options.Timeout,
	}
	a.run()
}

// run alternates between the auth loop and the main shell until stdin closes
// or the user exits.
func (a *app) run() {
	for {
		if !a.authLoop() {
			return
		}
		if !a.shell() {
			return
		}
	}
}

// authLoop drives the sign-in and sign-up screens until a session starts.
// It returns false when input is exhausted.
func (a *app) authLoop() bool {
	for !a.sessions.Current().SignedIn() {
		switch a.sessions.Current().Screen {
		case models.ScreenSignUp:
			fmt.Println("-- Sign Up (type 'signin' to use an existing account) --")
			username, ok := a.prompt("Choose a username: ")
			if !ok {
				return false
			}
			if username == "signin" {
				a.sessions.SwitchToSignIn()
				continue
			}
			password, ok := a.prompt("Choose a password: ")
			if !ok {
				return false
			}
			// The password is collected but only checked for presence.
			if username == "" || password == "" {
				fmt.Println("Please fill in both fields.")
				continue
			}
			if err := a.sessions.CompleteSignUp(username); err != nil {
				fmt.Println("Please fill in both fields.")
			}
		default:
			fmt.Println("-- Sign In (type 'signup' to create an account) --")
			username, ok := a.prompt("Username: ")
			if !ok {
				return false
			}
			if username == "signup" {
				a.sessions.SwitchToSignUp()
				continue
			}
			password, ok := a.prompt("Password: ")
			if !ok {
				return false
			}
			if err := a.sessions.AttemptSignIn(username, password); err != nil {
				fmt.Println("Invalid username or password.")
			}
		}
	}

	sess := a.sessions.Current()
	if sess.Role == models.RolePrivileged {
		fmt.Println("Welcome Admin!")
	} else {
		fmt.Printf("Welcome, %s!\n", sess.Identity)
	}
	return true
}

// shell runs the main card-browsing loop. It returns true after a sign-out
// and false to quit the program.
func (a *app) shell() bool {
	a.showCard()
	for {
		fmt.Print("jokedeck> ")
		if !a.scanner.Scan() {
			return false
		}
		args := fields(a.scanner.Text())
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "help":
			fmt.Println("Available commands: help, card, next, flip, browse mine|seeded, add, list, delete <n>, delete-seeded <n>, location, snapshot, signout, exit")
		case "card":
			a.showCard()
		case "next":
			a.nav.Advance()
			a.showCard()
		case "flip":
			a.nav.ToggleAnswer()
			a.showCard()
		case "browse":
			if len(args) < 2 || (args[1] != "mine" && args[1] != "seeded") {
				fmt.Println("Usage: browse mine|seeded")
				continue
			}
			if args[1] == "mine" {
				a.nav.SetActive(service.AuthoredCards)
			} else {
				a.nav.SetActive(service.SeededCards)
			}
			a.showCard()
		case "add":
			a.addCard()
		case "list":
			a.listCards()
		case "delete":
			a.deleteCard(service.AuthoredCards, args)
		case "delete-seeded":
			a.deleteCard(service.SeededCards, args)
		case "location":
			a.showLocation()
		case "snapshot":
			a.takeSnapshot()
		case "signout":
			a.sessions.SignOut()
			a.nav.SetActive(service.SeededCards)
			return true
		case "exit":
			fmt.Println("Bye")
			return false
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

// showLocation runs one geolocation lookup and reports its result inline.
func (a *app) showLocation() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	res := a.locator.Request(ctx)
	if !res.OK() {
		fmt.Println(res.Message)
		return
	}
	fmt.Printf("Latitude: %.4f, Longitude: %.4f\n", res.Value.Latitude, res.Value.Longitude)
}

// takeSnapshot captures one camera frame and writes it next to the local data.
func (a *app) takeSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()
	res := a.camera.Capture(ctx)
	if !res.OK() {
		fmt.Println(res.Message)
		return
	}
	path, err := a.saveFrame(res.Value)
	if err != nil {
		fmt.Println("Failed to save snapshot:", err)
		return
	}
	fmt.Println("Snapshot saved to", path)
}
