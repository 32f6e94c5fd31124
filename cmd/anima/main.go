// Command anima runs an interactive chat session in the terminal. It
// authenticates through the session guard, then reads lines from stdin
// and prints messages as they land. Two commands exist beyond plain
// text: /voice toggles the capture mode and /logout ends the session.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/aayushCywarden/animagic-space/core/chat"
	"github.com/aayushCywarden/animagic-space/credstore"
	"github.com/aayushCywarden/animagic-space/guard"
	"github.com/aayushCywarden/animagic-space/notify"
	"github.com/aayushCywarden/animagic-space/responder"
	"github.com/aayushCywarden/animagic-space/session"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to session config JSON file")
		login      = flag.Bool("login", false, "Issue a fresh credential before entering")
		seed       = flag.Int64("seed", 0, "Seed for the canned reply source (0 = time-based)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	// A .env next to the binary may carry ANIMA_API_KEY.
	_ = godotenv.Load()

	cfg := session.DefaultConfig()
	if *configFile != "" {
		loaded, err := session.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	if *seed != 0 {
		cfg.Responder.Seed = *seed
	}
	if key := os.Getenv("ANIMA_API_KEY"); key != "" && cfg.Responder.Source == responder.SourceOpenAI {
		cfg.Responder.OpenAI.APIKey = key
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	store, err := credstore.New(&cfg.Credentials)
	if err != nil {
		log.Fatalf("Failed to create credential store: %v", err)
	}
	g := guard.New(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *login {
		if _, err := g.Issue(ctx); err != nil {
			log.Fatalf("Failed to issue credential: %v", err)
		}
	}

	ctrl, err := session.Enter(ctx, &cfg,
		session.WithGuard(g),
		session.WithNotifier(consoleNotifier{}),
		session.WithLogger(logger),
		session.WithOnMessage(printMessage),
	)
	if err != nil {
		log.Fatalf("Failed to enter session: %v", err)
	}

	fmt.Println("Connected. Type a message, /voice to toggle recording, /logout to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/logout":
			if err := ctrl.End(ctx); err != nil {
				log.Fatalf("Failed to end session: %v", err)
			}
			return
		case "/voice":
			if err := ctrl.ToggleCapture(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "voice: %v\n", err)
			}
			continue
		}

		// A pending transcript in the input slot is sent when the user
		// presses enter on an empty line.
		if line == "" {
			line = ctrl.Input()
		}
		if err := ctrl.SendMessage(ctx, line); err != nil {
			fmt.Fprintf(os.Stderr, "send: %v\n", err)
		}
	}

	if ctrl.State() == session.StateActive {
		_ = ctrl.End(ctx)
	}
}

func printMessage(msg chat.Message) {
	prefix := "you"
	if msg.Sender == chat.SenderAssistant {
		prefix = "anima"
	}
	fmt.Printf("[%s] %s\n", prefix, msg.Text)
}

// consoleNotifier renders notices straight to stdout.
type consoleNotifier struct{}

func (consoleNotifier) Notify(_ context.Context, n notify.Notice) {
	fmt.Printf("(%s) %s\n", n.Level, n.Text)
}
