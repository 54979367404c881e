package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/ansi"
	"github.com/qnkhuat/tetristerm/pkg/clock"
	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/util"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	logPath := flag.String("log", config.DefaultLogPath, "path to log file")
	seed := flag.Int64("seed", 0, "piece sequence seed, 0 for a random one")
	tick := flag.Duration("tick", config.DefaultTickInterval, "gravity interval")
	rotation := flag.String("rotation", "legacy", "rotation mode: legacy or clockwise")
	theme := flag.String("theme", gui.ThemeBasic.Name, "color theme")
	plain := flag.Bool("plain", false, "draw with plain ANSI escapes instead of the widget UI")
	nick := flag.String("nick", "", "player name shown in the log")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log":
			cfg.LogPath = *logPath
		case "seed":
			cfg.Seed = *seed
		case "tick":
			cfg.TickInterval = config.Duration(*tick)
		case "rotation":
			cfg.Rotation = *rotation
		case "theme":
			cfg.Theme = *theme
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %s", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("non-interactive terminals are not supported")
	}

	prefix := "CLIENT: "
	if *nick != "" {
		prefix = "CLIENT " + *nick + ": "
	}
	logFile, err := util.InitLog(cfg.LogPath, prefix)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()

	// Already validated above.
	mode, _ := cfg.RotationMode()
	t, _ := cfg.LoadTheme()

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}

	s := game.New(
		game.WithSeed(seedValue),
		game.WithRotation(mode),
		game.WithGameOverHandler(func(step game.Step) {
			log.Printf("Game over: score %03d, lines %d", step.FinalScore, step.FinalLines)
		}),
	)
	c := clock.New(cfg.Interval())
	log.Printf("New game: seed %d, rotation %s, tick %s", seedValue, mode, cfg.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() { // Down when receive killed signal
		<-sigc
		cancel()
	}()

	if *plain {
		tm := &ansi.Terminal{
			In:      os.Stdin,
			Out:     os.Stdout,
			Fd:      int(os.Stdin.Fd()),
			Session: s,
			Clock:   c,
		}
		err = tm.Run(ctx)
	} else {
		err = gui.NewClient(s, c, t).Run(ctx)
	}

	log.Printf("Quit after %d rounds, score %03d", s.Round(), s.Score())
	if err != nil {
		log.Fatalf("Failed to run: %s", err)
	}
}
