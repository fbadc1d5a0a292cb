package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iamasit07/connect4-engine/internal/config"
	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/bot"
	"github.com/iamasit07/connect4-engine/internal/terminal"
	"github.com/iamasit07/connect4-engine/pkg/logging"
)

func main() {
	config.LoadEnv()
	cfg := config.LoadConfig()

	// the screen owns stdout, so logs go to a file or nowhere
	logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	engine := bot.NewEngine(
		bot.WithDepth(cfg.SearchDepth),
		bot.WithMaxNodes(cfg.MaxTreeNodes),
		bot.WithParallel(cfg.ParallelSearch),
		bot.WithLogger(logger),
	)
	app := terminal.NewApp(screen, engine, logger)

	runErr := app.Run()
	screen.Fini()

	if msg := app.Message(); msg != "" {
		fmt.Println(msg)
	}
	g := app.Game()
	switch g.Status() {
	case domain.StatusWon:
		fmt.Printf("%c has won!\n", terminal.Glyph(g.Winner()))
	case domain.StatusDraw:
		fmt.Println("It's a draw!")
	}
	fmt.Println("Game ended!")

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
		os.Exit(1)
	}
}
