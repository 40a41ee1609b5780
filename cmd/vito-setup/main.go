package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	vitosetup "github.com/yoruboku/vito-setup"
	"github.com/yoruboku/vito-setup/pkg/prompt"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func main() {
	dir := flag.String("dir", ".", "workspace directory the bot is installed into")
	level := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		fail(fmt.Errorf("invalid log level %q", *level))
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(logLevel).
		With().Timestamp().Logger()

	fmt.Println(titleStyle.Render("VITO setup"))
	fmt.Println(hintStyle.Render("Installer for the Discord → Gemini bot"))

	paths, err := workspace.Resolve(*dir)
	if err != nil {
		fail(err)
	}

	err = vitosetup.Run(context.Background(),
		vitosetup.WithPaths(paths),
		vitosetup.WithLogger(log),
	)
	if errors.Is(err, prompt.ErrAborted) {
		fail(errors.New("setup aborted"))
	}
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	os.Exit(1)
}
