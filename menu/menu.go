// Package menu renders the interactive source picker
package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cqroot/prompt"
	"github.com/muesli/termenv"
)

const (
	PromptText    = "Select your news feed: "
	NothingChosen = "User did not select anything"

	colorBlack = "0"
	colorWhite = "7"
)

// ErrCancelled is returned by a Chooser when the user quits the selection
var ErrCancelled = errors.New("selection cancelled")

// Chooser shows a single choice list and blocks until the user picks an
// option or quits. The first option is highlighted initially.
type Chooser interface {
	Choose(message string, options []string) (string, error)
}

// PromptChooser is the terminal Chooser backed by cqroot/prompt
type PromptChooser struct{}

func (PromptChooser) Choose(message string, options []string) (string, error) {
	choice, err := prompt.New().Ask(message).Choose(options)
	if errors.Is(err, prompt.ErrUserQuit) {
		return "", ErrCancelled
	}
	return choice, err
}

// Presenter owns the terminal while the menu is shown
type Presenter struct {
	out      *termenv.Output
	chooser  Chooser
	selected lipgloss.Style
}

func New(out io.Writer, chooser Chooser) *Presenter {
	if chooser == nil {
		chooser = PromptChooser{}
	}

	return &Presenter{
		out:     termenv.NewOutput(out),
		chooser: chooser,
		selected: lipgloss.NewRenderer(out).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorBlack)).
			Background(lipgloss.Color(colorWhite)),
	}
}

// Present asks the user to pick one of options. ok is false when the user
// cancelled. The screen is cleared on every return path.
func (p *Presenter) Present(options []string) (name string, ok bool, err error) {
	if len(options) == 0 {
		return "", false, errors.New("there are no news sources to choose from")
	}

	p.out.ClearScreen()
	choice, err := p.chooser.Choose(PromptText, options)
	p.out.ClearScreen()

	switch {
	case errors.Is(err, ErrCancelled):
		fmt.Fprintln(p.out, NothingChosen)
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("could not show menu: %w", err)
	}

	fmt.Fprintln(p.out, p.selected.Render(choice))
	return choice, true, nil
}
