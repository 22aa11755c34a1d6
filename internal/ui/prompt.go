package ui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// SelectPrompter is a plain single-question selector. It is the fallback
// when the full-screen picker would be overkill or the terminal is too
// limited for it.
type SelectPrompter struct {
	Title string
}

// Pick asks the user to choose one of lines and returns its index. ok is
// false when the user aborted the form.
func (p *SelectPrompter) Pick(lines []string) (int, bool, error) {
	options := make([]huh.Option[int], len(lines))
	for i, line := range lines {
		options[i] = huh.NewOption(line, i)
	}

	selected := -1
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(p.Title).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if selected < 0 {
		return 0, false, nil
	}
	return selected, true, nil
}

// Confirm asks a yes/no question and returns the answer. Aborting the form
// counts as "no".
func Confirm(title string) (bool, error) {
	var answer bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&answer),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return answer, nil
}
