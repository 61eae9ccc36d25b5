// Where: internal/interaction/selector.go
// What: Interactive input using the huh library.
// Why: Let import-header ask for a header file like the decompiler script did.
package interaction

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Validate(func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("value required")
			}
			return nil
		}).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
