package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bikeshare/utils"
)

const (
	yesAnswer           = "yes"
	noAnswer            = "no"
	invalidInputMessage = "\nInvalid input. Please try again."
)

// prompter asks questions until the answer is one of the valid options
type prompter struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func newPrompter(input io.Reader, output io.Writer) *prompter {
	return &prompter{
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// askOption prints the question and reads answers until one of them, lower-cased, is in validOptions.
// It returns ErrNoInput if the input ends first
func (p *prompter) askOption(question string, validOptions []string) (string, error) {
	for {
		fmt.Fprintf(p.output, "\n%s\n", question)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", ErrNoInput
		}

		answer := strings.ToLower(strings.TrimSpace(p.scanner.Text()))
		if utils.ContainsString(answer, validOptions) {
			return answer, nil
		}
		fmt.Fprintln(p.output, invalidInputMessage)
	}
}

func (p *prompter) askYesNo(question string) (bool, error) {
	answer, err := p.askOption(question, []string{yesAnswer, noAnswer})
	if err != nil {
		return false, err
	}
	return answer == yesAnswer, nil
}

// enumerate joins the options as a sentence, e.g: "Chicago, New York City or Washington"
func enumerate(options []string, lastSeparator string) string {
	titled := make([]string, 0, len(options))
	for _, option := range options {
		titled = append(titled, utils.TitleCase(option))
	}

	if len(titled) <= 1 {
		return strings.Join(titled, "")
	}
	return strings.Join(titled[:len(titled)-1], ", ") + lastSeparator + titled[len(titled)-1]
}
