package mini

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Prompter asks the user for a query and for a choice among options.
// Cancelling a prompt returns terminal.InterruptErr.
type Prompter interface {
	Input(message string) (string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct {
	pageSize int
}

// Survey returns a Prompter drawing on the terminal.
func Survey() Prompter {
	return &surveyPrompter{pageSize: 11}
}

func (p *surveyPrompter) Input(message string) (string, error) {
	input := survey.Input{
		Message: message,
		Help:    "Type a song, artist or album. Ctrl+C quits.",
	}

	var response string
	err := survey.AskOne(&input, &response)
	return response, err
}

func (p *surveyPrompter) Select(message string, options []string) (int, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: p.pageSize,
	}

	var index int
	err := survey.AskOne(prompt, &index, survey.WithFilter(func(filter, value string, _ int) bool {
		return fuzzy.MatchFold(filter, value)
	}))
	return index, err
}
