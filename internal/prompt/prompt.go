// Package prompt asks the interactive setup questions.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dezkareid/osddt/internal/agents"
	"github.com/dezkareid/osddt/internal/config"
)

// ErrNoAgents is returned when the user deselects every agent.
var ErrNoAgents = errors.New("at least one agent must be selected")

// Prompter collects setup answers that were not given as flags.
type Prompter interface {
	RepoType() (config.RepoType, error)
	Agents() ([]agents.Kind, error)
}

// SurveyIO holds the streams survey prompts read and write.
type SurveyIO struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// DefaultSurveyIO uses the process stdio.
var DefaultSurveyIO = SurveyIO{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// AskOptions returns the options every question is asked with.
func (s SurveyIO) AskOptions() []survey.AskOpt {
	return []survey.AskOpt{survey.WithStdio(s.In, s.Out, s.Err)}
}

type askFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// SurveyPrompter asks questions on a terminal.
type SurveyPrompter struct {
	io  SurveyIO
	ask askFunc
}

// NewSurveyPrompter creates a Prompter bound to the given streams.
func NewSurveyPrompter(stdio SurveyIO) *SurveyPrompter {
	return &SurveyPrompter{io: stdio, ask: survey.AskOne}
}

var repoTypeChoices = []struct {
	label string
	value config.RepoType
}{
	{"Single repo - a standalone project with one package", config.RepoSingle},
	{"Monorepo - a repository containing multiple packages", config.RepoMonorepo},
}

// RepoType asks for the repository layout.
func (p *SurveyPrompter) RepoType() (config.RepoType, error) {
	options := make([]string, len(repoTypeChoices))
	for i, c := range repoTypeChoices {
		options[i] = c.label
	}
	q := &survey.Select{
		Message: "What type of repository is this?",
		Options: options,
		Default: options[0],
	}

	var answer string
	if err := p.ask(q, &answer, p.io.AskOptions()...); err != nil {
		return "", fmt.Errorf("asking repo type: %w", err)
	}
	for _, c := range repoTypeChoices {
		if c.label == answer {
			return c.value, nil
		}
	}
	return "", fmt.Errorf("%w %q", config.ErrInvalidRepoType, answer)
}

// Agents asks which agents to generate command files for.
func (p *SurveyPrompter) Agents() ([]agents.Kind, error) {
	options := make([]string, len(agents.All))
	for i, k := range agents.All {
		options[i] = k.Label()
	}
	q := &survey.MultiSelect{
		Message: "Which AI agents should osddt generate commands for?",
		Options: options,
		Default: options,
	}

	var answers []string
	if err := p.ask(q, &answers, p.io.AskOptions()...); err != nil {
		return nil, fmt.Errorf("asking agents: %w", err)
	}

	selected := make(map[agents.Kind]bool)
	for _, a := range answers {
		for _, k := range agents.All {
			if k.Label() == a {
				selected[k] = true
			}
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoAgents
	}
	return agents.Canonical(selected), nil
}
