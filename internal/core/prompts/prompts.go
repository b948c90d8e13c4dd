// Package prompts holds the system and user prompts sent to the text
// generation collaborator. The catalogue ships embedded as YAML.
package prompts

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var defaultCatalogue []byte

// Template is one system/user prompt pair plus its sampling temperature.
type Template struct {
	Temperature float64 `yaml:"temperature"`
	System      string  `yaml:"system"`
	User        string  `yaml:"user"`
}

// Catalogue groups the prompts used by the interview flow.
type Catalogue struct {
	Interviewer Template `yaml:"interviewer"`
	Evaluator   Template `yaml:"evaluator"`
}

// Rendered is a template with its placeholders filled in.
type Rendered struct {
	Temperature float64
	System      string
	User        string
}

// Default parses the embedded catalogue.
func Default() (*Catalogue, error) {
	return Parse(defaultCatalogue)
}

// MustDefault is Default that panics on a malformed embedded catalogue.
func MustDefault() *Catalogue {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes a YAML catalogue and checks every prompt is present.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("prompts: decode catalogue: %w", err)
	}
	for name, t := range map[string]Template{"interviewer": c.Interviewer, "evaluator": c.Evaluator} {
		if strings.TrimSpace(t.System) == "" || strings.TrimSpace(t.User) == "" {
			return nil, fmt.Errorf("prompts: %s prompt is incomplete", name)
		}
	}
	return &c, nil
}

// Questions renders the prompt asking for count questions for role.
func (c *Catalogue) Questions(role string, count int) Rendered {
	r := strings.NewReplacer("{role}", role, "{count}", strconv.Itoa(count))
	return render(c.Interviewer, r)
}

// Evaluation renders the rubric prompt for one question and transcript.
func (c *Catalogue) Evaluation(question, answer string) Rendered {
	r := strings.NewReplacer("{question}", question, "{answer}", answer)
	return render(c.Evaluator, r)
}

func render(t Template, r *strings.Replacer) Rendered {
	return Rendered{
		Temperature: t.Temperature,
		System:      r.Replace(t.System),
		User:        r.Replace(t.User),
	}
}
