package pptxbullet

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Plan - list of paragraph edits applied to a text frame
//
//	steps:
//	  - paragraph: 0
//	    style: bullet
//	  - add: true
//	    text: "Second action item"
//	    style: number
//	    level: 1
//	  - paragraph: 2
//	    style: null   # or "" or none
type Plan struct {
	Steps []PlanStep `yaml:"steps"`
}

// PlanStep targets existing paragraph by index or adds new one.
// Fields left out are not touched.
type PlanStep struct {
	Paragraph *int    `yaml:"paragraph"`
	Add       bool    `yaml:"add"`
	Text      *string `yaml:"text"`
	Level     *int    `yaml:"level"`

	// kept as node to tell missing key from explicit null
	Style yaml.Node `yaml:"style"`
}

// ParsePlan decodes yaml plan
func ParsePlan(buf []byte) (*Plan, error) {
	plan := &Plan{}
	if err := yaml.Unmarshal(buf, plan); err != nil {
		return nil, &ParseError{Source: "plan", Cause: err}
	}
	return plan, nil
}

// LoadPlan reads yaml plan file
func LoadPlan(path string) (*Plan, error) {
	buf, err := os.ReadFile(path) // #nosec G304 - plan path given by user
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	plan, err := ParsePlan(buf)
	var perr *ParseError
	if errors.As(err, &perr) {
		perr.Source = path
	}
	return plan, err
}

// Style requested by step, false when step has no style key
func (step PlanStep) style() (BulletStyle, bool, error) {
	if step.Style.Kind == 0 {
		return "", false, nil
	}
	if step.Style.Kind != yaml.ScalarNode {
		return "", true, &InvalidArgumentError{
			Param:    "bullet style",
			Value:    step.Style.Tag,
			Accepted: looseBulletStyleAccepted,
		}
	}
	if step.Style.ShortTag() == "!!null" {
		style, err := ParseBulletStyle(nil)
		return style, true, err
	}
	style, err := ParseBulletStyle(step.Style.Value)
	return style, true, err
}

type planEdit struct {
	target   int
	add      bool
	text     *string
	level    *int
	style    BulletStyle
	hasStyle bool
}

// validate whole plan against paragraph count before anything changes
func (plan *Plan) edits(count int) ([]planEdit, error) {
	edits := make([]planEdit, 0, len(plan.Steps))
	for i, step := range plan.Steps {
		e := planEdit{add: step.Add, text: step.Text, level: step.Level}

		switch {
		case step.Add && step.Paragraph != nil:
			return nil, fmt.Errorf("plan step %d: %w", i, &InvalidArgumentError{
				Param: "step", Value: "both add and paragraph set",
			})
		case step.Add:
			e.target = count
			count++
		case step.Paragraph != nil:
			e.target = *step.Paragraph
			if e.target < 0 || e.target >= count {
				return nil, fmt.Errorf("plan step %d: %w", i, &InvalidArgumentError{
					Param: "paragraph index",
					Value: fmt.Sprintf("%d of %d paragraphs", e.target, count),
				})
			}
		default:
			return nil, fmt.Errorf("plan step %d: %w", i, &InvalidArgumentError{
				Param: "step", Value: "neither add nor paragraph set",
			})
		}

		style, ok, err := step.style()
		if err != nil {
			return nil, fmt.Errorf("plan step %d: %w", i, err)
		}
		e.style, e.hasStyle = style, ok

		edits = append(edits, e)
	}
	return edits, nil
}

// Apply runs all steps in order. Plan is validated first,
// on error text frame stays untouched.
func (plan *Plan) Apply(tf *TextFrame, cfg Config) error {
	edits, err := plan.edits(len(tf.Paragraphs()))
	if err != nil {
		return err
	}

	for _, e := range edits {
		var p *Paragraph
		if e.add {
			p = tf.AddParagraph()
		} else {
			// index checked in edits()
			p = tf.Paragraphs()[e.target]
		}

		if e.text != nil {
			p.SetText(*e.text)
		}
		if e.level != nil {
			p.SetLevel(*e.level)
		}
		if e.hasStyle {
			if err := p.SetBulletStyleWith(e.style, cfg); err != nil {
				return err
			}
		}
		tracef("plan: paragraph %d --> style=%s level=%d", e.target, p.BulletStyle(), p.Level())
	}
	return nil
}
