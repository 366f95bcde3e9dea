package settings

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"njeeny/internal/cms"
	"njeeny/internal/prompt"
	"njeeny/internal/schema"
)

// ErrSchemaMismatch means the schema has no questions for the resolved cms.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Prompter is what the collector needs from the terminal.
type Prompter interface {
	Say(text string) error
	AskText(prompt string) (string, error)
	AskChoice(prompt string, choices []string) (int, error)
	AskChoiceLabel(prompt string, choices []string) (string, error)
}

type DetectFunc func(path string) cms.Detection

type Collector struct {
	schema schema.Schema
	p      Prompter
	detect DetectFunc
	log    *zap.Logger
}

// NewCollector returns a collector walking s. A nil detect uses cms.Detect,
// a nil log discards diagnostics.
func NewCollector(s schema.Schema, p Prompter, detect DetectFunc, log *zap.Logger) *Collector {
	if detect == nil {
		detect = cms.Detect
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Collector{schema: s, p: p, detect: detect, log: log}
}

// Collect asks every question section by section and returns the answers.
func (c *Collector) Collect() (Settings, error) {
	st := New()

	for _, sec := range c.schema.Sections {
		if err := c.p.Say(prompt.Caption(sec.Name)); err != nil {
			return Settings{}, err
		}

		c.resolveCMS(&st)

		qs, err := questionsFor(sec, st)
		if err != nil {
			return Settings{}, err
		}

		for _, q := range qs {
			v, err := c.ask(q)
			if err != nil {
				return Settings{}, fmt.Errorf("%s: %w", q.Key, err)
			}
			st.Set(q.Key, v)
			c.log.Debug("answer", zap.String("section", sec.Name), zap.String("key", q.Key), zap.String("value", v.Text), zap.Int("index", v.Index))
		}
	}

	return st, nil
}

// resolveCMS replaces the autodetect answer with the detected kind.
func (c *Collector) resolveCMS(st *Settings) {
	if !st.Is(schema.KeyCMS, cms.Autodetect) {
		return
	}
	path, _ := st.Text(schema.KeyPath)
	d := c.detect(path)
	c.log.Info("cms detected", zap.String("path", path), zap.Stringer("cms", d.Kind), zap.Int("drupal_version", d.DrupalVersion))
	st.Set(schema.KeyCMS, TextValue(d.Kind.String()))
}

func questionsFor(sec schema.Section, st Settings) ([]schema.Question, error) {
	switch sec.Kind {
	case schema.General:
		return sec.Questions, nil
	case schema.PerCMS:
		label, ok := st.Text(schema.KeyCMS)
		if !ok {
			return nil, fmt.Errorf("%w: section %q needs the cms answer first", ErrSchemaMismatch, sec.Name)
		}
		kind, err := cms.ParseKind(label)
		if err != nil {
			return nil, fmt.Errorf("%w: section %q: %v", ErrSchemaMismatch, sec.Name, err)
		}
		qs, ok := sec.QuestionsFor(kind)
		if !ok {
			return nil, fmt.Errorf("%w: section %q has no questions for cms %q", ErrSchemaMismatch, sec.Name, kind)
		}
		return qs, nil
	default:
		return nil, fmt.Errorf("%w: section %q has unknown kind %d", ErrSchemaMismatch, sec.Name, sec.Kind)
	}
}

func (c *Collector) ask(q schema.Question) (Value, error) {
	switch {
	case q.Kind == schema.FreeText:
		s, err := c.p.AskText(q.Prompt)
		if err != nil {
			return Value{}, err
		}
		return TextValue(s), nil
	case q.ByLabel:
		label, err := c.p.AskChoiceLabel(q.Prompt, q.Choices)
		if err != nil {
			return Value{}, err
		}
		return TextValue(label), nil
	default:
		i, err := c.p.AskChoice(q.Prompt, q.Choices)
		if err != nil {
			return Value{}, err
		}
		return ChoiceValue(i, q.Choices[i]), nil
	}
}
