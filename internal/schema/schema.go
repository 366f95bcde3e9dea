// Package schema describes which questions the wizard asks and in which order.
package schema

import (
	"fmt"
	"strings"

	"njeeny/internal/cms"
)

// Setting keys read by the generator and the renderer.
const (
	KeyDomain     = "domain"
	KeyPath       = "path"
	KeySubdomains = "subdomains"
	KeyHTTPS      = "https"
	KeyEnable     = "enable"
	KeyCMS        = "cms"
	KeyWWW        = "www"
	KeyAdvagg     = "advagg"
	KeyPHP        = "php"
)

type QuestionKind int

const (
	FreeText QuestionKind = iota
	Choice
)

type Question struct {
	Key     string
	Prompt  string
	Kind    QuestionKind
	Choices []string // Choice only; index 0 is the default

	// ByLabel makes the collector keep the chosen label as the canonical answer.
	ByLabel bool
}

type SectionKind int

const (
	// General sections ask their own questions.
	General SectionKind = iota
	// PerCMS sections pick a question list by the resolved cms setting.
	PerCMS
)

type Section struct {
	Name      string
	Kind      SectionKind
	Questions []Question
	ByCMS     map[cms.Kind][]Question
}

// QuestionsFor returns the questions of a PerCMS section for kind k.
func (s Section) QuestionsFor(k cms.Kind) ([]Question, bool) {
	qs, ok := s.ByCMS[k]
	return qs, ok
}

// Schema is an ordered list of sections. Build it with Default or by hand and
// treat it as read-only afterwards.
type Schema struct {
	Sections []Section
}

func Text(key, prompt string) Question {
	return Question{Key: key, Prompt: prompt, Kind: FreeText}
}

func YesNo(key, prompt string) Question {
	return Question{Key: key, Prompt: prompt, Kind: Choice, Choices: []string{"Yes", "No"}}
}

// Default returns the wizard's question tree.
func Default() Schema {
	return Schema{Sections: []Section{
		{
			Name: "GENERAL",
			Kind: General,
			Questions: []Question{
				Text(KeyDomain, "Enter the domain"),
				Text(KeyPath, "Enter the path"),
				YesNo(KeySubdomains, "Include Subdomains?"),
				YesNo(KeyHTTPS, "Force HTTPS?"),
				YesNo(KeyEnable, "Enable the site after generating?"),
				{
					Key:     KeyCMS,
					Prompt:  "CMS",
					Kind:    Choice,
					Choices: []string{cms.Autodetect, cms.Drupal.String(), cms.Wordpress.String(), cms.None.String()},
					ByLabel: true,
				},
			},
		},
		{
			Name: "CMS SPECIFIC",
			Kind: PerCMS,
			ByCMS: map[cms.Kind][]Question{
				cms.Drupal: {
					YesNo(KeyWWW, "Force www subdomain?"),
					YesNo(KeyAdvagg, "Enable advagg support?"),
				},
				cms.Wordpress: {},
				cms.None: {
					YesNo(KeyWWW, "Force www subdomain?"),
					YesNo(KeyPHP, "Do you need PHP support?"),
				},
			},
		},
	}}
}

// Validate reports structural problems: choice questions without options,
// PerCMS sections missing a kind, duplicate keys within one question list.
func (s Schema) Validate() error {
	var errs []string

	for _, sec := range s.Sections {
		switch sec.Kind {
		case General:
			errs = append(errs, checkQuestions(sec.Name, sec.Questions)...)
		case PerCMS:
			for _, k := range cms.Kinds() {
				qs, ok := sec.ByCMS[k]
				if !ok {
					errs = append(errs, fmt.Sprintf("section %q has no questions for cms %q", sec.Name, k))
					continue
				}
				errs = append(errs, checkQuestions(sec.Name+"/"+k.String(), qs)...)
			}
		default:
			errs = append(errs, fmt.Sprintf("section %q has unknown kind %d", sec.Name, sec.Kind))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid schema:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func checkQuestions(where string, qs []Question) []string {
	var errs []string
	seen := map[string]bool{}
	for _, q := range qs {
		if q.Key == "" {
			errs = append(errs, fmt.Sprintf("%s: question %q has no key", where, q.Prompt))
		}
		if seen[q.Key] {
			errs = append(errs, fmt.Sprintf("%s: duplicate key %q", where, q.Key))
		}
		seen[q.Key] = true
		if q.Kind == Choice && len(q.Choices) == 0 {
			errs = append(errs, fmt.Sprintf("%s: choice %q has no options", where, q.Key))
		}
	}
	return errs
}
