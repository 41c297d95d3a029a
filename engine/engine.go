// Package engine rewrites the default colors of the logo template to a
// requested palette.
//
// Only two constructs are touched: fill attributes and gradient stop-color
// attributes. Everything else in the document, including the attribute names
// and their quoting, is copied through byte for byte.
package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"logotint/hexcolor"
	"logotint/model"
)

// ErrMissingTemplate is returned when Apply is called without a document.
var ErrMissingTemplate = errors.New("missing template")

// Mapping rewrites one literal color to another, outside the slot system.
type Mapping struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Options tune a substitution run.
type Options struct {
	CaseSensitive  bool
	CustomMappings []Mapping
}

// Result is the outcome of Apply. Errors lists every slot or mapping that was
// skipped; the document is still usable when it is non-empty.
type Result struct {
	Document     string                `json:"document"`
	Applied      map[model.Slot]string `json:"applied"`
	Mappings     map[string]string     `json:"mappings,omitempty"`
	Replacements int                   `json:"replacements"`
	Errors       []string              `json:"errors"`
}

type attrContext struct {
	name string
	re   *regexp.Regexp
}

// The color group captures the whole run of hex digits so that a source
// token never matches the prefix of a longer value.
var contexts = []attrContext{
	{name: "fill", re: regexp.MustCompile(`(^|[^\w:-])(fill\s*=\s*["']?)(#[0-9A-Fa-f]+)`)},
	{name: "stop-color", re: regexp.MustCompile(`(^|[^\w:-])(stop-color\s*=\s*["']?)(#[0-9A-Fa-f]+)`)},
}

// Apply rewrites every fill and stop-color reference to a slot's default
// color into the color delta assigns to that slot. Slots left empty in delta
// are not touched.
//
// The search tokens are the literal values of model.DefaultPalette, so the
// result is only meaningful when document is the pristine template. Use a
// Session to model repeated edits.
//
// Setting secondary alone also recolors the lowercase spelling of its
// default, which the template uses for special. Once special is set too,
// each slot keeps its own spelling. A slot set to its default color leaves
// the document as it is.
func Apply(document string, delta model.Palette, opts Options) (Result, error) {
	res := Result{
		Document: document,
		Applied:  make(map[model.Slot]string),
		Mappings: make(map[string]string),
		Errors:   []string{},
	}
	if document == "" {
		res.Errors = append(res.Errors, ErrMissingTemplate.Error())
		return res, ErrMissingTemplate
	}

	tbl := newTable(opts.CaseSensitive)
	defaults := model.DefaultPalette()
	for _, s := range model.Slots() {
		target := delta.Get(s)
		if target == "" {
			continue
		}
		norm, err := hexcolor.Normalize(target)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", s, err))
			continue
		}
		tbl.add(defaults.Get(s), norm)
		res.Applied[s] = norm
	}

	doc := document
	if !tbl.empty() {
		for _, ctx := range contexts {
			var n int
			doc, n = rewrite(doc, ctx.re, tbl.lookup)
			res.Replacements += n
		}
	}

	for _, m := range opts.CustomMappings {
		if !hexcolor.IsValid(m.From) || !hexcolor.IsValid(m.To) {
			res.Errors = append(res.Errors, fmt.Sprintf("mapping %s -> %s: %v", m.From, m.To, hexcolor.ErrInvalidColor))
			continue
		}
		to := strings.ToUpper(m.To)
		one := newTable(opts.CaseSensitive)
		one.add(m.From, to)
		for _, ctx := range contexts {
			var n int
			doc, n = rewrite(doc, ctx.re, one.lookup)
			res.Replacements += n
		}
		res.Mappings[m.From] = to
	}

	res.Document = doc
	return res, nil
}

// table resolves a matched token to its replacement. An exact match always
// wins; when matching is case-insensitive the folded form is tried next, and
// the first source added for a folded key keeps it. This keeps the
// secondary (#219BC3) and special (#219bc3) slots apart in the template.
type table struct {
	caseSensitive bool
	exact         map[string]string
	folded        map[string]string
}

func newTable(caseSensitive bool) *table {
	return &table{
		caseSensitive: caseSensitive,
		exact:         make(map[string]string),
		folded:        make(map[string]string),
	}
}

func (t *table) add(from, to string) {
	if _, ok := t.exact[from]; !ok {
		t.exact[from] = to
	}
	if t.caseSensitive {
		return
	}
	key := strings.ToUpper(from)
	if _, ok := t.folded[key]; !ok {
		t.folded[key] = to
	}
}

func (t *table) empty() bool {
	return len(t.exact) == 0
}

func (t *table) lookup(token string) (string, bool) {
	if to, ok := t.exact[token]; ok {
		return to, true
	}
	if t.caseSensitive {
		return "", false
	}
	to, ok := t.folded[strings.ToUpper(token)]
	return to, ok
}

// rewrite replaces the color group of every match of re for which lookup
// returns a different color. A replacement that only changes the case of the
// token is skipped, so the template's own spelling survives. It returns the
// new document and the replacement count.
func rewrite(doc string, re *regexp.Regexp, lookup func(string) (string, bool)) (string, int) {
	matches := re.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc, 0
	}

	var b strings.Builder
	last, n := 0, 0
	for _, m := range matches {
		start, end := m[6], m[7]
		to, ok := lookup(doc[start:end])
		if !ok || strings.EqualFold(to, doc[start:end]) {
			continue
		}
		if n == 0 {
			b.Grow(len(doc))
		}
		b.WriteString(doc[last:start])
		b.WriteString(to)
		last = end
		n++
	}
	if n == 0 {
		return doc, 0
	}
	b.WriteString(doc[last:])
	return b.String(), n
}
