package symbol

import (
	"strings"

	"github.com/yeojunjie/tune-transformer/model"
)

// Parse turns free-form chord symbol text into a ChordSpec. It never
// fails: it matches as much as it can, front to back with no
// backtracking, and returns whatever text it could not consume so the
// caller can warn about it. Parsing an empty or garbage string yields
// a rootless spec.
func Parse(text string) (model.ChordSpec, string) {
	var spec model.ChordSpec
	var leftover []string

	text = strings.TrimSpace(text)
	text = stripOuterParens(text)
	text, extras := extractParens(text)

	s := &scanner{text: text}
	parseFront(s, &spec)
	parseMiddle(s, &spec)
	parseBass(s, &spec)
	if rest := s.rest(); rest != "" {
		leftover = append(leftover, rest)
	}

	// extras like the "(b9#11)" in "C7(b9#11)" use the middle grammar only
	for _, extra := range extras {
		es := &scanner{text: extra}
		parseMiddle(es, &spec)
		if rest := es.rest(); rest != "" {
			leftover = append(leftover, rest)
		}
	}

	return spec, strings.Join(leftover, " ")
}

// stripOuterParens removes one pair of parentheses wrapping the whole
// symbol, e.g. "(C7)" -> "C7".
func stripOuterParens(text string) string {
	if len(text) < 2 || text[0] != '(' {
		return text
	}
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				if i == len(text)-1 {
					return text[1 : len(text)-1]
				}
				return text
			}
		}
	}
	return text
}

// extractParens pulls every matched "(...)" substring out of the text,
// returning the text without them and the inner strings in order.
func extractParens(text string) (string, []string) {
	var extras []string
	var kept strings.Builder
	for {
		open := strings.IndexByte(text, '(')
		if open < 0 {
			break
		}
		close := strings.IndexByte(text[open:], ')')
		if close < 0 {
			break
		}
		close += open
		kept.WriteString(text[:open])
		extras = append(extras, text[open+1:close])
		text = text[close+1:]
	}
	kept.WriteString(text)
	return kept.String(), extras
}

// Synonym sets for the front quality token. Order encodes priority:
// within a set, longer spellings first so "maj" is not eaten as "m"+"aj".
var (
	majorSyns    = []string{"maj", "ma", "M"}
	minorSyns    = []string{"min", "mi", "m", "-"}
	dimSyns      = []string{"dim", "°", "o"}
	halfDimSyns  = []string{"ø", "Ø", "0"}
	augSyns      = []string{"aug", "+"}
	triangleSyns = []string{"Δ", "∆", "^", "t"}
)

// parseFront consumes root letter, accidentals, one optional quality
// token and one optional extension number from the start of the symbol.
func parseFront(s *scanner, spec *model.ChordSpec) {
	c, ok := s.peek()
	if !ok || c < 'A' || c > 'G' {
		return // bass-only symbols like "/B" have no front segment
	}
	s.pos++
	spec.Letter = c
	spec.Sharp = s.eat("#")
	spec.Flat = s.eat("b")

	switch {
	case s.eatAny(majorSyns):
		spec.Major = true
	case s.eatAny(minorSyns):
		spec.Minor = true
	case s.eatAny(dimSyns):
		spec.Dim = true
	case s.eatAny(halfDimSyns):
		spec.HalfDim = true
	case s.eatAny(augSyns):
		spec.Aug = true
	case s.eatAny(triangleSyns):
		spec.Triangle = true
	}

	if s.eat("69") {
		spec.SixNine = true
	} else if n, ok := s.eatExtension(); ok {
		spec.Extension = n
	}
}

// parseMiddle repeatedly matches modifier tokens until one fails to
// match or the scanner stops advancing. The alternative order is the
// tie-break priority among ambiguous tokens.
func parseMiddle(s *scanner, spec *model.ChordSpec) {
	for {
		start := s.pos
		switch {
		case s.eat("69"):
			spec.SixNine = true
		case s.eatMajorWithNumber(spec):
		case s.eat("alt"):
			spec.AltFlag = true
		case s.eat("sus"):
			if n, ok := s.eatNumber(); ok {
				spec.Sus = append(spec.Sus, n)
			} else {
				spec.Sus = append(spec.Sus, 4)
			}
		case s.eatAddDegree(spec):
		case s.eatDropDegree(spec):
		case s.eatBareNumber(spec):
		case s.eatAlteration(spec):
		default:
			return
		}
		if s.pos == start {
			return
		}
	}
}

// parseBass consumes a trailing "/X" bass override.
func parseBass(s *scanner, spec *model.ChordSpec) {
	if !s.eat("/") {
		return
	}
	c, ok := s.peek()
	if !ok || c < 'A' || c > 'G' {
		return
	}
	s.pos++
	spec.BassLetter = c
	spec.BassSharp = s.eat("#")
	spec.BassFlat = s.eat("b")
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) rest() string {
	return s.text[s.pos:]
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.text) {
		return 0, false
	}
	return s.text[s.pos], true
}

func (s *scanner) eat(prefix string) bool {
	if strings.HasPrefix(s.text[s.pos:], prefix) {
		s.pos += len(prefix)
		return true
	}
	return false
}

func (s *scanner) eatAny(prefixes []string) bool {
	for _, p := range prefixes {
		if s.eat(p) {
			return true
		}
	}
	return false
}

// eatNumber consumes a run of digits.
func (s *scanner) eatNumber() (int, bool) {
	start := s.pos
	n := 0
	for s.pos < len(s.text) && s.text[s.pos] >= '0' && s.text[s.pos] <= '9' {
		n = n*10 + int(s.text[s.pos]-'0')
		s.pos++
	}
	return n, s.pos > start
}

// eatExtension consumes one of the extension numbers a chord symbol
// can carry at the front, longest spellings first.
func (s *scanner) eatExtension() (int, bool) {
	switch {
	case s.eat("13"):
		return 13, true
	case s.eat("11"):
		return 11, true
	case s.eat("9"):
		return 9, true
	case s.eat("7"):
		return 7, true
	case s.eat("6"):
		return 6, true
	case s.eat("5"):
		return 5, true
	}
	return 0, false
}

// eatMajorWithNumber matches a mid-string major synonym immediately
// followed by a number, e.g. the "maj7" in "Cmmaj7".
func (s *scanner) eatMajorWithNumber(spec *model.ChordSpec) bool {
	start := s.pos
	if !s.eatAny(majorSyns) {
		return false
	}
	n, ok := s.eatNumber()
	if !ok {
		s.pos = start
		return false
	}
	spec.MajorAlt = n
	return true
}

func (s *scanner) eatAddDegree(spec *model.ChordSpec) bool {
	start := s.pos
	if !s.eat("add") {
		return false
	}
	n, ok := s.eatNumber()
	if !ok {
		s.pos = start
		return false
	}
	spec.Adds = append(spec.Adds, n)
	return true
}

func (s *scanner) eatDropDegree(spec *model.ChordSpec) bool {
	start := s.pos
	if !s.eat("drop") && !s.eat("no") {
		return false
	}
	n, ok := s.eatNumber()
	if !ok {
		s.pos = start
		return false
	}
	spec.Drops = append(spec.Drops, n)
	return true
}

// eatBareNumber treats a number found mid-string as an added tone.
// The six-nine token is matched earlier, so "69" never lands here.
func (s *scanner) eatBareNumber(spec *model.ChordSpec) bool {
	n, ok := s.eatNumber()
	if !ok {
		return false
	}
	spec.Adds = append(spec.Adds, n)
	return true
}

func (s *scanner) eatAlteration(spec *model.ChordSpec) bool {
	start := s.pos
	var delta int
	switch {
	case s.eat("#"), s.eat("♯"):
		delta = 1
	case s.eat("b"), s.eat("♭"):
		delta = -1
	default:
		return false
	}
	n, ok := s.eatNumber()
	if !ok {
		s.pos = start
		return false
	}
	spec.Alters = append(spec.Alters, model.Alter{Degree: n, Delta: delta})
	return true
}
