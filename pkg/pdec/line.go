package pdec

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/potbin/pkg/errors"
	"github.com/arthur-debert/potbin/pkg/types"
)

// Kind classifies a declaration file line.
type Kind int

const (
	KindBlank Kind = iota
	KindComment
	KindDeclaration
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindDeclaration:
		return "declaration"
	case KindPair:
		return "pair"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Syntax holds the tokens of the line grammar.
type Syntax struct {
	LinkDelimiter     string
	CopyDelimiter     string
	Comment           string
	DeclarationPrefix string
	// DefaultLocal replaces an omitted local side.
	DefaultLocal string
}

// DefaultSyntax returns the standard grammar: "|" copies, ">" links, "#"
// comments, "$" declarations and "~" as the default local side.
func DefaultSyntax() Syntax {
	return Syntax{
		LinkDelimiter:     ">",
		CopyDelimiter:     "|",
		Comment:           "#",
		DeclarationPrefix: "$",
		DefaultLocal:      "~",
	}
}

// Line is one classified line. Cloud, Local and Mode are set for pairs only.
type Line struct {
	Number int
	Text   string
	Kind   Kind
	Cloud  string
	Local  string
	Mode   types.Mode
}

// ParseLine classifies raw using DefaultSyntax.
func ParseLine(raw string) (Line, error) {
	return DefaultSyntax().ParseLine(raw)
}

// ParseLine classifies raw. Surrounding whitespace is ignored. A pair line
// holding more than one delimiter, or nothing before it, is ErrLineInvalid.
func (s Syntax) ParseLine(raw string) (Line, error) {
	text := strings.TrimSpace(raw)
	line := Line{Text: text}

	switch {
	case text == "":
		line.Kind = KindBlank
		return line, nil
	case strings.HasPrefix(text, s.Comment):
		line.Kind = KindComment
		return line, nil
	case s.isDeclaration(text):
		line.Kind = KindDeclaration
		return line, nil
	}

	line.Kind = KindPair
	delimiter := s.LinkDelimiter
	line.Mode = types.ModeLink
	if strings.Contains(text, s.CopyDelimiter) {
		delimiter = s.CopyDelimiter
		line.Mode = types.ModeCopy
	}

	parts := strings.Split(text, delimiter)
	if len(parts) > 2 {
		return line, errors.Newf(errors.ErrLineInvalid, "invalid line: %s", text).
			WithDetail("line", text)
	}

	line.Cloud = strings.TrimSpace(parts[0])
	if line.Cloud == "" {
		return line, errors.Newf(errors.ErrLineInvalid, "missing cloud path: %s", text).
			WithDetail("line", text)
	}
	if len(parts) == 2 {
		line.Local = strings.TrimSpace(parts[1])
	}
	if line.Local == "" {
		line.Local = s.DefaultLocal
	}
	return line, nil
}

// isDeclaration reports whether text is a "$name = expression" line. A
// line starting with an alias whose first delimiter comes before any "="
// is a pair whose cloud side uses the alias.
func (s Syntax) isDeclaration(text string) bool {
	if !strings.HasPrefix(text, s.DeclarationPrefix) {
		return false
	}
	delim := firstIndex(text, s.CopyDelimiter, s.LinkDelimiter)
	if delim < 0 {
		return true
	}
	eq := strings.Index(text, "=")
	return eq >= 0 && eq < delim
}

// firstIndex returns the lowest index of any non-empty sep in text, or -1.
func firstIndex(text string, seps ...string) int {
	first := -1
	for _, sep := range seps {
		if sep == "" {
			continue
		}
		if i := strings.Index(text, sep); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}
