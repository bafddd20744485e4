package resolver

import (
	"strings"
)

// Marker starts every placeholder segment.
const Marker = "$"

// Reserved placeholder spellings.
const (
	HomeToken     = "$userhome"
	PlatformToken = "$sysplatform"
	AppFolderCall = "appfolder"
	IniCall       = "iniparser"
)

// Kind identifies a syntactic placeholder form.
type Kind int

const (
	KindAlias Kind = iota
	KindHome
	KindAppFolder
	KindIni
	KindPlatform
)

func (k Kind) String() string {
	switch k {
	case KindAlias:
		return "alias"
	case KindHome:
		return "home"
	case KindAppFolder:
		return "appfolder"
	case KindIni:
		return "iniparser"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Placeholder is a parsed placeholder segment.
type Placeholder struct {
	Kind Kind
	Raw  string
	Args []string
}

// IsPlaceholder reports whether seg uses placeholder syntax.
func IsPlaceholder(seg string) bool {
	return strings.HasPrefix(seg, Marker)
}

// ParsePlaceholder recognises the reserved placeholder forms. Aliases are
// not syntactic and are never returned here; they are looked up in the
// declaration cache before this is consulted. Argument counts are not
// validated.
func ParsePlaceholder(seg string) (Placeholder, bool) {
	if !IsPlaceholder(seg) {
		return Placeholder{}, false
	}

	switch seg {
	case HomeToken:
		return Placeholder{Kind: KindHome, Raw: seg}, true
	case PlatformToken:
		return Placeholder{Kind: KindPlatform, Raw: seg}, true
	}

	name, args, ok := parseCall(seg)
	if !ok {
		return Placeholder{}, false
	}
	switch name {
	case AppFolderCall:
		return Placeholder{Kind: KindAppFolder, Raw: seg, Args: args}, true
	case IniCall:
		return Placeholder{Kind: KindIni, Raw: seg, Args: args}, true
	}
	return Placeholder{}, false
}

// parseCall splits "$name(a, 'b', "c")" into its name and unquoted
// arguments. An empty argument list yields no arguments.
func parseCall(seg string) (string, []string, bool) {
	body := strings.TrimPrefix(seg, Marker)
	open := strings.IndexByte(body, '(')
	if open <= 0 || !strings.HasSuffix(body, ")") {
		return "", nil, false
	}

	name := body[:open]
	argstr := strings.TrimSpace(body[open+1 : len(body)-1])
	if argstr == "" {
		return name, nil, true
	}

	parts := strings.Split(argstr, ",")
	args := make([]string, 0, len(parts))
	for _, part := range parts {
		args = append(args, unquote(strings.TrimSpace(part)))
	}
	return name, args, true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}
