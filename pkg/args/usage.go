package args

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// classFlag describes a single-letter flag that enables a character class.
type classFlag struct {
	letter rune
	class  string
	note   string
}

var classFlags = []classFlag{
	{letter: 'u', class: "uppercase"},
	{letter: 'l', class: "lowercase"},
	{letter: 'n', class: "numeric"},
	{letter: 's', class: "special"},
	{letter: 'b', class: "basic special", note: " Overrides -s."},
}

// Usage builds the help text shown for -h and --help.
//
// Args:
// version: string - Application version reported in the header.
//
// Returns:
// string - Multi-line help text.
func Usage(version string) string {
	title := cases.Title(language.English)

	var sb strings.Builder

	fmt.Fprintf(&sb, "Usage of pw version (%s):\n\n", version)
	fmt.Fprintf(&sb, "pw [options] [length]\n\n")
	fmt.Fprintf(&sb, "Options:\n")

	for _, f := range classFlags {
		fmt.Fprintf(&sb, "    -%c          Include %s characters.%s\n", f.letter, title.String(f.class), f.note)
	}
	fmt.Fprintf(&sb, "    -h, --help  Display help-text\n\n")

	fmt.Fprintf(&sb, "Notes:\n\n")
	fmt.Fprintf(&sb, "    Default is `-luns 32`.\n")
	fmt.Fprintf(&sb, "    `-luns 1` implies a password with length 4.\n")
	fmt.Fprintf(&sb, "    Flags may be combined, e.g. `-ul`. The last length given wins.\n\n")

	fmt.Fprintf(&sb, "Examples:\n\n")
	for _, example := range []string{"pw", "pw -u -l 18", "pw -s 25", "pw -ul", "pw -bu"} {
		fmt.Fprintf(&sb, "    %s\n", example)
	}

	return sb.String()
}
