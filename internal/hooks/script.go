package hooks

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jmeyers/husk/internal/config"
)

const shebang = "#!/bin/sh"

// markerPrefix is the greppable ownership token embedded in every
// generated script, immediately followed by the version string.
const markerPrefix = "set by husk v"

// Script renders the hook file content for one event. The marker line
// is always the third line of the file; set -e aborts the Git
// operation on the first failing command.
func Script(event config.Event, commands []string, version string) string {
	var b strings.Builder
	b.WriteString(shebang + "\n")
	b.WriteString("#\n")
	fmt.Fprintf(&b, "# This %s hook was %s%s: https://github.com/jmeyers/husk\n", event, markerPrefix, version)
	b.WriteString("# It is managed by husk and is refreshed whenever the husk version changes.\n")
	b.WriteString("\n")
	b.WriteString("set -e\n")
	b.WriteString("\n")
	for _, cmd := range commands {
		b.WriteString(cmd + "\n")
	}
	return b.String()
}

// RenderUser stamps a user-authored script with the ownership marker
// so later installs can recognize and refresh it. The marker lands on
// the third line, same as generated scripts; a script that opens with
// a shebang keeps it on the first line.
func RenderUser(content, version string) string {
	marker := fmt.Sprintf("# This hook was %s%s: https://github.com/jmeyers/husk", markerPrefix, version)

	var b strings.Builder
	first, rest, _ := strings.Cut(content, "\n")
	if strings.HasPrefix(first, "#!") {
		b.WriteString(first + "\n#\n" + marker + "\n#\n")
		b.WriteString(rest)
	} else {
		b.WriteString("#\n#\n" + marker + "\n")
		b.WriteString(content)
	}
	return b.String()
}

// Owned reports whether content was generated by any version of husk.
func Owned(content string) bool {
	return strings.Contains(content, markerPrefix)
}

// Version extracts the stamped version from generated content, or ""
// when no marker is present.
func Version(content string) string {
	idx := strings.Index(content, markerPrefix)
	if idx == -1 {
		return ""
	}
	rest := content[idx+len(markerPrefix):]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if end == -1 {
		return rest
	}
	return rest[:end]
}
