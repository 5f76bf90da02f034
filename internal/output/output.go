// Package output formats tree events as indented text lines.
package output

import (
	"fmt"
	"strings"

	"github.com/temirov/dirtree/internal/tree"
)

const (
	indentSpacer       = "    "
	directorySuffix    = "/"
	separatorCharacter = "="
	// SeparatorWidth is the number of separator characters framing the tree.
	SeparatorWidth = 40

	headerFormat       = "Project structure (ignoring: %s):"
	ignoreListJoiner   = ", "
	emptyIgnoreListTag = "none"
)

// FormatLine renders a single event. Directories are written as
// <indent><name>/ and files as <indent><name>, where the indent is four spaces
// per level of event depth.
func FormatLine(event tree.Event) string {
	indent := strings.Repeat(indentSpacer, event.Depth)
	if event.Kind == tree.EventDirectory {
		return indent + event.Name + directorySuffix
	}
	return indent + event.Name
}

// HeaderLine announces which directory names are skipped.
func HeaderLine(ignoreNames []string) string {
	if len(ignoreNames) == 0 {
		return fmt.Sprintf(headerFormat, emptyIgnoreListTag)
	}
	return fmt.Sprintf(headerFormat, strings.Join(ignoreNames, ignoreListJoiner))
}

// SeparatorLine returns the line framing the rendered tree.
func SeparatorLine() string {
	return strings.Repeat(separatorCharacter, SeparatorWidth)
}
