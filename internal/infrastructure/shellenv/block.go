package shellenv

import (
	"fmt"
	"strings"

	"github.com/sheldir/provsh/internal/domain"
)

// markerTool is the fixed tool tag embedded in block markers. Markers must
// be literals unlikely to occur in a hand-edited profile.
const markerTool = "provsh"

// Render produces the marked block for one variable assignment in the given
// dialect. The markers embed the variable name, so blocks for different
// variables never collide inside the same profile.
//
// The value is wrapped in double quotes with its literal characters; interior
// double quotes are not escaped (documented limitation).
func Render(variable, value string, dialect domain.ShellDialect) domain.MarkedBlock {
	comment := dialect.CommentPrefix()
	return domain.MarkedBlock{
		Start: fmt.Sprintf("%s %s: %s env start", comment, markerTool, variable),
		End:   fmt.Sprintf("%s %s: %s env end", comment, markerTool, variable),
		Body:  dialect.AssignmentLine(variable, value),
	}
}

// Upsert returns content with the marked block inserted exactly once: an
// existing block (first start marker through the first end marker at or
// after it) is replaced in place, otherwise the block is appended at
// end-of-file. Separation from surrounding content is normalized to exactly
// one blank line. Pure string transformation, no I/O.
//
// Upsert is a fixed point: Upsert(Upsert(c, b), b) == Upsert(c, b) for any
// content and any block sharing the same markers.
func Upsert(content string, block domain.MarkedBlock) string {
	rendered := block.Start + "\n" + block.Body + "\n" + block.End

	if start, end, ok := findBlock(content, block); ok {
		before := strings.TrimRight(content[:start], " \t\n")
		after := strings.TrimLeft(content[end:], " \t\n")
		var sb strings.Builder
		if before != "" {
			sb.WriteString(before)
			sb.WriteString("\n\n")
		}
		sb.WriteString(rendered)
		sb.WriteString("\n")
		if after != "" {
			sb.WriteString("\n")
			sb.WriteString(after)
		}
		return sb.String()
	}

	existing := strings.TrimRight(content, " \t\n")
	if existing == "" {
		return rendered + "\n"
	}
	return existing + "\n\n" + rendered + "\n"
}

// findBlock locates the first well-formed marker pair: a start marker whose
// end marker appears before any further start marker. An orphan start (no
// matching end) is not a block; replacing across it would swallow whatever
// the user wrote after it. Returns the byte range of the pair.
func findBlock(content string, block domain.MarkedBlock) (int, int, bool) {
	offset := 0
	for {
		rel := strings.Index(content[offset:], block.Start)
		if rel < 0 {
			return 0, 0, false
		}
		start := offset + rel
		rest := content[start+len(block.Start):]
		endRel := strings.Index(rest, block.End)
		nextRel := strings.Index(rest, block.Start)
		if endRel >= 0 && (nextRel < 0 || endRel < nextRel) {
			return start, start + len(block.Start) + endRel + len(block.End), true
		}
		offset = start + len(block.Start)
	}
}
