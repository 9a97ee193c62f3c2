package directive

import (
	"maps"
	"strings"

	"github.com/AjeshGeorgeDev/MailCrafter-sub002/pkg/placeholder"
)

const (
	eachOpen  = "{{#each"
	eachClose = "{{/each}}"
	ifOpen    = "{{#if"
	ifClose   = "{{/if}}"
	elseToken = "{{else}}"
)

// Process runs loops, then conditionals, then variable replacement over
// text against the data context. The replace options are forwarded to the
// variable pass of every nesting level.
func Process(text string, data map[string]any, opts ...placeholder.ReplaceOption) string {
	out := processLoops(text, data, opts)
	out = processConditionals(out, data, opts)
	return placeholder.ReplaceVariables(out, data, opts...)
}

// processLoops expands every {{#each path}}...{{/each}} block. A path that
// does not resolve to a non-empty array removes the whole block; otherwise
// the body is fully processed once per element and the iteration outputs
// are concatenated with no separator.
func processLoops(text string, data map[string]any, opts []placeholder.ReplaceOption) string {
	searchFrom := 0
	for {
		rel := strings.Index(text[searchFrom:], eachOpen)
		if rel < 0 {
			return text
		}
		start := searchFrom + rel

		headerEnd := strings.Index(text[start:], "}}")
		if headerEnd < 0 {
			return text
		}
		headerEnd += start

		path := strings.TrimSpace(text[start+len(eachOpen) : headerEnd])
		bodyStart := headerEnd + 2

		bodyEnd, blockEnd, ok := findClosing(text, bodyStart, eachOpen, eachClose)
		if !ok || path == "" {
			// Malformed block stays literal; keep scanning past the opener.
			searchFrom = start + len(eachOpen)
			continue
		}

		replacement := expandLoop(path, text[bodyStart:bodyEnd], data, opts)
		text = text[:start] + replacement + text[blockEnd:]
		searchFrom = start + len(replacement)
	}
}

func expandLoop(path, body string, data map[string]any, opts []placeholder.ReplaceOption) string {
	value, ok := placeholder.ResolvePath(data, path)
	if !ok {
		return ""
	}
	items, ok := placeholder.ToSlice(value)
	if !ok || len(items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, elem := range items {
		ctx := make(map[string]any, len(data)+6)
		maps.Copy(ctx, data)
		if m, ok := elem.(map[string]any); ok {
			maps.Copy(ctx, m)
		}
		ctx["."] = elem
		ctx["this"] = elem
		ctx["@index"] = i
		ctx["@first"] = i == 0
		ctx["@last"] = i == len(items)-1
		ctx["@length"] = len(items)

		sb.WriteString(Process(body, ctx, opts...))
	}
	return sb.String()
}

// processConditionals resolves every {{#if cond}}...{{else}}...{{/if}}
// block, processing only the chosen branch with the unmodified data context.
func processConditionals(text string, data map[string]any, opts []placeholder.ReplaceOption) string {
	searchFrom := 0
	for {
		rel := strings.Index(text[searchFrom:], ifOpen)
		if rel < 0 {
			return text
		}
		start := searchFrom + rel

		headerEnd := strings.Index(text[start:], "}}")
		if headerEnd < 0 {
			return text
		}
		headerEnd += start

		cond := strings.TrimSpace(text[start+len(ifOpen) : headerEnd])
		bodyStart := headerEnd + 2

		bodyEnd, blockEnd, ok := findClosing(text, bodyStart, ifOpen, ifClose)
		if !ok || cond == "" {
			searchFrom = start + len(ifOpen)
			continue
		}

		body := text[bodyStart:bodyEnd]
		thenBranch, elseBranch := splitElse(body)

		branch := elseBranch
		if EvaluateCondition(cond, data) {
			branch = thenBranch
		}

		replacement := Process(branch, data, opts...)
		text = text[:start] + replacement + text[blockEnd:]
		searchFrom = start + len(replacement)
	}
}

// findClosing locates the close token matching the block whose body starts
// at from, accounting for nested blocks of the same kind. It returns the
// body end offset and the offset just past the close token.
func findClosing(text string, from int, openTok, closeTok string) (bodyEnd, blockEnd int, ok bool) {
	depth := 1
	i := from
	for {
		nextOpen := strings.Index(text[i:], openTok)
		nextClose := strings.Index(text[i:], closeTok)
		if nextClose < 0 {
			return 0, 0, false
		}

		if nextOpen >= 0 && nextOpen < nextClose {
			depth++
			i += nextOpen + len(openTok)
			continue
		}

		depth--
		pos := i + nextClose
		if depth == 0 {
			return pos, pos + len(closeTok), true
		}
		i = pos + len(closeTok)
	}
}

// splitElse splits a conditional body at the {{else}} belonging to this
// block, skipping over tokens of nested conditionals. Without an else the
// second branch is empty.
func splitElse(body string) (thenBranch, elseBranch string) {
	depth := 0
	i := 0
	for i < len(body) {
		nextIf := strings.Index(body[i:], ifOpen)
		nextEnd := strings.Index(body[i:], ifClose)
		nextElse := strings.Index(body[i:], elseToken)

		if nextElse < 0 {
			return body, ""
		}

		// Resolve whichever token comes first.
		pos := nextElse
		kind := elseToken
		if nextIf >= 0 && nextIf < pos {
			pos = nextIf
			kind = ifOpen
		}
		if nextEnd >= 0 && nextEnd < pos {
			pos = nextEnd
			kind = ifClose
		}

		switch kind {
		case ifOpen:
			depth++
			i += pos + len(ifOpen)
		case ifClose:
			depth--
			i += pos + len(ifClose)
		default:
			if depth == 0 {
				at := i + pos
				return body[:at], body[at+len(elseToken):]
			}
			i += pos + len(elseToken)
		}
	}
	return body, ""
}
