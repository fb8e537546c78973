package cli

import "strings"

const maxHistoryLines = 500

// inputHistory recalls submitted lines with Up/Down. It lives only as long
// as the chat session.
type inputHistory struct {
	lines []string
	idx   int
	// draft keeps what was being typed before the first Up.
	draft string
}

func (h *inputHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
	}
	if len(h.lines) > maxHistoryLines {
		h.lines = h.lines[len(h.lines)-maxHistoryLines:]
	}
	h.idx = len(h.lines)
	h.draft = ""
}

// prev steps back and returns the line to show. ok is false at the oldest
// entry or when there is no history.
func (h *inputHistory) prev(current string) (line string, ok bool) {
	if h.idx == 0 {
		return "", false
	}
	if h.idx == len(h.lines) {
		h.draft = current
	}
	h.idx--
	return h.lines[h.idx], true
}

// next steps forward, ending on the saved draft.
func (h *inputHistory) next() (line string, ok bool) {
	if h.idx >= len(h.lines) {
		return "", false
	}
	h.idx++
	if h.idx == len(h.lines) {
		return h.draft, true
	}
	return h.lines[h.idx], true
}
