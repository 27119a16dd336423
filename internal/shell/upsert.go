package shell

import "strings"

// HasBlock reports whether the profile contents already carry the gitprompt
// block, detected by the begin marker alone so partially edited blocks still
// count as configured.
func HasBlock(contents string) bool {
	return strings.Contains(contents, BeginMarker)
}

// UpsertBlock returns the profile contents with the marker-delimited block
// appended, or the contents unchanged when the begin marker is already
// present. The returned bool reports whether the contents changed.
func UpsertBlock(contents string, block string) (string, bool) {
	if HasBlock(contents) {
		return contents, false
	}

	var sb strings.Builder
	sb.WriteString(contents)
	if contents != "" {
		if !strings.HasSuffix(contents, "\n") {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(block)
	sb.WriteString("\n")
	return sb.String(), true
}

// ExtractBlock returns the marker-delimited block (markers included) from
// the profile contents. The bool is false when no complete block exists.
func ExtractBlock(contents string) (string, bool) {
	begin := strings.Index(contents, BeginMarker)
	if begin == -1 {
		return "", false
	}
	rest := contents[begin:]
	end := strings.Index(rest, EndMarker)
	if end == -1 {
		return "", false
	}
	return rest[:end+len(EndMarker)], true
}

// RemoveBlock returns the profile contents with the marker-delimited block
// (markers included) removed. The returned bool reports whether a block was
// found. A begin marker without an end marker removes through end of file.
func RemoveBlock(contents string) (string, bool) {
	begin := strings.Index(contents, BeginMarker)
	if begin == -1 {
		return contents, false
	}

	// Swallow the blank line install put before the block.
	prefix := contents[:begin]
	prefix = strings.TrimRight(prefix, "\n")
	if prefix != "" {
		prefix += "\n"
	}

	rest := contents[begin:]
	end := strings.Index(rest, EndMarker)
	if end == -1 {
		return prefix, true
	}

	suffix := rest[end+len(EndMarker):]
	suffix = strings.TrimLeft(suffix, "\n")
	if suffix != "" && prefix != "" {
		prefix += "\n"
	}
	return prefix + suffix, true
}
