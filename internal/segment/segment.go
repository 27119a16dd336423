// Package segment turns a repository state into the bracketed prompt segment:
//
//	[branch ↓behind ↑ahead +staged ~staged -staged | +dirty ~dirty -dirty]
//
// Branch and frame render cyan, index counts green, worktree counts red.
package segment

import (
	"fmt"
	"strings"

	"gitprompt.dev/gitprompt/internal/status"
)

// BranchText formats the branch portion of the segment
func BranchText(b status.BranchState) string {
	var sb strings.Builder
	sb.WriteString(b.Name)
	if b.Detached {
		sb.WriteString(fmt.Sprintf("(%s)", b.SHA))
	}
	if b.Behind > 0 {
		sb.WriteString(fmt.Sprintf(" ↓%d", b.Behind))
	}
	if b.Ahead > 0 {
		sb.WriteString(fmt.Sprintf(" ↑%d", b.Ahead))
	}
	return sb.String()
}

// IndexText formats the staged counts, empty when nothing is staged
func IndexText(f status.FileState) string {
	return countsText(f.IndexAdd, f.IndexEdit, f.IndexRemove)
}

// WorktreeText formats the unstaged counts, empty when the worktree is clean
func WorktreeText(f status.FileState) string {
	return countsText(f.WorktreeAdd, f.WorktreeEdit, f.WorktreeRemove)
}

// countsText renders " +a ~e -r", omitting zero terms. The leading space is
// part of the format: counts always follow the branch or the separator.
func countsText(add, edit, remove int) string {
	var sb strings.Builder
	if add > 0 {
		sb.WriteString(fmt.Sprintf(" +%d", add))
	}
	if edit > 0 {
		sb.WriteString(fmt.Sprintf(" ~%d", edit))
	}
	if remove > 0 {
		sb.WriteString(fmt.Sprintf(" -%d", remove))
	}
	return sb.String()
}
