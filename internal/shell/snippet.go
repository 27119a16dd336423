package shell

import (
	"fmt"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// Sentinel markers delimiting the gitprompt block in profile files. Install
// detects prior runs by their presence and uninstall removes everything
// between them, so the literals must never change.
const (
	BeginMarker = "# >>> gitprompt initialize >>>"
	EndMarker   = "# <<< gitprompt initialize <<<"
)

const bashSnippet = `__gitprompt() {
  gitprompt 2>/dev/null
}
PS1='\w $(__gitprompt)\$ '`

const zshSnippet = `setopt PROMPT_SUBST
PROMPT='%~ $(gitprompt 2>/dev/null)%# '`

const fishSnippet = `function fish_prompt
  printf '%s %s> ' (prompt_pwd) (gitprompt 2>/dev/null)
end`

// Snippet returns the prompt configuration for the given shell, without markers
func Snippet(sh Shell) (string, error) {
	switch sh {
	case Bash:
		return bashSnippet, nil
	case Zsh:
		return zshSnippet, nil
	case Fish:
		return fishSnippet, nil
	default:
		return "", gperrors.NewUnsupportedShellError(string(sh))
	}
}

// Block returns the full marker-delimited block appended to profile files
func Block(sh Shell) (string, error) {
	snippet, err := Snippet(sh)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n%s\n%s", BeginMarker, snippet, EndMarker), nil
}
