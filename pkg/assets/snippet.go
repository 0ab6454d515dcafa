package assets

import (
	"fmt"
	"os"
	"strings"

	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/errors"
	"github.com/JoshuaMichaelHall-Tech/enhanced-terminal-environment/pkg/logging"
)

// Marker comments fencing the managed region in the rc file. The
// region is replaced in place on re-runs, never duplicated.
const (
	snippetBegin = "# >>> ete managed >>>"
	snippetEnd   = "# <<< ete managed <<<"
)

// Snippet returns the rc-file block that sources the installed shell
// functions. The same block works for zsh and bash.
func Snippet(functionsPath string) string {
	return fmt.Sprintf(`%s
[ -f "%s" ] && source "%s"
%s`, snippetBegin, functionsPath, functionsPath, snippetEnd)
}

// AppendSnippet installs the managed block into the rc file at rcPath.
// An existing block is replaced; a missing rc file is created.
func AppendSnippet(rcPath, snippet string) error {
	logger := logging.GetLogger("assets.snippet")

	existing, err := os.ReadFile(rcPath)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", rcPath)
	}

	updated, replaced := spliceSnippet(string(existing), snippet)
	if updated == string(existing) {
		logger.Debug().Str("rc", rcPath).Msg("Snippet already installed")
		return nil
	}

	if err := os.WriteFile(rcPath, []byte(updated), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", rcPath)
	}

	if replaced {
		logger.Info().Str("rc", rcPath).Msg("Replaced managed snippet")
	} else {
		logger.Info().Str("rc", rcPath).Msg("Appended managed snippet")
	}
	return nil
}

// spliceSnippet returns content with the managed region set to
// snippet, reporting whether an existing region was replaced.
func spliceSnippet(content, snippet string) (string, bool) {
	begin := strings.Index(content, snippetBegin)
	end := strings.Index(content, snippetEnd)

	if begin >= 0 && end > begin {
		end += len(snippetEnd)
		return content[:begin] + snippet + content[end:], true
	}

	if content == "" {
		return snippet + "\n", false
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + snippet + "\n", false
}
