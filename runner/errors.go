// Package runner supervises the external collaborator processes (extractor, transcoder, player).
package runner

import (
	"fmt"
	"runtime"

	"github.com/loutube-cli/loutube/constant"
)

// ExternalToolError reports a child process that exited with a non-zero status.
// The captured output tail is retained for diagnostics; the runner never retries.
type ExternalToolError struct {
	Name     string
	ExitCode int
	Tail     string
}

func (e *ExternalToolError) Error() string {
	if e.Tail == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with status %d:\n%s", e.Name, e.ExitCode, e.Tail)
}

// MissingDependencyError reports a required external binary that could not be
// resolved on the execution path. Hint carries a platform-appropriate install command.
type MissingDependencyError struct {
	Binary string
	Hint   string
}

func (e *MissingDependencyError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("required dependency %q was not found in PATH", e.Binary)
	}
	return fmt.Sprintf("required dependency %q was not found in PATH (try: %s)", e.Binary, e.Hint)
}

// installHints maps known collaborator binaries to per-platform install commands.
var installHints = map[string]map[string]string{
	"yt-dlp": {
		constant.Linux:   "pip install yt-dlp",
		constant.Darwin:  "brew install yt-dlp",
		constant.Windows: "scoop install yt-dlp",
	},
	"ffmpeg": {
		constant.Linux:   "sudo apt install ffmpeg",
		constant.Darwin:  "brew install ffmpeg",
		constant.Windows: "scoop install ffmpeg",
	},
	"vlc": {
		constant.Linux:   "sudo apt install vlc",
		constant.Darwin:  "brew install --cask vlc",
		constant.Windows: "scoop install vlc",
	},
}

// InstallHint returns the suggested install command for a known binary on the
// current platform, or an empty string when none is registered.
func InstallHint(binary string) string {
	hints, ok := installHints[binary]
	if !ok {
		return ""
	}
	return hints[runtime.GOOS]
}
