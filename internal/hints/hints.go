// Package hints turns common recipepdf failures into short suggestions.
// Every hint renders as "\n  hint: <text>" so it can follow an error
// message on the same report.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/priscilaarruda/sorobo-chef-agent/internal/fileutil"
)

// IsInContainer reports whether the process runs in a Docker-like
// container. Swappable in tests.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciVars are set by the CI providers we know about.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

// nativeBackend is always offered when Chrome is the problem.
const nativeBackend = "or use --backend fpdf, which needs no browser"

func inCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests rod environment variables that are not yet
// set, then the browser-free backend.
func ForBrowserConnect() string {
	var parts []string

	sandboxed := os.Getenv("ROD_NO_SANDBOX") != "1"
	if sandboxed && (inCI() || IsInContainer()) {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	return line(append(parts, nativeBackend)...)
}

// ForTimeout suggests a longer page load timeout.
func ForTimeout() string {
	return line("for large documents, use --timeout flag")
}

// ForConfigNotFound points at --config and, when one of the searched paths
// lives in a "sorobo" config directory, offers to create it there.
func ForConfigNotFound(searched []string) string {
	text := "use --config /path/to/file.yaml"
	if p, ok := userConfigCandidate(searched); ok {
		text += " or create " + p
	}
	return line(text)
}

func userConfigCandidate(searched []string) (string, bool) {
	for _, p := range searched {
		if filepath.Base(filepath.Dir(p)) == "sorobo" {
			return p, true
		}
	}
	return "", false
}

func ForOutputDirectory() string {
	return line("check parent directory exists and is writable, or set --output-dir")
}

// ForUnknownBackend lists the accepted backend names, or nothing when
// there are none to list.
func ForUnknownBackend(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return line("available: " + strings.Join(available, ", "))
}

// line joins parts with "; " under a single hint prefix.
func line(parts ...string) string {
	if len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		return ""
	}
	return "\n  hint: " + strings.Join(parts, "; ")
}
