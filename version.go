// Package scribe holds build metadata for the scribe editor.
package scribe

import (
	_ "embed"
	"regexp"
	"strings"
)

// Name is the program name printed by -version.
const Name = "scribe"

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the embedded SemVer string without a leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner returns the one-line form printed by `scribe -version`.
func Banner() string {
	return Name + " v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
