// Package textsync holds module-wide metadata. The widget core lives in
// editor, the native input boundary in keyboard.
package textsync

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre, Build          string
}

// ParseVersion parses v without a leading "v".
func ParseVersion(v string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, fmt.Errorf("not a semver version: %q", v)
	}
	var s SemVer
	for i, dst := range []*int{&s.Major, &s.Minor, &s.Patch} {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return SemVer{}, fmt.Errorf("version %q: %w", v, err)
		}
		*dst = n
	}
	s.Pre, s.Build = m[4], m[5]
	return s, nil
}

func (s SemVer) String() string {
	out := fmt.Sprintf("%d.%d.%d", s.Major, s.Minor, s.Patch)
	if s.Pre != "" {
		out += "-" + s.Pre
	}
	if s.Build != "" {
		out += "+" + s.Build
	}
	return out
}

// Version returns the module version without the "v" prefix.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag for Version.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	_, err := ParseVersion(v)
	return err == nil
}
