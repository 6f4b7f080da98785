package versioning

import (
	"fmt"
	"regexp"
	"runtime"
	"strconv"
)

// APIVersion is a semantic version for the JSON API contract.
type APIVersion struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v APIVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1 if v < other, 0 if equal, 1 if v > other.
func (v APIVersion) Compare(other APIVersion) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// IsCompatible reports whether a client built against target can talk to
// this version: same major, and this version at least as new.
func (v APIVersion) IsCompatible(target APIVersion) bool {
	return v.Major == target.Major && v.Compare(target) >= 0
}

// Current is the API version this server implements.
var Current = APIVersion{Major: 1, Minor: 0, Patch: 0}

var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// ParseVersion parses a "major.minor.patch" string.
func ParseVersion(s string) (APIVersion, error) {
	matches := versionRe.FindStringSubmatch(s)
	if matches == nil {
		return APIVersion{}, fmt.Errorf("invalid version format: %s", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch, _ := strconv.Atoi(matches[3])
	return APIVersion{Major: major, Minor: minor, Patch: patch}, nil
}

// Info describes the running build.
type Info struct {
	API       APIVersion `json:"api_version"`
	Build     string     `json:"build_version"`
	Commit    string     `json:"git_commit,omitempty"`
	BuildTime string     `json:"build_time,omitempty"`
	GoVersion string     `json:"go_version"`
}

// NewInfo assembles version information from build-time values.
func NewInfo(build, commit, buildTime string) Info {
	return Info{
		API:       Current,
		Build:     build,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}
