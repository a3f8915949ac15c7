// Package update checks GitHub for newer loom releases.
package update

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const repo = "loomkit/loom"

// Release describes the latest published release.
type Release struct {
	Version string // latest version (no leading "v")
	URL     string // release page
}

// NewerThan reports whether the release is newer than the given version.
func (r *Release) NewerThan(current string) bool {
	if r == nil {
		return false
	}
	return compareVersions(r.Version, strings.TrimPrefix(current, "v")) > 0
}

// Latest queries the GitHub API for the newest release. It returns nil on
// any failure (network, status, bad JSON) so callers can ignore the check.
func Latest() *Release {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var body struct {
		TagName string `json:"tag_name"`
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil
	}

	return &Release{
		Version: strings.TrimPrefix(body.TagName, "v"),
		URL:     body.HTMLURL,
	}
}

// compareVersions compares two semver-ish strings (major.minor.patch).
// Returns >0 if a > b, <0 if a < b, 0 if equal.
func compareVersions(a, b string) int {
	ap := parseVersion(a)
	bp := parseVersion(b)
	for i := 0; i < 3; i++ {
		if ap[i] != bp[i] {
			return ap[i] - bp[i]
		}
	}
	return 0
}

// parseVersion splits "1.2.3" into [1, 2, 3]. Missing parts default to 0.
// A pre-release or build suffix ("1.2.3-rc1", "1.2.3+meta") is dropped, so
// a pre-release ranks the same as its base version.
func parseVersion(v string) [3]int {
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	var parts [3]int
	for i, s := range strings.SplitN(v, ".", 3) {
		n, _ := strconv.Atoi(s)
		parts[i] = n
	}
	return parts
}
