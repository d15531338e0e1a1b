package youtube

import (
	"regexp"
	"strings"
)

// Video reference normalization. Accepts a bare 11-character ID or any of the
// common URL shapes (watch?v=, youtu.be/, /embed/, /shorts/) and reduces it to
// the canonical ID. Purely syntactic — nothing here confirms the video exists.

var (
	bareIDRe  = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	watchIDRe = regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})(?:[&#]|$)`)
	pathIDRe  = regexp.MustCompile(`(?:youtu\.be/|youtube\.com/embed/|youtube\.com/shorts/)([A-Za-z0-9_-]{11})(?:[?&#/]|$)`)
)

// ExtractVideoID extracts the canonical 11-character video ID from a URL or
// bare ID string. Trailing query parameters and fragments are ignored.
func ExtractVideoID(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if bareIDRe.MatchString(s) {
		return s, nil
	}
	if m := watchIDRe.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	if m := pathIDRe.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", &InvalidReferenceError{Input: raw}
}
