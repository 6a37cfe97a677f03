package episodes

import "strings"

// Slugify derives an episode slug from its title: lowercase, every character
// outside [0-9a-z ] dropped, each remaining space turned into a hyphen.
// Runs of spaces are not collapsed.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
