package compiler

import "strings"

// escapeClassName CSS-escapes the characters a raw utility token can
// contain that are not legal bare in a class selector (":", "/", ".",
// "[", "]", "(", ")", "%", "#", "@", "!", ","), per the Tailwind-style
// escaping the teacher's `views/theme` templates assume when rendering class
// names. Each is prefixed with a backslash; every other character is copied
// as written, so a "\_" in the token reaches the selector unchanged.
func escapeClassName(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + 8)
	for _, r := range raw {
		switch r {
		case ':', '/', '.', '[', ']', '(', ')', '%', '#', '@', '!', ',':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
