package stylize

import "strings"

const filenameSeedLimit = 48

// Filename derives a download filename from the seed text that produced the
// image. Everything outside ASCII letters and digits is stripped, so the
// result is safe to hand to a browser download attribute on any platform.
func Filename(seed, mime string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(seed) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= filenameSeedLimit {
			break
		}
	}

	name := "inkwash"
	if b.Len() > 0 {
		name += "-" + b.String()
	}
	return name + extensionFor(mime)
}

func extensionFor(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
