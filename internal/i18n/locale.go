package i18n

import "golang.org/x/text/language"

var (
	supported = []language.Tag{language.English, language.Indonesian}
	matcher   = language.NewMatcher(supported)
	codes     = []string{"en", "id"}
)

// Match picks the best supported locale from the given preference strings.
// Each string may be a bare code or a full Accept-Language header; empty and
// unparseable entries are skipped. With no usable preference it returns "en".
func Match(prefs ...string) string {
	_, idx := language.MatchStrings(matcher, prefs...)
	return codes[idx]
}

// Supported lists the locale codes the catalog carries, in matcher order.
func Supported() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
