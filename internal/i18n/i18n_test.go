package i18n

import "testing"

func TestMatch(t *testing.T) {
	testCases := []struct {
		name  string
		prefs []string
		want  string
	}{
		{name: "no preference", prefs: nil, want: "en"},
		{name: "empty strings", prefs: []string{"", ""}, want: "en"},
		{name: "bare indonesian", prefs: []string{"id"}, want: "id"},
		{name: "regional indonesian", prefs: []string{"id-ID"}, want: "id"},
		{name: "uppercase", prefs: []string{"ID"}, want: "id"},
		{name: "accept language list", prefs: []string{"", "id-ID,id;q=0.9,en;q=0.8"}, want: "id"},
		{name: "first preference wins", prefs: []string{"en", "id"}, want: "en"},
		{name: "unsupported falls back", prefs: []string{"fr-FR"}, want: "en"},
		{name: "garbage falls back", prefs: []string{";;;"}, want: "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Match(tc.prefs...)
			if got != tc.want {
				t.Fatalf("Match(%v) = %q, want %q", tc.prefs, got, tc.want)
			}
		})
	}
}

func TestTFallsBackToEnglish(t *testing.T) {
	if got := T("fr", "empty_prompt"); got != messages["en"]["empty_prompt"] {
		t.Fatalf("T(fr) = %q, want english fallback", got)
	}
}

func TestTFallsBackToKey(t *testing.T) {
	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("T = %q, want key fallback", got)
	}
}

func TestCatalogCoversAllKeysInAllLocales(t *testing.T) {
	for key := range messages["en"] {
		for _, locale := range Supported() {
			if msg := messages[locale][key]; msg == "" {
				t.Fatalf("locale %q missing message for %q", locale, key)
			}
		}
	}
	for _, locale := range Supported() {
		if len(messages[locale]) != len(messages["en"]) {
			t.Fatalf("locale %q has %d messages, want %d", locale, len(messages[locale]), len(messages["en"]))
		}
	}
}
