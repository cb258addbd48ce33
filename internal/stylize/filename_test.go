package stylize

import (
	"strings"
	"testing"
)

func TestFilename(t *testing.T) {
	testCases := []struct {
		name string
		seed string
		mime string
		want string
	}{
		{
			name: "strips punctuation and spaces",
			seed: "A cozy cabin, at dusk!",
			mime: "image/png",
			want: "inkwash-acozycabinatdusk.png",
		},
		{
			name: "jpeg extension",
			seed: "garden",
			mime: "image/jpeg",
			want: "inkwash-garden.jpg",
		},
		{
			name: "webp extension",
			seed: "garden",
			mime: "image/webp",
			want: "inkwash-garden.webp",
		},
		{
			name: "unknown mime falls back to png",
			seed: "garden",
			mime: "application/octet-stream",
			want: "inkwash-garden.png",
		},
		{
			name: "empty seed",
			seed: "",
			mime: "image/png",
			want: "inkwash.png",
		},
		{
			name: "seed with no alphanumerics",
			seed: "!!! ---",
			mime: "image/png",
			want: "inkwash.png",
		},
		{
			name: "keeps digits",
			seed: "route 66 diner",
			mime: "image/png",
			want: "inkwash-route66diner.png",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filename(tc.seed, tc.mime)
			if got != tc.want {
				t.Fatalf("Filename(%q, %q) = %q, want %q", tc.seed, tc.mime, got, tc.want)
			}
		})
	}
}

func TestFilenameTruncatesLongSeeds(t *testing.T) {
	seed := strings.Repeat("abcdefghij", 20)
	got := Filename(seed, "image/png")

	want := "inkwash-" + seed[:filenameSeedLimit] + ".png"
	if got != want {
		t.Fatalf("Filename length mismatch: got %q (len %d), want %q", got, len(got), want)
	}
}
