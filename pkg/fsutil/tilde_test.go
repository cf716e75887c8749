package fsutil

import (
	"path/filepath"
	"testing"

	"src.nutsh.dev/pkg/testutil"
)

func TestTildeAbbr(t *testing.T) {
	home := testutil.TempHome(t)

	abbrTests := []struct {
		path, want string
	}{
		{home, "~"},
		{filepath.Join(home, "sub"), filepath.Join("~", "sub")},
		{"/other", "/other"},
	}
	for _, test := range abbrTests {
		if got := TildeAbbr(test.path); got != test.want {
			t.Errorf("TildeAbbr(%q) -> %q, want %q", test.path, got, test.want)
		}
	}
}
