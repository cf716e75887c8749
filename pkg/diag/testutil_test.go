package diag

import (
	"testing"

	"src.nutsh.dev/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, begin, end string) {
	testutil.Set(t, &culpritLineBegin, begin)
	testutil.Set(t, &culpritLineEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}
