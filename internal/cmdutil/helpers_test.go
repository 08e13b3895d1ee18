package cmdutil

import "github.com/schmitthub/promptgit/internal/iostreams"

func newTestStreams() *iostreams.TestIOStreams {
	return iostreams.NewTestIOStreams()
}
