package main

import (
	"os"

	"github.com/schmitthub/promptgit/internal/promptgit"
)

func main() {
	os.Exit(promptgit.Main())
}
