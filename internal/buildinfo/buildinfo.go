// Package buildinfo exposes version metadata stamped at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Populated via -ldflags "-X github.com/dmitrijs2005/storykeeper/internal/buildinfo.Version=..."
var (
	Version   = "N/A"
	BuildDate = "N/A"
	Commit    = "N/A"
)

// PrintBuildData writes the build metadata to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", BuildDate)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
