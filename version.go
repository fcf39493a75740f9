/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release of the record store. Release builds override it with
// -ldflags "-X github.com/suparena/recordstore.Version=<version>".
var Version = "0.1.0"

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Revision  string `json:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"goVersion"`
}

// ReadBuildInfo combines Version with the VCS stamp the Go toolchain embeds.
// Revision is empty for test binaries and builds outside a checkout.
func ReadBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version, GoVersion: runtime.Version()}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String renders the info as "recordstore <version> (<revision>, <go version>)".
func (b BuildInfo) String() string {
	rev := b.Revision
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if rev == "" {
		rev = "devel"
	}
	if b.Modified {
		rev += "-dirty"
	}
	return fmt.Sprintf("recordstore %s (%s, %s)", b.Version, rev, b.GoVersion)
}
