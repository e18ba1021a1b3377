// Package buildinfo reports the running binary's version, commit, and
// build date, adapted from the teacher's version package: ldflags can
// inject exact values at link time, falling back to runtime/debug's
// embedded VCS info when they weren't set.
package buildinfo

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"
)

var (
	// Version, CommitHash, and BuildDate are set via -ldflags at link
	// time; debug.ReadBuildInfo is used when they're left at defaults.
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Info is the resolved build metadata for one process.
type Info struct {
	Version    string
	CommitHash string
	BuildDate  string
}

// Current resolves build metadata, filling in from the module's
// embedded VCS info wherever ldflags left a field at its default.
func Current() Info {
	version, commit, date := Version, CommitHash, BuildDate

	if version == "dev" || commit == "unknown" || date == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
				version = strings.TrimPrefix(bi.Main.Version, "v")
			}
			for _, setting := range bi.Settings {
				switch setting.Key {
				case "vcs.revision":
					if commit == "unknown" && len(setting.Value) >= 7 {
						commit = setting.Value[:7]
					}
				case "vcs.time":
					if date == "unknown" {
						if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
							date = t.Format("2006-01-02 15:04:05")
						}
					}
				}
			}
		}
	}
	if date == "unknown" {
		if exe, err := os.Executable(); err == nil {
			if st, err := os.Stat(exe); err == nil {
				date = st.ModTime().Format("2006-01-02 15:04:05")
			}
		}
	}
	return Info{Version: version, CommitHash: commit, BuildDate: date}
}

// String renders build metadata as a single line for --version and
// --debug-console.
func (i Info) String() string {
	return fmt.Sprintf("%s (%s, built %s)", i.Version, i.CommitHash, i.BuildDate)
}
