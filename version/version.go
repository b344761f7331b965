// Package version reports build metadata for the asciify binary.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision embedded by the Go toolchain.
	Revision = revision(debug.ReadBuildInfo)
)

// Info is a snapshot of the build metadata.
type Info struct {
	Version   string
	Revision  string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the metadata of the running binary. An unset version reads
// as "dev".
func Get() Info {
	v := Version
	if v == "" {
		v = "dev"
	}

	return Info{
		Version:   v,
		Revision:  Revision,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary, e.g.
// "asciify dev (abc123, go1.25.0 linux/amd64)".
func (i Info) String() string {
	details := []string{i.Revision, i.GoVersion + " " + i.Platform}
	if i.BuildDate != "" {
		details = append(details, "built "+i.BuildDate)
	}

	return fmt.Sprintf("asciify %s (%s)", i.Version, strings.Join(details, ", "))
}

// WriteTo writes the summary and a trailing newline to w.
func (i Info) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, i.String()+"\n")

	return int64(n), err
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	rev := "unknown"

	info, ok := read()
	if !ok {
		return rev
	}

	modified := false

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
