// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "\
//	    -X github.com/matzehuels/daygrid/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/daygrid/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/daygrid/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/daygrid
package buildinfo

import "fmt"

// Link-time variables. Unstamped builds report "dev".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the multi-line build summary printed by `daygrid version`.
func String() string {
	return fmt.Sprintf("daygrid %s\ncommit: %s\nbuilt:  %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return String() + "\n"
}

// UserAgent identifies daygrid in outgoing HTTP requests.
func UserAgent() string {
	return "daygrid/" + Version
}
