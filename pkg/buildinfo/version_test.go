package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)
	Version, Commit = "v1.2.3", "abc1234"

	s := String()
	for _, want := range []string{"daygrid v1.2.3", "commit: abc1234"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
	if !strings.HasSuffix(Template(), "\n") {
		t.Error("Template() should end with a newline")
	}
	if got := UserAgent(); got != "daygrid/v1.2.3" {
		t.Errorf("UserAgent() = %q", got)
	}
}
