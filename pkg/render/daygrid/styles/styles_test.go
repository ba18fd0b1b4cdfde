package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/daygrid/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", NameSimple, false},
		{"simple", NameSimple, false},
		{"mono", NameMono, false},
		{"handdrawn", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Lookup(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidStyle) {
					t.Errorf("error code = %v", errors.GetCode(err))
				}
				return
			}
			if s.Name() != tt.want {
				t.Errorf("Lookup(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
			}
		})
	}

	if got := strings.Join(Names(), ","); got != "mono,simple" {
		t.Errorf("Names() = %s", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width float64
		want  string
	}{
		{"fits", "Standup", 100, "Standup"},
		{"truncated", "Quarterly planning review", 56, "Quarterl.."},
		{"too narrow", "Lunch", 10, ""},
		{"unicode", "Réunion d'équipe", 45, "Réunio.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 10px font, 5.5px per char
			if got := Truncate(tt.in, tt.width, 10); got != tt.want {
				t.Errorf("Truncate(%q, %v) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestRenderEventEscapesText(t *testing.T) {
	for _, s := range []Style{Simple{}, Mono{}} {
		t.Run(s.Name(), func(t *testing.T) {
			var buf bytes.Buffer
			s.RenderEvent(&buf, Event{
				ID: "0", Title: "R&D <sync>", Time: "09:00-10:00",
				X: 10, Y: 10, W: 200, H: 60,
			})
			out := buf.String()
			if !strings.Contains(out, "R&amp;D &lt;sync&gt;") {
				t.Errorf("title not escaped:\n%s", out)
			}
			if !strings.Contains(out, "09:00-10:00") {
				t.Errorf("tall event should show its time:\n%s", out)
			}
		})
	}
}

func TestRenderEventRTLAnchorsEnd(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderEvent(&buf, Event{ID: "1", Title: "Meeting", X: 10, Y: 0, W: 100, H: 40, RTL: true})
	if !strings.Contains(buf.String(), `text-anchor="end"`) {
		t.Errorf("RTL event text should anchor at the end:\n%s", buf.String())
	}
}

func TestRenderDividerHalf(t *testing.T) {
	var buf bytes.Buffer
	Mono{}.RenderDivider(&buf, Divider{X: 5, Y: 10, W: 190, H: 1, Half: true})
	if !strings.Contains(buf.String(), "stroke-dasharray") {
		t.Errorf("mono half-hour divider should be dashed:\n%s", buf.String())
	}
}

func TestPaletteEventFill(t *testing.T) {
	p := Simple{}.Palette()
	if p.EventFill(0) != p.EventFill(len(p.EventFills)) {
		t.Error("EventFill should cycle")
	}
	if (Palette{}).EventFill(3) == "" {
		t.Error("empty palette should still return a color")
	}
}
