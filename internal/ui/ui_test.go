package ui

import (
	"strings"
	"testing"

	"github.com/toolcrib/cellmon/internal/cell"
	"github.com/toolcrib/cellmon/internal/feed"
)

func TestDoorAndCycleLabels(t *testing.T) {
	tests := []struct {
		door  cell.DoorState
		cycle cell.CycleState
		wantD string
		wantC string
	}{
		{cell.DoorOpen, cell.CycleTaken, "OPEN", "taken"},
		{cell.DoorClosed, cell.CycleReturned, "CLOSED", "returned"},
		{cell.DoorUnknown, cell.CycleUnknown, "— ? —", "no data"},
	}
	for _, tt := range tests {
		if got := doorLabel(tt.door); got != tt.wantD {
			t.Errorf("doorLabel(%q) = %q, want %q", tt.door, got, tt.wantD)
		}
		if got := cycleLabel(tt.cycle); got != tt.wantC {
			t.Errorf("cycleLabel(%q) = %q, want %q", tt.cycle, got, tt.wantC)
		}
	}
}

func TestChannelGlyph(t *testing.T) {
	if channelGlyph(feed.LifecycleActive) == channelGlyph(feed.LifecycleStopped) {
		t.Fatal("active and stopped channels render the same glyph")
	}
	if channelGlyph(feed.LifecycleConnecting) != channelGlyph(feed.LifecycleRetrying) {
		t.Fatal("connecting and retrying should share the in-progress glyph")
	}
}

func TestThemeByNameAndCycle(t *testing.T) {
	if got := ThemeByName("Graphite").Name; got != "Graphite" {
		t.Fatalf("ThemeByName(Graphite).Name = %q", got)
	}
	if got := ThemeByName("does-not-exist").Name; got != themes[0].Name {
		t.Fatalf("unknown theme resolved to %q, want default %q", got, themes[0].Name)
	}

	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if name != themes[0].Name {
		t.Fatalf("theme cycle did not wrap: ended on %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}

func TestKeyMapHelpSurfaces(t *testing.T) {
	keys := defaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help is empty")
	}
	full := keys.FullHelp()
	if len(full) == 0 || len(full[0]) == 0 {
		t.Fatal("full help is empty")
	}

	var found bool
	for _, b := range keys.ShortHelp() {
		if strings.Contains(b.Help().Desc, "unlock") {
			found = true
		}
	}
	if !found {
		t.Fatal("lock toggle missing from short help")
	}
}
