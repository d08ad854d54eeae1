package theme

import (
	"testing"

	"github.com/theirongolddev/rebalance/internal/model"
)

func TestByNameFallsBackToDefault(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown theme resolved to %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer func() { Active = FlexokiDark }()
	SetActive("tokyo-night")
	if Active.Name != TokyoNight.Name {
		t.Fatalf("Active = %q, want %q", Active.Name, TokyoNight.Name)
	}
}

func TestMoodColorsAreDistinct(t *testing.T) {
	th := FlexokiDark
	seen := map[string]model.Mood{}
	for _, m := range model.Moods {
		c := string(th.Mood(m))
		if prev, ok := seen[c]; ok {
			t.Errorf("moods %s and %s share color %s", prev, m, c)
		}
		seen[c] = m
	}
	if th.Mood(model.Mood("")) != th.TextDim {
		t.Error("unset mood should use TextDim")
	}
}

func TestRunwayColor(t *testing.T) {
	th := FlexokiDark
	cases := []struct {
		r    model.Runway
		want string
	}{
		{model.Runway{Infinite: true}, string(th.Green)},
		{model.Runway{Months: 6}, string(th.Green)},
		{model.Runway{Months: 3.5}, string(th.Yellow)},
		{model.Runway{Months: 1}, string(th.Orange)},
		{model.Runway{Months: 0.4}, string(th.Red)},
	}
	for _, c := range cases {
		if got := string(th.Runway(c.r)); got != c.want {
			t.Errorf("Runway(%+v) = %s, want %s", c.r, got, c.want)
		}
	}
}
