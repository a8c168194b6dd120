package theme

import "testing"

func TestDefaultSpacingScale(t *testing.T) {
	th := Default()
	cases := map[string]string{
		"0":   "0",
		"px":  "1px",
		"0.5": "0.125rem",
		"4":   "1rem",
		"96":  "24rem",
	}
	for key, want := range cases {
		got, ok := th.Spacing(key)
		if !ok {
			t.Fatalf("spacing %q: not found", key)
		}
		if got != want {
			t.Errorf("spacing %q = %q, want %q", key, got, want)
		}
	}
	if _, ok := th.Spacing("not-a-key"); ok {
		t.Error("expected miss for unknown spacing key")
	}
}

func TestDefaultColorPalette(t *testing.T) {
	th := Default()
	got, ok := th.Color("blue", "500")
	if !ok || got != "#3b82f6" {
		t.Errorf("Color(blue,500) = %q,%v, want #3b82f6,true", got, ok)
	}
	if _, ok := th.Color("blue", "999"); ok {
		t.Error("expected miss for unknown shade")
	}
	if _, ok := th.Color("not-a-palette", "500"); ok {
		t.Error("expected miss for unknown palette")
	}
}

func TestFraction(t *testing.T) {
	cases := []struct {
		n, d int
		want string
	}{
		{1, 2, "50%"},
		{2, 3, "66.666667%"},
		{1, 1, "100%"},
		{0, 5, "0%"},
	}
	for _, c := range cases {
		got, err := Fraction(c.n, c.d)
		if err != nil {
			t.Fatalf("Fraction(%d,%d): %v", c.n, c.d, err)
		}
		if got != c.want {
			t.Errorf("Fraction(%d,%d) = %q, want %q", c.n, c.d, got, c.want)
		}
	}
	if _, err := Fraction(1, 0); err == nil {
		t.Error("expected error for zero denominator")
	}
}

func TestBreakpointsAndContainersAreIndependent(t *testing.T) {
	th := Default()
	bp, _ := th.Breakpoint("md")
	ct, _ := th.Container("md")
	if bp == ct {
		t.Skip("breakpoint and container md happen to coincide, not a failure by itself")
	}
}

func TestHashIsDeterministicAndChangesWithTables(t *testing.T) {
	a := Default()
	b := Default()
	if a.Hash() != b.Hash() {
		t.Error("two default themes must hash identically")
	}

	c := New(WithSpacing(map[string]string{"4": "2rem"}))
	if c.Hash() == a.Hash() {
		t.Error("changing a table must change the hash")
	}
}

func TestDarkModeStrategyDefault(t *testing.T) {
	th := Default()
	if th.DarkModeStrategy() != DarkModeClass {
		t.Errorf("default dark mode strategy = %q, want %q", th.DarkModeStrategy(), DarkModeClass)
	}
	media := New(WithDarkModeStrategy(DarkModeMedia))
	if media.DarkModeStrategy() != DarkModeMedia {
		t.Errorf("override dark mode strategy = %q, want %q", media.DarkModeStrategy(), DarkModeMedia)
	}
}
