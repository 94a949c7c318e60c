package cli

import "testing"

func TestParseWeekPreservesOrder(t *testing.T) {
	week, err := parseWeek("Mon=4, Tue=0,Wed=2.5")
	if err != nil {
		t.Fatalf("parseWeek: %v", err)
	}
	if len(week) != 3 {
		t.Fatalf("expected 3 days, got %d", len(week))
	}
	if week[0].Day != "Mon" || week[1].Day != "Tue" || week[2].Day != "Wed" {
		t.Errorf("day order lost: %v", week)
	}
	if week[2].Hours != 2.5 {
		t.Errorf("Wed hours = %v, want 2.5", week[2].Hours)
	}
}

func TestParseWeekRejectsBadEntries(t *testing.T) {
	for _, in := range []string{"Mon", "Mon=x", "Mon=-1"} {
		if _, err := parseWeek(in); err == nil {
			t.Errorf("parseWeek(%q) should fail", in)
		}
	}
}
