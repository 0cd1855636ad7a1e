package legislator

import "testing"

func TestIsSenateOffice(t *testing.T) {
	tests := []struct {
		office string
		want   bool
	}{
		{"State Senator", true},
		{"U.S. Senator", true},
		{"Senate Majority Leader", true},
		{"SENATOR", true},
		{"State Representative", false},
		{"U.S. Representative", false},
		{"Governor", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSenateOffice(tt.office); got != tt.want {
			t.Errorf("IsSenateOffice(%q) = %v, want %v", tt.office, got, tt.want)
		}
	}
}

func TestChamberFromOffice(t *testing.T) {
	if got := ChamberFromOffice("State Senator"); got != "upper" {
		t.Errorf("ChamberFromOffice(State Senator) = %q, want upper", got)
	}
	if got := ChamberFromOffice("State Representative"); got != "lower" {
		t.Errorf("ChamberFromOffice(State Representative) = %q, want lower", got)
	}
}
