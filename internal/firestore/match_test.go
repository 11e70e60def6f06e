package firestore

import (
	"testing"
	"time"
)

func TestKickoffTime(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		hhmm    string
		want    string
		wantErr bool
	}{
		{name: "date and time", date: "2026-05-09", hhmm: "20:00", want: "2026-05-09T20:00:00"},
		{name: "midnight default", date: "2026-05-09", hhmm: "", want: "2026-05-09T00:00:00"},
		{name: "no date", date: "", hhmm: "20:00", wantErr: true},
		{name: "garbage date", date: "ninth of may", hhmm: "20:00", wantErr: true},
	}

	loc, err := time.LoadLocation(KickoffZone)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Match{Date: tt.date, Time: tt.hhmm}
			got, err := m.KickoffTime()
			if (err != nil) != tt.wantErr {
				t.Fatalf("KickoffTime() error = %v, wantErr %t", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want, err := time.ParseInLocation("2006-01-02T15:04:05", tt.want, loc)
			if err != nil {
				t.Fatal(err)
			}
			if !got.Equal(want) {
				t.Errorf("KickoffTime() = %v, want %v", got, want)
			}
			if got.Location().String() != KickoffZone {
				t.Errorf("KickoffTime() location = %s, want %s", got.Location(), KickoffZone)
			}
		})
	}
}

func TestResolved(t *testing.T) {
	tests := []struct {
		name  string
		match Match
		want  bool
	}{
		{name: "both sides", match: Match{Home: "a", Away: "b"}, want: true},
		{name: "missing away", match: Match{Home: "a", AwayFrom: "W:sf-1"}, want: false},
		{name: "missing home", match: Match{Away: "b"}, want: false},
		{name: "empty", match: Match{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.match.Resolved(); got != tt.want {
				t.Errorf("Resolved() = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	if _, ok := (Match{}).Result(); ok {
		t.Error("unplayed match must not parse to a result")
	}
	s, ok := (Match{Score: "2-1"}).Result()
	if !ok || s.Home != 2 || s.Away != 1 {
		t.Errorf("Result() = %v, %t", s, ok)
	}
}

func TestValidBucket(t *testing.T) {
	for _, b := range Buckets {
		if !ValidBucket(b) {
			t.Errorf("bucket %s must be valid", b)
		}
	}
	for _, b := range []string{"", "second", "Structure"} {
		if ValidBucket(b) {
			t.Errorf("bucket %q must not be valid", b)
		}
	}
}
