package editmatches

import (
	"testing"

	"github.com/amffhub/amfftool/internal/firestore"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		bucket  string
		match   firestore.Match
		wantErr bool
	}{
		{
			name:   "league ok",
			bucket: firestore.DIVISION_HIGH,
			match:  firestore.Match{Date: "2026-05-09", Round: 3, Home: "a", Away: "b"},
		},
		{
			name:    "bad bucket",
			bucket:  "second",
			match:   firestore.Match{Date: "2026-05-09", Round: 3, Home: "a", Away: "b"},
			wantErr: true,
		},
		{
			name:    "no date",
			bucket:  firestore.DIVISION_HIGH,
			match:   firestore.Match{Round: 3, Home: "a", Away: "b"},
			wantErr: true,
		},
		{
			name:    "same team twice",
			bucket:  firestore.DIVISION_HIGH,
			match:   firestore.Match{Date: "2026-05-09", Round: 3, Home: "a", Away: "a"},
			wantErr: true,
		},
		{
			name:    "league needs round",
			bucket:  firestore.DIVISION_FIRST,
			match:   firestore.Match{Date: "2026-05-09", Home: "a", Away: "b"},
			wantErr: true,
		},
		{
			name:    "bad score",
			bucket:  firestore.DIVISION_HIGH,
			match:   firestore.Match{Date: "2026-05-09", Round: 3, Home: "a", Away: "b", Score: "2:1"},
			wantErr: true,
		},
		{
			name:    "cup needs both teams",
			bucket:  firestore.BUCKET_CUP,
			match:   firestore.Match{Date: "2026-05-09", Home: "a"},
			wantErr: true,
		},
		{
			name:   "cup ok",
			bucket: firestore.BUCKET_CUP,
			match:  firestore.Match{Date: "2026-05-09", Home: "a", Away: "b"},
		},
		{
			name:    "structure league stage needs round",
			bucket:  firestore.BUCKET_STRUCTURE,
			match:   firestore.Match{Date: "2026-05-09", Home: "a", Away: "b"},
			wantErr: true,
		},
		{
			name:   "structure playoff with slot refs",
			bucket: firestore.BUCKET_STRUCTURE,
			match:  firestore.Match{Date: "2026-05-09", Stage: "qf", HomeFrom: "W:r16-1", AwayFrom: "W:r16-2"},
		},
		{
			name:    "structure playoff with nothing",
			bucket:  firestore.BUCKET_STRUCTURE,
			match:   firestore.Match{Date: "2026-05-09", Stage: "qf"},
			wantErr: true,
		},
		{
			name:    "structure malformed slot ref",
			bucket:  firestore.BUCKET_STRUCTURE,
			match:   firestore.Match{Date: "2026-05-09", Stage: "qf", HomeFrom: "X:r16-1"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.match
			err := validate(tt.bucket, &m)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaultsStage(t *testing.T) {
	m := firestore.Match{Date: "2026-05-09", Home: "a", Away: "b"}
	if err := validate(firestore.BUCKET_CUP, &m); err != nil {
		t.Fatal(err)
	}
	if m.Stage != "1/12" {
		t.Errorf("cup stage defaulted to %q, want 1/12", m.Stage)
	}

	m = firestore.Match{Date: "2026-05-09", Round: 1, Home: "a", Away: "b"}
	if err := validate(firestore.BUCKET_STRUCTURE, &m); err != nil {
		t.Fatal(err)
	}
	if m.Stage != "league" {
		t.Errorf("structure stage defaulted to %q, want league", m.Stage)
	}
}
