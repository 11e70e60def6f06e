package main

import (
	"testing"

	"github.com/amffhub/amfftool/internal/firestore"
)

func TestRosterEntryArgUnmarshalText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    firestore.RosterEntry
		wantErr bool
	}{
		{name: "id only", text: "p1", want: firestore.RosterEntry{PlayerID: "p1"}},
		{name: "id and number", text: "p1:10", want: firestore.RosterEntry{PlayerID: "p1", Number: 10}},
		{name: "captain", text: "p1:10:C", want: firestore.RosterEntry{PlayerID: "p1", Number: 10, Captain: true}},
		{name: "goalkeeper captain", text: "p1:1:GC", want: firestore.RosterEntry{PlayerID: "p1", Number: 1, Captain: true, Goalkeeper: true}},
		{name: "flags without number", text: "p1::G", want: firestore.RosterEntry{PlayerID: "p1", Goalkeeper: true}},
		{name: "empty", text: "", wantErr: true},
		{name: "bad number", text: "p1:ten", wantErr: true},
		{name: "bad flag", text: "p1:10:X", wantErr: true},
		{name: "too many fields", text: "p1:10:C:extra", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r rosterEntryArg
			err := r.UnmarshalText([]byte(tt.text))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText(%q) error = %v, wantErr %t", tt.text, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := firestore.RosterEntry(r); got != tt.want {
				t.Errorf("UnmarshalText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
