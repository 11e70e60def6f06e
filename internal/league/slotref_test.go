package league

import "testing"

func TestParseSlotRef(t *testing.T) {
	tests := []struct {
		name    string
		tok     string
		want    SlotRef
		wantErr bool
	}{
		{name: "winner", tok: "W:playin-1", want: SlotRef{Kind: WinnerOf, MatchID: "playin-1"}},
		{name: "loser", tok: "L:playin-8", want: SlotRef{Kind: LoserOf, MatchID: "playin-8"}},
		{name: "empty is unset", tok: "", want: SlotRef{}},
		{name: "bad kind", tok: "X:playin-1", wantErr: true},
		{name: "no id", tok: "W:", wantErr: true},
		{name: "no separator", tok: "Wplayin-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlotRef(tt.tok)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSlotRef(%q) error = %v, wantErr %t", tt.tok, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseSlotRef(%q) = %+v, want %+v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestSlotRefRoundTrip(t *testing.T) {
	for _, ref := range []SlotRef{
		{Kind: WinnerOf, MatchID: "sf-2"},
		{Kind: LoserOf, MatchID: "playin-3"},
	} {
		parsed, err := ParseSlotRef(ref.String())
		if err != nil {
			t.Fatalf("round trip of %+v failed: %v", ref, err)
		}
		if parsed != ref {
			t.Errorf("round trip of %+v yielded %+v", ref, parsed)
		}
	}
}

func TestSlotRefResolve(t *testing.T) {
	winner := SlotRef{Kind: WinnerOf, MatchID: "playin-1"}
	loser := SlotRef{Kind: LoserOf, MatchID: "playin-1"}

	if got, ok := winner.Resolve("playin-1", "a", "b"); !ok || got != "a" {
		t.Errorf("winner.Resolve = (%q, %t), want (\"a\", true)", got, ok)
	}
	if got, ok := loser.Resolve("playin-1", "a", "b"); !ok || got != "b" {
		t.Errorf("loser.Resolve = (%q, %t), want (\"b\", true)", got, ok)
	}
	if _, ok := winner.Resolve("playin-2", "a", "b"); ok {
		t.Error("reference to a different match must not resolve")
	}
	if _, ok := (SlotRef{}).Resolve("playin-1", "a", "b"); ok {
		t.Error("unset reference must not resolve")
	}
}
