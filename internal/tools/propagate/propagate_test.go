package propagate

import "testing"

func TestResolveToken(t *testing.T) {
	tests := []struct {
		name   string
		tok    string
		srcID  string
		want   string
		wantOK bool
	}{
		{name: "winner slot", tok: "W:sf-1", srcID: "sf-1", want: "ararat", wantOK: true},
		{name: "loser slot", tok: "L:sf-1", srcID: "sf-1", want: "pyunik", wantOK: true},
		{name: "other source", tok: "W:sf-2", srcID: "sf-1"},
		{name: "empty token", tok: "", srcID: "sf-1"},
		{name: "malformed kind", tok: "X:sf-1", srcID: "sf-1"},
		{name: "no separator", tok: "sf-1", srcID: "sf-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveToken(tt.tok, tt.srcID, "ararat", "pyunik")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("resolveToken(%q) = %q, %t, want %q, %t", tt.tok, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
