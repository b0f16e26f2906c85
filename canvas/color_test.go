package canvas

import "testing"

func TestParseHex(t *testing.T) {
	cases := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"#ff0000", 0xFFFF0000, false},
		{"00ff00", 0xFF00FF00, false},
		{"#11223344", 0x44112233, false},
		{" #0000ff ", 0xFF0000FF, false},
		{"#fff", 0, true},
		{"#gg0000", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHex(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#x", got)
				}
				return
			}
			if err != nil || got != c.want {
				t.Fatalf("expected %#x, got %#x (%v)", c.want, got, err)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xFFFF8000); got != "#ff8000" {
		t.Fatalf("expected #ff8000, got %s", got)
	}
	if got := Hex(0x44112233); got != "#11223344" {
		t.Fatalf("expected #11223344, got %s", got)
	}
}
