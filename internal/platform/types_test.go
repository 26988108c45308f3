package platform

import "testing"

func TestParseMouseButton(t *testing.T) {
	cases := []struct {
		in      string
		want    MouseButton
		wantErr bool
	}{
		{"left", MouseLeft, false},
		{"Right", MouseRight, false},
		{"LEFT", MouseLeft, false},
		{"middle", MouseLeft, true},
		{"", MouseLeft, true},
	}
	for _, c := range cases {
		got, err := ParseMouseButton(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseMouseButton(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMouseButton(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMouseButton(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
