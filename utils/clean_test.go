package utils

import "testing"

func TestCleanFileName(t *testing.T) {
	cases := map[string]string{
		"Charaka Samhita":      "Charaka Samhita",
		`  a/b\c:d*e?"f"<g>|  `: "a_b_c_d_e__f__g__",
		"   ":                  "untitled",
	}
	for in, want := range cases {
		if got := CleanFileName(in); got != want {
			t.Errorf("CleanFileName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewTransportWithProxy(t *testing.T) {
	tr, err := NewTransport("127.0.0.1:9050")
	if err != nil {
		t.Fatalf("NewTransport: %v", err)
	}
	if tr.DialContext == nil {
		t.Fatal("expected a dialer")
	}
}
