package main

import "testing"

func TestEncodeName(t *testing.T) {
	for _, tt := range []struct {
		name    string
		force   bool
		want    string
		wantErr bool
	}{
		{name: "data", want: "data.rle"},
		{name: "a.txt", want: "a.txt.rle"},
		{name: "data.rle", wantErr: true},
		{name: "data.rle", force: true, want: "data.rle.rle"},
		{name: ".rle", want: ".rle.rle"}, // just the suffix is a valid plain name
	} {
		got, err := encodeName(tt.name, tt.force)
		if tt.wantErr {
			if err == nil {
				t.Errorf("encodeName(%q, %v): expected an error", tt.name, tt.force)
			}
			continue
		}
		if err != nil {
			t.Errorf("encodeName(%q, %v): %v", tt.name, tt.force, err)
			continue
		}
		if got != tt.want {
			t.Errorf("encodeName(%q, %v) = %q, wanted %q", tt.name, tt.force, got, tt.want)
		}
	}
}

func TestDecodeName(t *testing.T) {
	for _, tt := range []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "data.rle", want: "data"},
		{name: "a.txt.rle", want: "a.txt"},
		{name: "data", wantErr: true},
		{name: ".rle", wantErr: true},
		{name: "data.gz", wantErr: true},
	} {
		got, err := decodeName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("decodeName(%q): expected an error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("decodeName(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("decodeName(%q) = %q, wanted %q", tt.name, got, tt.want)
		}
	}
}
