package main

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestCheckFlags(t *testing.T) {
	tests := []struct {
		dir     string
		preview bool
		want    error
	}{
		{"", false, nil},
		{"", true, nil},
		{"images", false, nil},
		{"images", true, errPreviewWithDir},
	}
	for _, tt := range tests {
		if got := checkFlags(tt.dir, tt.preview); !errors.Is(got, tt.want) {
			t.Errorf("checkFlags(%q, %v) = %v, want %v", tt.dir, tt.preview, got, tt.want)
		}
	}
}

func TestReadPaths(t *testing.T) {
	var got []string
	err := readPaths(strings.NewReader("a.png\nb.bmp\n"), func(path string) {
		got = append(got, path)
	})
	if err != nil {
		t.Fatalf("readPaths failed: %v", err)
	}
	if len(got) != 2 || got[0] != "a.png" || got[1] != "b.bmp" {
		t.Errorf("got %q, want [a.png b.bmp]", got)
	}
}

func TestReadPathsReportsReadError(t *testing.T) {
	errRead := errors.New("read failed")
	r := io.MultiReader(strings.NewReader("a.png\n"), iotest.ErrReader(errRead))

	var got []string
	err := readPaths(r, func(path string) {
		got = append(got, path)
	})
	if !errors.Is(err, errRead) {
		t.Errorf("err = %v, want %v", err, errRead)
	}
	if len(got) != 1 || got[0] != "a.png" {
		t.Errorf("got %q, want [a.png]", got)
	}
}
