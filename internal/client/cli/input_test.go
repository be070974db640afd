package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestGetSimpleText_TrimsNewline(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("milk\n"))

	got, err := GetSimpleText(reader, "Enter item name", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "milk" {
		t.Fatalf("got %q, want %q", got, "milk")
	}
	if !strings.Contains(out.String(), "Enter item name") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("eggs"))

	got, err := GetSimpleText(reader, "Enter item name", &out)
	if err != nil {
		t.Fatalf("GetSimpleText error: %v", err)
	}
	if got != "eggs" {
		t.Fatalf("got %q, want %q", got, "eggs")
	}
}

func TestGetSimpleText_EmptyInputAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	if _, err := GetSimpleText(reader, "prompt", &out); err == nil {
		t.Fatal("expected error on immediate EOF")
	}
}

func TestGetPassword_UsesStubbedReader(t *testing.T) {
	orig := readPassword
	defer func() { readPassword = orig }()

	readPassword = func(fd int) ([]byte, error) {
		return []byte("pw1"), nil
	}

	var out bytes.Buffer
	got, err := GetPassword(&out)
	if err != nil {
		t.Fatalf("GetPassword error: %v", err)
	}
	if got != "pw1" {
		t.Fatalf("got %q, want %q", got, "pw1")
	}
	if !strings.Contains(out.String(), "Enter password") {
		t.Fatalf("prompt not written: %q", out.String())
	}
}
