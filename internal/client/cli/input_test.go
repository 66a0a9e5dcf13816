package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("roses are red\nviolets are blue\n\n\n"))
	var out bytes.Buffer
	got, err := GetMultiline(in, "Enter text", &out)
	if err != nil {
		t.Fatal(err)
	}
	want := "roses are red\nviolets are blue"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGetSecret_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetSecret(&out, "Enter passphrase: ")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetSecret_PromptIsPrinted(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return []byte("xyz"), nil
	}
	var out bytes.Buffer
	pw, err := GetSecret(&out, "Enter sweep secret: ")
	if err != nil {
		t.Fatal(err)
	}
	if string(pw) != "xyz" {
		t.Fatalf("got %q", pw)
	}
	if !strings.Contains(out.String(), "Enter sweep secret: ") {
		t.Fatalf("prompt missing from output: %q", out.String())
	}
}
