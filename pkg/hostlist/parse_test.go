package hostlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ssh-sweep/pkg/model"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		user string
		want model.HostSpec
		ok   bool
	}{
		{line: "host", want: model.HostSpec{Host: "host", Port: 22}, ok: true},
		{line: "host", user: "ops", want: model.HostSpec{User: "ops", Host: "host", Port: 22}, ok: true},
		{line: "host:2222", want: model.HostSpec{Host: "host", Port: 2222}, ok: true},
		{line: "user@host", want: model.HostSpec{User: "user", Host: "host", Port: 22}, ok: true},
		{line: "user@host:2222", want: model.HostSpec{User: "user", Host: "host", Port: 2222}, ok: true},
		{line: "  user@host:2222  ", want: model.HostSpec{User: "user", Host: "host", Port: 2222}, ok: true},
		// explicit entry user beats the default user
		{line: "admin@host", user: "ops", want: model.HostSpec{User: "admin", Host: "host", Port: 22}, ok: true},
		// permissive: non-numeric or out-of-range port stays part of the host
		{line: "host:notaport", want: model.HostSpec{Host: "host:notaport", Port: 22}, ok: true},
		{line: "host:99999", want: model.HostSpec{Host: "host:99999", Port: 22}, ok: true},
		{line: ""},
		{line: "   "},
		{line: "# comment"},
		{line: "  # indented comment"},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.line, tc.user)
		if ok != tc.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tc.line, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestParseReader(t *testing.T) {
	in := "web1\n# fleet b\nweb2:2222\n\nops@db1\n"
	specs, err := ParseReader(strings.NewReader(in), "")
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	if len(specs) != 3 {
		t.Fatalf("got %d specs, want 3: %+v", len(specs), specs)
	}
	if specs[1].Port != 2222 || specs[2].User != "ops" {
		t.Errorf("unexpected specs: %+v", specs)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"), "")
	if err == nil {
		t.Fatal("expected error for missing host list")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hosts.txt")
	if err := os.WriteFile(path, []byte("a\nb:23\n#c\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	specs, err := LoadFile(path, "deploy")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(specs))
	}
	if specs[0].User != "deploy" || specs[1].Port != 23 {
		t.Errorf("unexpected specs: %+v", specs)
	}
}
