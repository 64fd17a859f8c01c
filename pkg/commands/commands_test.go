package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := New()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("todocal %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestSubcommands(t *testing.T) {
	cmd := New()
	want := map[string]bool{"ui": false, "list": false, "add": false, "key": false, "version": false}
	for _, c := range cmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestAddThenList(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOCAL_CONFIG_PATH", dir)
	t.Setenv("TODOCAL_FILE", filepath.Join(dir, "todolist.txt"))

	run(t, "add", "--day", "10", "Buy", "milk")
	run(t, "add", "--day", "10", "Call Bob")

	out := run(t, "list", "--json")
	var got []struct {
		Day   int      `json:"day"`
		Tasks []string `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Day != 10 || strings.Join(got[0].Tasks, "|") != "Buy milk|Call Bob" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestDayFlagUsage(t *testing.T) {
	tests := map[string]string{
		"list": "Lists every day when unset.",
		"add":  "Defaults to today.",
	}
	root := New()
	for name, want := range tests {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("Find(%q): %v", name, err)
		}
		f := cmd.Flags().Lookup("day")
		if f == nil {
			t.Fatalf("%s has no --day flag", name)
		}
		if !strings.HasSuffix(f.Usage, want) {
			t.Errorf("%s --day usage = %q, want suffix %q", name, f.Usage, want)
		}
	}
}

func TestKey(t *testing.T) {
	out := run(t, "key")
	for _, want := range []string{"prev day", "next month", "edit day", "quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("key legend missing %q:\n%s", want, out)
		}
	}
}
