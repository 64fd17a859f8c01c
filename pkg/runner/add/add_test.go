package add

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/todocal/pkg/store"
)

func fixedNow() time.Time {
	return time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
}

func TestAddDefaultsToToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultFile)
	p := store.Open(path)
	var out bytes.Buffer

	for _, msg := range []string{"Buy milk", "Call Bob"} {
		a := &Add{Message: msg, Persistence: p, Now: fixedNow, Out: &out}
		if err := a.Do(context.Background()); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}

	tasks, err := store.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := tasks.TasksFor(10); !reflect.DeepEqual(got, []string{"Buy milk", "Call Bob"}) {
		t.Fatalf("TasksFor(10) = %q", got)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "10/01/2024\nBuy milk\nCall Bob\n\n"; string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}
}

func TestAddRefusesPastCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), store.DefaultFile)
	p := store.Open(path)
	var out bytes.Buffer
	for i := 0; i < store.MaxTasks+1; i++ {
		a := &Add{Day: 2, Message: "task", Persistence: p, Now: fixedNow, Out: &out}
		if err := a.Do(context.Background()); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}
	tasks, _ := store.Load(path)
	if n := len(tasks.TasksFor(2)); n != store.MaxTasks {
		t.Fatalf("got %d tasks, want %d", n, store.MaxTasks)
	}
	if !strings.Contains(out.String(), "nothing added") {
		t.Fatalf("expected a notice, got %q", out.String())
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	p := store.Open(filepath.Join(t.TempDir(), store.DefaultFile))
	a := &Add{Day: 1, Message: "two\nlines", Persistence: p, Now: fixedNow}
	if err := a.Do(context.Background()); !errors.Is(err, store.ErrTaskNewline) {
		t.Fatalf("expected ErrTaskNewline, got %v", err)
	}
	a = &Add{Day: 40, Message: "x", Persistence: p, Now: fixedNow}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected an out of range error")
	}
}
