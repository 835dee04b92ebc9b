package deps

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRegistryResolve(t *testing.T) {
	idx := &fakeIndex{url: "a", releases: map[string][]string{
		"PyYAML":   {"5.4", "6.0.2"},
		"requests": {"2.31.0"},
		"pywin32":  {"306"},
	}}
	reg := NewRegistry([]Fetcher{idx}, lastVersion)

	cands := []Candidate{
		{ImportName: "yaml", Dist: "PyYAML"},
		{ImportName: "win32api", Dist: "pywin32"},
		{ImportName: "requests", Dist: "requests"},
		{ImportName: "win32con", Dist: "pywin32"},
		{ImportName: "nothere", Dist: "nothere"},
	}
	res, err := reg.Resolve(context.Background(), cands, Options{Workers: 3})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	var got []string
	for _, p := range res.Resolved {
		got = append(got, p.ImportName+"="+p.Requirement())
	}
	want := []string{
		"requests=requests~=2.31.0",
		"win32api=pywin32~=306",
		"win32con=pywin32~=306",
		"yaml=PyYAML~=6.0.2",
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Resolved = %v, want %v", got, want)
	}
	if len(res.Unresolved) != 1 || res.Unresolved[0].ImportName != "nothere" {
		t.Errorf("Unresolved = %v, want [nothere]", res.Unresolved)
	}
	// pywin32 is looked up once for both imports.
	if n := idx.calls.Load(); n != 4 {
		t.Errorf("index calls = %d, want 4", n)
	}
}

func TestRegistryResolve_Empty(t *testing.T) {
	reg := NewRegistry(nil, lastVersion)
	res, err := reg.Resolve(context.Background(), nil, Options{})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(res.Resolved) != 0 || len(res.Unresolved) != 0 {
		t.Errorf("Resolve(nil) = %+v, want empty", res)
	}
}

func TestRegistryResolve_Deterministic(t *testing.T) {
	releases := make(map[string][]string)
	var cands []Candidate
	for i := range 50 {
		name := fmt.Sprintf("pkg%02d", i)
		releases[name] = []string{"1.0.0"}
		cands = append(cands, Candidate{ImportName: name, Dist: name})
	}

	var first string
	for run := range 3 {
		idx := &fakeIndex{url: "a", releases: releases}
		res, err := NewRegistry([]Fetcher{idx}, lastVersion).Resolve(context.Background(), cands, Options{Workers: 8})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		got := fmt.Sprint(res.Resolved)
		if run == 0 {
			first = got
		} else if got != first {
			t.Fatalf("run %d differs from run 0", run)
		}
	}
}

func TestRegistryResolve_Cancelled(t *testing.T) {
	idx := &fakeIndex{url: "a", delay: time.Second, releases: map[string][]string{"a": {"1"}, "b": {"1"}}}
	reg := NewRegistry([]Fetcher{idx}, lastVersion)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := reg.Resolve(ctx, []Candidate{{ImportName: "a", Dist: "a"}, {ImportName: "b", Dist: "b"}}, Options{Workers: 1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Resolve() error = %v, want DeadlineExceeded", err)
	}
}
