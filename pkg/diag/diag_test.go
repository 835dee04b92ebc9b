package diag

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollectorOrdersByStageAndSubject(t *testing.T) {
	var c Collector
	Emitf(&c, Warning, StageResolve, "zzz", "not found on any index")
	Emitf(&c, Warning, StageParse, "b.py", "unterminated string")
	Emitf(&c, Debug, StageResolve, "aaa", "found on https://pypi.org/simple")
	Emitf(&c, Info, StageScan, "", "12 files")

	got := c.All()
	want := []string{
		"[scan] 12 files",
		"[parse] b.py: unterminated string",
		"[resolve] aaa: found on https://pypi.org/simple",
		"[resolve] zzz: not found on any index",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i].String(), want[i])
		}
	}
}

func TestCollectorCount(t *testing.T) {
	var c Collector
	Emitf(&c, Debug, StageScan, "", "a")
	Emitf(&c, Info, StageScan, "", "b")
	Emitf(&c, Warning, StageScan, "", "c")

	if n := c.Count(Warning); n != 1 {
		t.Errorf("Count(Warning) = %d, want 1", n)
	}
	if n := c.Count(Debug); n != 3 {
		t.Errorf("Count(Debug) = %d, want 3", n)
	}
}

func TestCollectorConcurrent(t *testing.T) {
	var c Collector
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Emitf(&c, Info, StageParse, "f.py", "ok")
		}()
	}
	wg.Wait()
	if n := len(c.All()); n != 50 {
		t.Errorf("got %d diagnostics, want 50", n)
	}
}

func TestEmitfNilSink(t *testing.T) {
	Emitf(nil, Warning, StageScan, "", "dropped")
}

func TestSeverityJSON(t *testing.T) {
	data, err := json.Marshal(Diagnostic{Severity: Warning, Stage: StagePatch, Message: "m"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"severity":"warning","stage":"patch","message":"m"}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}
