package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/san-kum/growthsim/internal/econ"
)

func testMeta() RunMetadata {
	return RunMetadata{
		Model:          "solow",
		Alpha:          0.3,
		Delta:          0.1,
		Savings:        0.3,
		InitialCapital: 2.0,
		Horizon:        4,
		SteadyState:    4.8,
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	result := &econ.Result{
		Path:    econ.Path{2.0, 2.1, 2.2, 2.3},
		Metrics: map[string]float64{"residual": 0.1},
	}

	runID, err := st.Save(testMeta(), result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Model != "solow" || meta.Horizon != 4 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Metrics["residual"] != 0.1 {
		t.Error("metrics not persisted")
	}

	path, err := st.LoadPath(runID)
	if err != nil {
		t.Fatalf("load path failed: %v", err)
	}
	if len(path) != 4 {
		t.Fatalf("expected 4 periods, got %d", len(path))
	}
	for i, want := range result.Path {
		if math.Abs(path[i]-want) > 1e-9 {
			t.Errorf("path[%d] = %f, want %f", i, path[i], want)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	result := &econ.Result{Path: econ.Path{1, 2}}
	if _, err := st.Save(testMeta(), result); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/growthsim-test")

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Error("expected empty list")
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("missing_123"); err == nil {
		t.Error("expected error for unknown run")
	}
}

func TestExportJSON(t *testing.T) {
	meta := testMeta()
	meta.ID = "solow_1"
	path := econ.Path{2.0, 2.1}

	var buf bytes.Buffer
	if err := ExportJSON(&buf, &meta, path); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export not valid json: %v", err)
	}
	if data.ID != "solow_1" || len(data.Path) != 2 {
		t.Errorf("export mismatch: %+v", data)
	}
}
