package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"chemgrade/internal/rubric"
)

// TestInitScaffoldsLoadableRubric verifies the scaffolded file loads back
// through the normal rubric loader.
func TestInitScaffoldsLoadableRubric(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.yml")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--out", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("init exited %d: %s", code, stderr.String())
	}

	loaded, err := rubric.Load(path)
	if err != nil {
		t.Fatalf("load scaffold: %v", err)
	}
	if loaded.Name != "ring-strain" || loaded.MaxPoints != 100 {
		t.Fatalf("unexpected scaffold rubric: %s / %v", loaded.Name, loaded.MaxPoints)
	}
}

// TestInitRefusesOverwrite verifies existing files are left alone.
func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rubric.yml")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--out", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("first init exited %d", code)
	}
	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"init", "--out", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected refusal, got %d", code)
	}
}
