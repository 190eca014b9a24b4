package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/taskburn/internal/infrastructure/config"
	"github.com/felixgeelhaar/taskburn/pkg/storage"
)

func TestInitCmd(t *testing.T) {
	dir := t.TempDir()
	old := projectPath
	projectPath = dir
	defer func() { projectPath = old }()

	out, err := execute(t, "init", "--timezone", "America/Sao_Paulo")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "Initialized taskburn workspace") {
		t.Errorf("unexpected output: %q", out)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Timezone != "America/Sao_Paulo" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}

	out, err = execute(t, "init")
	if err != nil {
		t.Fatalf("second init failed: %v", err)
	}
	if !strings.Contains(out, "already initialized") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestTasksCmd(t *testing.T) {
	root := withWorkspace(t)

	out, err := execute(t, "tasks")
	if err != nil {
		t.Fatalf("tasks failed: %v", err)
	}
	if !strings.Contains(out, "No task logs found") {
		t.Errorf("unexpected output: %q", out)
	}

	writeTaskLog(t, root, "release-1.2.yaml", releaseTaskLog)
	writeTaskLog(t, root, "api.json", `{"logs": []}`)
	out, err = execute(t, "tasks")
	if err != nil {
		t.Fatalf("tasks failed: %v", err)
	}
	if out != "api\nrelease-1.2\n" {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestTasksCmd_NotInitialized(t *testing.T) {
	old := projectPath
	projectPath = t.TempDir()
	defer func() { projectPath = old }()

	_, err := execute(t, "tasks")
	if !errors.Is(err, storage.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestBurndownCmd_Text(t *testing.T) {
	root := withWorkspace(t)
	writeTaskLog(t, root, "release-1.2.yaml", releaseTaskLog)

	out, err := execute(t, "burndown", "release-1.2")
	if err != nil {
		t.Fatalf("burndown failed: %v", err)
	}
	for _, want := range []string{
		"Release 1.2 (release-1.2)",
		"2024-03-04 → 2024-03-18",
		"Progress:",
		"40.0%",
		"10.0 pts/day",
		"2024-03-08",
		"ON TRACK",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBurndownCmd_JSON(t *testing.T) {
	root := withWorkspace(t)
	writeTaskLog(t, root, "release-1.2.yaml", releaseTaskLog)

	out, err := execute(t, "burndown", "release-1.2", "--json")
	if err != nil {
		t.Fatalf("burndown failed: %v", err)
	}

	var payload struct {
		ID       string `json:"id"`
		Task     string `json:"task"`
		Burndown struct {
			Ideal          []json.RawMessage `json:"ideal"`
			Actual         []json.RawMessage `json:"actual"`
			IdealVelocity  float64           `json:"ideal_velocity"`
			ActualVelocity float64           `json:"actual_velocity"`
		} `json:"burndown"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if payload.ID == "" || payload.Task != "release-1.2" {
		t.Errorf("unexpected payload: %+v", payload)
	}
	if payload.Burndown.IdealVelocity != 10 || len(payload.Burndown.Actual) != 1 {
		t.Errorf("unexpected burndown: %+v", payload.Burndown)
	}
}

func TestBurndownCmd_File(t *testing.T) {
	withWorkspace(t)
	path := filepath.Join(t.TempDir(), "adhoc.json")
	doc := `[{"start_time":"2024-01-01","end_time":"2024-01-10","recorded_at":"2024-01-05","progress":50}]`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "burndown", "--file", path)
	if err != nil {
		t.Fatalf("burndown failed: %v", err)
	}
	if !strings.Contains(out, "Burn-down: adhoc") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestBurndownCmd_Errors(t *testing.T) {
	root := withWorkspace(t)
	writeTaskLog(t, root, "broken.yaml", "logs:\n  - progress: 10\n")
	writeTaskLog(t, root, "empty.yaml", "logs: []\n")

	tests := []struct {
		name     string
		args     []string
		wantHint string
	}{
		{"missing task", []string{"burndown", "ghost"}, "Run 'taskburn tasks' to list available tasks"},
		{"schema", []string{"burndown", "broken"}, "Each log needs start_time, end_time, recorded_at and a numeric progress"},
		{"empty", []string{"burndown", "empty"}, "Record at least one progress entry in the task log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			var cliErr *CLIError
			if !errors.As(err, &cliErr) {
				t.Fatalf("expected CLIError, got %v", err)
			}
			if cliErr.Hint != tt.wantHint {
				t.Errorf("hint = %q, want %q", cliErr.Hint, tt.wantHint)
			}
		})
	}

	if _, err := execute(t, "burndown"); err == nil {
		t.Error("expected error without task or file")
	}
}

func TestCalendarCmds(t *testing.T) {
	withWorkspace(t)

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"check business day", []string{"calendar", "check", "2024-03-06"}, []string{"2024-03-06 Wednesday: business day"}},
		{"check holiday", []string{"calendar", "check", "2024-12-25"}, []string{"holiday: Natal (national)"}},
		{"check weekend", []string{"calendar", "check", "2024-03-09"}, []string{"weekend"}},
		{"add", []string{"calendar", "add", "2024-03-08", "1"}, []string{"2024-03-11"}},
		{"subtract", []string{"calendar", "subtract", "2024-03-11", "1"}, []string{"2024-03-08"}},
		{"hours", []string{"calendar", "hours", "2024-03-04T00:00:00Z", "2024-03-05T05:00:00Z"}, []string{"29 business hours (1 dias e 5 horas)"}},
		{"holidays", []string{"calendar", "holidays", "--year", "2025"}, []string{"Holidays 2025", "2025-03-04", "Carnaval", "19 holidays"}},
		{"holidays by scope", []string{"calendar", "holidays", "--year", "2025", "--scope", "state"}, []string{"Independência da Bahia", "1 holidays"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("%v failed: %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestCalendarCmds_JSON(t *testing.T) {
	withWorkspace(t)

	out, err := execute(t, "calendar", "check", "2024-03-31", "--json")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	var info struct {
		Business bool `json:"business"`
		Holiday  *struct {
			Name string `json:"name"`
		} `json:"holiday"`
	}
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if info.Business || info.Holiday == nil || info.Holiday.Name != "Páscoa" {
		t.Errorf("unexpected info: %+v", info)
	}
}

func TestCalendarCmds_Errors(t *testing.T) {
	withWorkspace(t)

	if _, err := execute(t, "calendar", "add", "2024-03-08", "many"); err == nil {
		t.Error("expected error for non-numeric day count")
	}
	_, err := execute(t, "calendar", "check", "tomorrow")
	var cliErr *CLIError
	if !errors.As(err, &cliErr) || cliErr.ExitCode != 2 {
		t.Errorf("expected invalid date CLIError, got %v", err)
	}
	if _, err := execute(t, "calendar", "holidays", "--scope", "galactic"); err == nil {
		t.Error("expected error for unknown scope")
	}
}
