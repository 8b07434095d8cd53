// ABOUTME: Integration tests for the wellness CLI.
// ABOUTME: Builds the binary and runs an import-to-alerts workflow against a temp store.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const daySheet = "mardi 6 janvier 2026\n" +
	"Joueur,Poids,Sommeil,Charge mentale,Motivation,HDC,BDC,Remarque\n" +
	"DUPONT,95,1,3,5,4,4,mal dormi\n" +
	"MARTIN,100,4,4,4,4,4,\n"

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	wellnessBinary := filepath.Join(t.TempDir(), "wellness")

	buildCmd := exec.Command("go", "build", "-o", wellnessBinary, "./cmd/wellness")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Isolated config and data directories
	tmpDir := t.TempDir()
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"WELLNESS_BACKEND=sqlite",
	)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(wellnessBinary, args...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	sheetPath := filepath.Join(tmpDir, "bien-etre.csv")
	if err := os.WriteFile(sheetPath, []byte(daySheet), 0600); err != nil {
		t.Fatalf("Failed to write sheet: %v", err)
	}

	// Import creates players
	output, err := run("import", sheetPath)
	if err != nil {
		t.Fatalf("Failed to import: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2026-01-06") {
		t.Errorf("Expected import date in output, got: %s", output)
	}
	if !strings.Contains(output, "DUPONT") {
		t.Errorf("Expected new player DUPONT in output, got: %s", output)
	}

	// Average for the latest day
	output, err = run("average")
	if err != nil {
		t.Fatalf("Failed to average: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Wellness on 2026-01-06") {
		t.Errorf("Expected day heading in average output, got: %s", output)
	}

	// A sleep score of 1 raises an alert
	output, err = run("alerts")
	if err != nil {
		t.Fatalf("Failed to list alerts: %v\n%s", err, output)
	}
	if !strings.Contains(output, "DUPONT") {
		t.Errorf("Expected DUPONT alert, got: %s", output)
	}

	// Injury tracking
	output, err = run("injury", "add", "martin", "hamstring", "2", "--date", "2026-01-06")
	if err != nil {
		t.Fatalf("Failed to add injury: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2026-02-03") {
		t.Errorf("Expected estimated return 2026-02-03, got: %s", output)
	}

	output, err = run("players", "list")
	if err != nil {
		t.Fatalf("Failed to list players: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Injured") {
		t.Errorf("Expected injured status in players list, got: %s", output)
	}

	// Errors exit non-zero
	if output, err := run("average", "--group", "Subs"); err == nil {
		t.Errorf("Expected unknown group to fail, got: %s", output)
	}
}
