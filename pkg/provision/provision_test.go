package provision_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yoruboku/vito-setup/internal/manifest"
	"github.com/yoruboku/vito-setup/pkg/provision"
	"github.com/yoruboku/vito-setup/pkg/testsupport"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

func testManifest() manifest.Manifest {
	return manifest.Manifest{
		Packages: []string{"discord.py", "python-dotenv", "playwright"},
		Browser:  "chromium",
		LoginURL: "https://gemini.google.com/",
		Entry:    "main.py",
	}
}

func testPaths(t *testing.T) workspace.Paths {
	t.Helper()
	paths, err := workspace.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return paths
}

func TestRun_StepOrder(t *testing.T) {
	runner := &testsupport.RecordingRunner{}
	paths := testPaths(t)

	prov := provision.New(runner, paths, testManifest())
	if err := prov.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := [][]string{
		{"/usr/bin/python3", "-m", "venv", paths.EnvDir},
		{paths.Python(), "-m", "pip", "install", "--upgrade", "pip"},
		{paths.Python(), "-m", "pip", "install", "discord.py", "python-dotenv", "playwright"},
		{paths.Python(), "-m", "playwright", "install", "chromium"},
	}
	if diff := cmp.Diff(want, runner.Calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_MissingInterpreterIsFatal(t *testing.T) {
	runner := &testsupport.RecordingRunner{
		Missing: map[string]bool{"python3": true, "python": true},
	}

	err := provision.New(runner, testPaths(t), testManifest()).Run(context.Background())
	if !errors.Is(err, provision.ErrNoInterpreter) {
		t.Fatalf("err = %v, want ErrNoInterpreter", err)
	}
	if len(runner.Calls) != 0 {
		t.Fatalf("no command should run without an interpreter, got %v", runner.Commands())
	}
}

func TestInterpreter_FallsBackToPython(t *testing.T) {
	runner := &testsupport.RecordingRunner{
		Missing: map[string]bool{"python3": true},
	}

	path, err := provision.New(runner, testPaths(t), testManifest()).Interpreter()
	if err != nil {
		t.Fatalf("interpreter: %v", err)
	}
	if path != "/usr/bin/python" {
		t.Fatalf("interpreter = %q", path)
	}
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("pip exploded")
	runner := &testsupport.RecordingRunner{
		FailOn: func(argv []string) error {
			if strings.Contains(strings.Join(argv, " "), "pip install discord.py") {
				return boom
			}
			return nil
		},
	}

	err := provision.New(runner, testPaths(t), testManifest()).Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped pip failure", err)
	}
	for _, call := range runner.Commands() {
		if strings.Contains(call, "playwright install") {
			t.Fatalf("browser assets installed after a failed step: %v", runner.Commands())
		}
	}
}
