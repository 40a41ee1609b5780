package authorize_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yoruboku/vito-setup/internal/manifest"
	"github.com/yoruboku/vito-setup/pkg/authorize"
	"github.com/yoruboku/vito-setup/pkg/testsupport"
	"github.com/yoruboku/vito-setup/pkg/workspace"
)

func TestRun_OpensPersistentProfileAtLoginURL(t *testing.T) {
	runner := &testsupport.RecordingRunner{}
	paths, err := workspace.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	man := manifest.Manifest{
		Packages: []string{"playwright"},
		Browser:  "chromium",
		LoginURL: "https://gemini.google.com/",
		Entry:    "main.py",
	}

	if err := authorize.New(runner, paths, man).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := [][]string{{
		paths.Python(),
		"-m", "playwright", "open",
		"--browser", "chromium",
		"--user-data-dir", paths.ProfileDir,
		"https://gemini.google.com/",
	}}
	if diff := cmp.Diff(want, runner.Calls); diff != "" {
		t.Fatalf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PropagatesLaunchFailure(t *testing.T) {
	boom := errors.New("no display")
	runner := &testsupport.RecordingRunner{
		FailOn: func([]string) error { return boom },
	}
	paths, err := workspace.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	man := manifest.Manifest{Packages: []string{"playwright"}, Browser: "chromium", LoginURL: "https://gemini.google.com/", Entry: "main.py"}

	if err := authorize.New(runner, paths, man).Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped launch failure", err)
	}
}
