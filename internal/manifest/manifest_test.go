package manifest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yoruboku/vito-setup/internal/manifest"
)

func TestLoad_EmbeddedManifest(t *testing.T) {
	man, err := manifest.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"discord.py", "python-dotenv", "playwright"}
	if diff := cmp.Diff(want, man.Packages); diff != "" {
		t.Fatalf("packages mismatch (-want +got):\n%s", diff)
	}
	if man.Browser != "chromium" {
		t.Fatalf("browser = %q", man.Browser)
	}
	if man.LoginURL != "https://gemini.google.com/" {
		t.Fatalf("login URL = %q", man.LoginURL)
	}
	if man.Entry != "main.py" {
		t.Fatalf("entry = %q", man.Entry)
	}
}

func TestParse_RejectsIncompleteDocuments(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{name: "no packages", doc: "browser: chromium\nlogin_url: https://x/\nentry: main.py\n"},
		{name: "empty package", doc: "packages: [\"\"]\nbrowser: chromium\nlogin_url: https://x/\nentry: main.py\n"},
		{name: "no browser", doc: "packages: [a]\nlogin_url: https://x/\nentry: main.py\n"},
		{name: "no login url", doc: "packages: [a]\nbrowser: chromium\nentry: main.py\n"},
		{name: "no entry", doc: "packages: [a]\nbrowser: chromium\nlogin_url: https://x/\n"},
		{name: "not yaml", doc: "{packages: ["},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := manifest.Parse([]byte(tc.doc)); err == nil {
				t.Fatalf("expected error for %q", tc.doc)
			}
		})
	}
}
