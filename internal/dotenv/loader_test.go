package dotenv

import (
	"maps"
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadMergePrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := writeEnvFile(t, dir, ".env.staging", "A=1\nB=2\n")
	second := writeEnvFile(t, dir, ".env", "B=3\nC=4\n")

	merged, err := Load([]string{first, second})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := map[string]string{"A": "1", "B": "3", "C": "4"}
	if !maps.Equal(merged, want) {
		t.Fatalf("expected merged map %v, got %v", want, merged)
	}
}

func TestLoadExpandsVariableReferences(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeEnvFile(t, dir, ".env", "HOST=localhost\nURL=http://${HOST}:8080\n")

	merged, err := Load([]string{file})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := merged["URL"]; got != "http://localhost:8080" {
		t.Fatalf("expected expanded URL, got %q", got)
	}
}

func TestLoadMissingFileIsRecoverable(t *testing.T) {
	t.Parallel()

	if _, err := Load([]string{filepath.Join(t.TempDir(), ".env.absent")}); err == nil {
		t.Fatalf("expected error for unreadable file")
	}
}

func TestLoadNoFilesYieldsEmptyMap(t *testing.T) {
	t.Parallel()

	merged, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(merged) != 0 {
		t.Fatalf("expected empty map, got %v", merged)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	merged := map[string]string{"A": "1", "B": "2", "C": "3"}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    map[string]string
	}{
		{
			name: "NoListsKeepsEverything",
			want: map[string]string{"A": "1", "B": "2", "C": "3"},
		},
		{
			name:    "IncludeKeepsOnlyListedKeys",
			include: []string{"B"},
			want:    map[string]string{"B": "2"},
		},
		{
			name:    "IncludeWinsOverExclude",
			include: []string{"B"},
			exclude: []string{"B"},
			want:    map[string]string{"B": "2"},
		},
		{
			name:    "ExcludeDropsListedKeys",
			exclude: []string{"B"},
			want:    map[string]string{"A": "1", "C": "3"},
		},
		{
			name:    "EmptyIncludeDropsEverything",
			include: []string{},
			exclude: []string{"B"},
			want:    map[string]string{},
		},
		{
			name:    "UnknownKeysInListsAreIgnored",
			exclude: []string{"Z"},
			want:    map[string]string{"A": "1", "B": "2", "C": "3"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(merged, tc.include, tc.exclude)
			if !maps.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
