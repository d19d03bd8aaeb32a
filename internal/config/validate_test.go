package config_test

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"depviz/internal/config"
)

func validRaw(repo string) map[string]string {
	return map[string]string{
		"package_name":     "foo",
		"repo_url_or_path": repo,
		"test_repo_mode":   "none",
		"output_image":     "out.png",
		"ascii_mode":       "tree",
		"max_depth":        "3",
	}
}

func TestValidateAndNormalizeURL(t *testing.T) {
	for _, repo := range []string{
		"https://github.com/example/depviz.git",
		"http://example.com/repo",
		"git://example.com/repo.git",
	} {
		n, err := config.ValidateAndNormalize(validRaw(repo))
		if err != nil {
			t.Fatalf("ValidateAndNormalize(%q): %v", repo, err)
		}
		if n.RepoType != config.RepoURL {
			t.Fatalf("expected url classification for %q, got %s", repo, n.RepoType)
		}
		if n.RepoURLOrPath != repo {
			t.Fatalf("expected URL unchanged, got %q", n.RepoURLOrPath)
		}
	}
}

func TestValidateAndNormalizeLocalPathRewrittenAbsolute(t *testing.T) {
	dir := t.TempDir()
	n, err := config.ValidateAndNormalize(validRaw(dir))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if n.RepoType != config.RepoLocal {
		t.Fatalf("expected local classification, got %s", n.RepoType)
	}
	if !filepath.IsAbs(n.RepoURLOrPath) {
		t.Fatalf("expected absolute path, got %q", n.RepoURLOrPath)
	}
}

func TestValidateAndNormalizeRelativeLocalPath(t *testing.T) {
	n, err := config.ValidateAndNormalize(validRaw("."))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if n.RepoType != config.RepoLocal {
		t.Fatalf("expected local classification for '.', got %s", n.RepoType)
	}
	if !filepath.IsAbs(n.RepoURLOrPath) {
		t.Fatalf("expected '.' rewritten absolute, got %q", n.RepoURLOrPath)
	}
}

func TestValidateAndNormalizeUnknownRepo(t *testing.T) {
	repo := "/nonexistent/depviz/repo"
	n, err := config.ValidateAndNormalize(validRaw(repo))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if n.RepoType != config.RepoUnknown {
		t.Fatalf("expected unknown classification, got %s", n.RepoType)
	}
	if n.RepoURLOrPath != repo {
		t.Fatalf("expected value unchanged, got %q", n.RepoURLOrPath)
	}
}

func TestValidateAndNormalizeSchemeWithoutHostIsNotURL(t *testing.T) {
	n, err := config.ValidateAndNormalize(validRaw("https:///no-host"))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if n.RepoType != config.RepoUnknown {
		t.Fatalf("expected unknown for hostless URL, got %s", n.RepoType)
	}
}

func TestValidateAndNormalizeMissingKeysSorted(t *testing.T) {
	raw := validRaw("https://example.com/repo")
	delete(raw, "max_depth")
	delete(raw, "ascii_mode")

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrMissingKeys) {
		t.Fatalf("expected ErrMissingKeys, got %v", err)
	}
	if !strings.Contains(err.Error(), "ascii_mode, max_depth") {
		t.Fatalf("expected sorted missing key names, got %q", err.Error())
	}
}

func TestValidateAndNormalizeEmptyPackageName(t *testing.T) {
	raw := validRaw("https://example.com/repo")
	raw["package_name"] = "   "

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField, got %v", err)
	}
	if !strings.Contains(err.Error(), "package_name") {
		t.Fatalf("expected field name in message, got %q", err.Error())
	}
}

func TestValidateAndNormalizeFailFastOrder(t *testing.T) {
	// Both package_name and max_depth are invalid; package_name comes first
	// in the fixed rule order.
	raw := validRaw("https://example.com/repo")
	raw["package_name"] = ""
	raw["max_depth"] = "-1"

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrEmptyField) {
		t.Fatalf("expected ErrEmptyField first, got %v", err)
	}
}

func TestValidateAndNormalizeInvalidTestRepoMode(t *testing.T) {
	raw := validRaw("https://example.com/repo")
	raw["test_repo_mode"] = "remote"

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestValidateAndNormalizeLocalModeRequiresLocalRepo(t *testing.T) {
	raw := validRaw("/nonexistent/depviz/repo")
	raw["test_repo_mode"] = "local"

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrInconsistentMode) {
		t.Fatalf("expected ErrInconsistentMode, got %v", err)
	}
}

func TestValidateAndNormalizeLocalModeWithExistingPath(t *testing.T) {
	raw := validRaw(t.TempDir())
	raw["test_repo_mode"] = "LOCAL"

	n, err := config.ValidateAndNormalize(raw)
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	if n.TestRepoMode != config.TestRepoLocal {
		t.Fatalf("expected lowercased mode, got %s", n.TestRepoMode)
	}
}

func TestValidateAndNormalizeOutputImage(t *testing.T) {
	cases := []struct {
		image string
		want  error
	}{
		{"out.png", nil},
		{"diagram.svg", nil},
		{"outfile", config.ErrMissingExtension},
		{".png", config.ErrMissingExtension},
		{"", config.ErrEmptyField},
	}
	for _, tc := range cases {
		raw := validRaw("https://example.com/repo")
		raw["output_image"] = tc.image
		_, err := config.ValidateAndNormalize(raw)
		if tc.want == nil {
			if err != nil {
				t.Fatalf("output_image %q: unexpected error %v", tc.image, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("output_image %q: expected %v, got %v", tc.image, tc.want, err)
		}
	}
}

func TestValidateAndNormalizeInvalidASCIIMode(t *testing.T) {
	raw := validRaw("https://example.com/repo")
	raw["ascii_mode"] = "fancy"

	_, err := config.ValidateAndNormalize(raw)
	if !errors.Is(err, config.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}
}

func TestValidateAndNormalizeMaxDepth(t *testing.T) {
	cases := []struct {
		depth string
		want  error
		value int
	}{
		{"0", nil, 0},
		{" 12 ", nil, 12},
		{"+4", nil, 4},
		{"", config.ErrEmptyField, 0},
		{"abc", config.ErrNotAnInteger, 0},
		{"3.5", config.ErrNotAnInteger, 0},
		{"-1", config.ErrNegativeValue, 0},
	}
	for _, tc := range cases {
		raw := validRaw("https://example.com/repo")
		raw["max_depth"] = tc.depth
		n, err := config.ValidateAndNormalize(raw)
		if tc.want == nil {
			if err != nil {
				t.Fatalf("max_depth %q: unexpected error %v", tc.depth, err)
			}
			if n.MaxDepth != tc.value {
				t.Fatalf("max_depth %q: got %d want %d", tc.depth, n.MaxDepth, tc.value)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("max_depth %q: expected %v, got %v", tc.depth, tc.want, err)
		}
	}
}

func TestPairsAreSortedByKey(t *testing.T) {
	n, err := config.ValidateAndNormalize(validRaw("https://example.com/repo"))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}
	pairs := n.Pairs()
	if len(pairs) != 7 {
		t.Fatalf("expected 7 output fields, got %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i-1].Key >= pairs[i].Key {
			t.Fatalf("pairs not sorted: %q before %q", pairs[i-1].Key, pairs[i].Key)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	n, err := config.ValidateAndNormalize(validRaw(t.TempDir()))
	if err != nil {
		t.Fatalf("ValidateAndNormalize: %v", err)
	}

	// Feed the printed pairs back through a key=value adapter and revalidate.
	raw := make(map[string]string)
	for _, pair := range n.Pairs() {
		raw[pair.Key] = pair.Value
	}
	again, err := config.ValidateAndNormalize(raw)
	if err != nil {
		t.Fatalf("revalidation failed: %v", err)
	}
	if *again != *n {
		t.Fatalf("normalization not idempotent: %+v vs %+v", again, n)
	}
}
