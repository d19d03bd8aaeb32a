package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// requiredKeys is kept sorted so MissingKeys reports names in order.
var requiredKeys = []string{
	"ascii_mode",
	"max_depth",
	"output_image",
	"package_name",
	"repo_url_or_path",
	"test_repo_mode",
}

// RequiredKeys returns the schema's required key names, sorted.
func RequiredKeys() []string {
	keys := make([]string, len(requiredKeys))
	copy(keys, requiredKeys)
	return keys
}

// ValidateAndNormalize checks a raw key/value map against the fixed schema
// and coerces it into a Normalized value. Validation is strictly fail-fast:
// the first violated rule aborts the whole operation. The rule order is part
// of the contract and must not change.
func ValidateAndNormalize(raw map[string]string) (*Normalized, error) {
	if err := checkRequired(raw); err != nil {
		return nil, err
	}

	n := &Normalized{}
	if err := n.setPackageName(raw); err != nil {
		return nil, err
	}
	if err := n.setRepoSource(raw); err != nil {
		return nil, err
	}
	if err := n.setTestRepoMode(raw); err != nil {
		return nil, err
	}
	if err := n.setOutputImage(raw); err != nil {
		return nil, err
	}
	if err := n.setASCIIMode(raw); err != nil {
		return nil, err
	}
	if err := n.setMaxDepth(raw); err != nil {
		return nil, err
	}
	return n, nil
}

func checkRequired(raw map[string]string) error {
	missing := make([]string, 0, len(requiredKeys))
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingKeys, strings.Join(missing, ", "))
	}
	return nil
}

func (n *Normalized) setPackageName(raw map[string]string) error {
	name := strings.TrimSpace(raw["package_name"])
	if name == "" {
		return fmt.Errorf("%w: package_name", ErrEmptyField)
	}
	n.PackageName = name
	return nil
}

// setRepoSource classifies repo_url_or_path. A value with an http, https, or
// git scheme and a non-empty host is a URL and stays unchanged. Otherwise an
// existing filesystem entry is a local reference and is rewritten to its
// absolute form. Anything else is unknown and stays unchanged.
func (n *Normalized) setRepoSource(raw map[string]string) error {
	value := strings.TrimSpace(raw["repo_url_or_path"])
	if value == "" {
		return fmt.Errorf("%w: repo_url_or_path", ErrEmptyField)
	}

	if parsed, err := url.Parse(value); err == nil && parsed.Host != "" {
		switch parsed.Scheme {
		case "http", "https", "git":
			n.RepoURLOrPath = value
			n.RepoType = RepoURL
			return nil
		}
	}

	if _, err := os.Stat(value); err == nil {
		absolute, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("resolve absolute path for %q: %w", value, err)
		}
		n.RepoURLOrPath = absolute
		n.RepoType = RepoLocal
		return nil
	}

	n.RepoURLOrPath = value
	n.RepoType = RepoUnknown
	return nil
}

func (n *Normalized) setTestRepoMode(raw map[string]string) error {
	mode := strings.ToLower(strings.TrimSpace(raw["test_repo_mode"]))
	switch TestRepoMode(mode) {
	case TestRepoNone, TestRepoLocal, TestRepoClone:
	default:
		return fmt.Errorf("%w: test_repo_mode must be one of none, local, clone (got %q)", ErrInvalidEnum, mode)
	}
	if TestRepoMode(mode) == TestRepoLocal && n.RepoType == RepoUnknown {
		return fmt.Errorf("%w: test_repo_mode is local but repo_url_or_path does not name an existing local path", ErrInconsistentMode)
	}
	n.TestRepoMode = TestRepoMode(mode)
	return nil
}

func (n *Normalized) setOutputImage(raw map[string]string) error {
	image := strings.TrimSpace(raw["output_image"])
	if image == "" {
		return fmt.Errorf("%w: output_image", ErrEmptyField)
	}
	// Leading dots on the basename do not count as an extension separator,
	// so ".png" has no extension while "out.png" does.
	base := strings.TrimLeft(filepath.Base(image), ".")
	if !strings.Contains(base, ".") {
		return fmt.Errorf("%w: output_image must end in a file extension such as .png or .svg (got %q)", ErrMissingExtension, image)
	}
	n.OutputImage = image
	return nil
}

func (n *Normalized) setASCIIMode(raw map[string]string) error {
	mode := strings.ToLower(strings.TrimSpace(raw["ascii_mode"]))
	switch ASCIIMode(mode) {
	case ASCIINone, ASCIITree:
	default:
		return fmt.Errorf("%w: ascii_mode must be one of none, tree (got %q)", ErrInvalidEnum, mode)
	}
	n.ASCIIMode = ASCIIMode(mode)
	return nil
}

func (n *Normalized) setMaxDepth(raw map[string]string) error {
	depth := strings.TrimSpace(raw["max_depth"])
	if depth == "" {
		return fmt.Errorf("%w: max_depth", ErrEmptyField)
	}
	parsed, err := strconv.Atoi(depth)
	if err != nil {
		return fmt.Errorf("%w: max_depth %q", ErrNotAnInteger, depth)
	}
	if parsed < 0 {
		return fmt.Errorf("%w: max_depth must be >= 0 (got %d)", ErrNegativeValue, parsed)
	}
	n.MaxDepth = parsed
	return nil
}
