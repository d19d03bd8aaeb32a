package config

import "strconv"

// RepoType classifies the repository reference in a job configuration.
type RepoType string

const (
	RepoURL     RepoType = "url"
	RepoLocal   RepoType = "local"
	RepoUnknown RepoType = "unknown"
)

// TestRepoMode selects how a test repository would be obtained.
type TestRepoMode string

const (
	TestRepoNone  TestRepoMode = "none"
	TestRepoLocal TestRepoMode = "local"
	TestRepoClone TestRepoMode = "clone"
)

// ASCIIMode selects the ASCII rendering variant.
type ASCIIMode string

const (
	ASCIINone ASCIIMode = "none"
	ASCIITree ASCIIMode = "tree"
)

// Normalized holds the validated and coerced job configuration. It is only
// ever constructed by ValidateAndNormalize after every rule passed; there is
// no partially valid state.
type Normalized struct {
	PackageName   string       `json:"package_name"`
	RepoURLOrPath string       `json:"repo_url_or_path"`
	RepoType      RepoType     `json:"repo_type"`
	TestRepoMode  TestRepoMode `json:"test_repo_mode"`
	OutputImage   string       `json:"output_image"`
	ASCIIMode     ASCIIMode    `json:"ascii_mode"`
	MaxDepth      int          `json:"max_depth"`
}

// Pair is a single key/value output field.
type Pair struct {
	Key   string
	Value string
}

// Pairs returns the output fields in lexicographic key order.
func (n *Normalized) Pairs() []Pair {
	return []Pair{
		{"ascii_mode", string(n.ASCIIMode)},
		{"max_depth", strconv.Itoa(n.MaxDepth)},
		{"output_image", n.OutputImage},
		{"package_name", n.PackageName},
		{"repo_type", string(n.RepoType)},
		{"repo_url_or_path", n.RepoURLOrPath},
		{"test_repo_mode", string(n.TestRepoMode)},
	}
}
