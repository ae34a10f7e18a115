package selfupdate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	// ErrDevBuild means the running binary has no release version to
	// compare against.
	ErrDevBuild = errors.New("cannot check updates for a development build")
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultOwner      = "quizforge"
	defaultRepo       = "quizforge"
	defaultTimeout    = 30 * time.Second
)

// Checker queries GitHub releases for a newer version.
type Checker struct {
	owner      string
	repo       string
	apiBaseURL string
	client     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		c.client.Timeout = d
	}
}

// WithAPIBaseURL overrides the GitHub API base URL, mainly for tests.
func WithAPIBaseURL(url string) Option {
	return func(c *Checker) {
		c.apiBaseURL = url
	}
}

// NewChecker creates a Checker with defaults applied.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:      defaultOwner,
		repo:       defaultRepo,
		apiBaseURL: defaultAPIBaseURL,
		client:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput holds the version currently running.
type CheckInput struct {
	Version string
}

// CheckResult reports whether a newer release exists.
type CheckResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
}

// release is the subset of the GitHub release API response we use.
type release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release tag and compares it to the running
// version using semantic version precedence.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	current := canonicalVersion(input.Version)
	if current == "" {
		return nil, ErrDevBuild
	}

	rel, err := c.latestRelease(ctx)
	if err != nil {
		return nil, err
	}

	latest := canonicalVersion(rel.TagName)
	if latest == "" {
		return nil, fmt.Errorf("release tag %q is not a valid version", rel.TagName)
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(latest, current) > 0,
		CurrentVersion:  current,
		LatestVersion:   latest,
		ReleaseURL:      rel.HTMLURL,
	}, nil
}

func (c *Checker) latestRelease(ctx context.Context) (*release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	return &rel, nil
}

// canonicalVersion normalizes a version string to the "vMAJOR.MINOR.PATCH"
// form semver.Compare expects. Returns "" for unparseable versions,
// including the "(devel)" placeholder.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "(devel)" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
