package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare version", "1.2.3", "v1.2.3"},
		{"v prefix", "v1.2.3", "v1.2.3"},
		{"prerelease", "v1.2.3-rc.1", "v1.2.3-rc.1"},
		{"devel placeholder", "(devel)", ""},
		{"empty", "", ""},
		{"garbage", "not-a-version", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalVersion(tt.input))
		})
	}
}

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/quizforge/quizforge/releases/latest", r.URL.Path)
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/releases/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.3.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.3.0", result.LatestVersion)
	assert.Equal(t, "v1.2.0", result.CurrentVersion)
	assert.Equal(t, "https://example.com/releases/v1.3.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.2.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NewerLocalBuild(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_ServerError(t *testing.T) {
	c := newTestChecker(t, "", http.StatusInternalServerError)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}

func TestCheck_BadTag(t *testing.T) {
	c := newTestChecker(t, "nightly", http.StatusOK)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
