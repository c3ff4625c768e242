package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/artem13815/skillpath/pkg/llm"
)

func TestFirstCandidateText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		{name: "nil response", resp: nil, wantErr: llm.ErrNoCandidates},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, wantErr: llm.ErrNoCandidates},
		{
			name:    "candidate without content",
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: llm.ErrNoCandidates,
		},
		{
			name: "content without parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Role: "model"}},
			}},
			wantErr: llm.ErrNoCandidates,
		},
		{
			name: "first part text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "Painter"}, {Text: "ignored"}}}},
				{Content: &genai.Content{Parts: []*genai.Part{{Text: "second candidate"}}}},
			}},
			want: "Painter",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := firstCandidateText(tc.resp)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func newTestClient(t *testing.T, status int, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), Config{APIKey: "test-key", BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	return c
}

func TestGenerate_ReturnsFirstCandidate(t *testing.T) {
	c := newTestClient(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Art therapist"}]}}]}`)

	got, err := c.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "Art therapist", got)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	c := newTestClient(t, http.StatusOK, `{"candidates":[]}`)

	_, err := c.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, llm.ErrNoCandidates)
}

func TestGenerate_ProviderError(t *testing.T) {
	c := newTestClient(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)

	_, err := c.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, llm.ErrNoCandidates)
}

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestNew_DefaultModel(t *testing.T) {
	c, err := New(context.Background(), Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, c.Model)
}
