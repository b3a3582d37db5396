package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPayload = `{
	"data": [
		{
			"job_id": "abc-1",
			"job_title": "Data Analyst",
			"employer_name": "Acme",
			"job_location": "Hong Kong",
			"job_description": "<p>Analyze <b>data</b> pipelines.</p>",
			"job_required_skills": ["python", "sql"],
			"job_apply_link": "https://example.com/jobs/abc-1",
			"job_posted_at": "2026-08-01"
		},
		{
			"job_id": "abc-2",
			"job_title": "Data Engineer",
			"employer_name": "Globex",
			"job_location": "Remote",
			"job_description": "Build pipelines.",
			"job_apply_link": "https://example.com/jobs/abc-2"
		}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", "test-host", nil)
}

func TestSearch_ParsesListings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-rapidapi-key"))
		assert.Equal(t, "test-host", r.Header.Get("x-rapidapi-host"))
		assert.Equal(t, "data analyst", r.URL.Query().Get("query"))
		assert.Equal(t, "Hong Kong", r.URL.Query().Get("location"))
		_, _ = w.Write([]byte(validPayload))
	})

	listings := client.Search(context.Background(), "data analyst", "Hong Kong", 10)
	require.Len(t, listings, 2)

	assert.Equal(t, "abc-1", listings[0].ID)
	assert.Equal(t, "Data Analyst", listings[0].Title)
	assert.Equal(t, "Acme", listings[0].Company)
	assert.Equal(t, []string{"python", "sql"}, listings[0].RequiredSkills)
	assert.Empty(t, listings[1].RequiredSkills)
}

func TestSearch_StripsHTMLFromDescriptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validPayload))
	})

	listings := client.Search(context.Background(), "data analyst", "", 10)
	require.Len(t, listings, 2)
	assert.Equal(t, "Analyze data pipelines.", listings[0].Description)
}

func TestSearch_LimitCapsListings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(validPayload))
	})

	listings := client.Search(context.Background(), "data analyst", "", 1)
	require.Len(t, listings, 1)
	assert.Equal(t, "abc-1", listings[0].ID)
}

func TestSearch_Non200IsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	listings := client.Search(context.Background(), "data analyst", "", 10)
	assert.Empty(t, listings)
}

func TestSearch_SchemaViolationIsEmpty(t *testing.T) {
	// Items must carry job_id and job_title.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"employer_name": "Acme"}]}`))
	})

	listings := client.Search(context.Background(), "data analyst", "", 10)
	assert.Empty(t, listings)
}

func TestSearch_MalformedJSONIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [`))
	})

	listings := client.Search(context.Background(), "data analyst", "", 10)
	assert.Empty(t, listings)
}

func TestSearch_TransportFailureIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := New(srv.URL, "test-key", "test-host", nil)

	listings := client.Search(context.Background(), "data analyst", "", 10)
	assert.Empty(t, listings)
}
