package analyzer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-careercoach-backend/internal/analyzer"

	"github.com/stretchr/testify/assert"
)

func TestParseResume(t *testing.T) {
	ctx := context.Background()

	t.Run("Should send the file as multipart field resume", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/parse-resume", r.URL.Path)

			file, header, err := r.FormFile("resume")
			assert.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "cv.txt", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"fileName":"cv.txt","content":"text","score":80,"parsedData":{"skills":["Go"]}}`))
		}))
		defer srv.Close()

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		result, err := client.ParseResume(ctx, "cv.txt", strings.NewReader("resume body"))

		assert.NoError(t, err)
		assert.Equal(t, 80, result.Score)
		assert.Equal(t, []string{"Go"}, result.ParsedData.Skills)
	})

	t.Run("Should treat success=false as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":false,"message":"could not parse"}`))
		}))
		defer srv.Close()

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		_, err := client.ParseResume(ctx, "cv.txt", strings.NewReader("x"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse")
	})

	t.Run("Should treat non-2xx status as an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		_, err := client.ParseResume(ctx, "cv.txt", strings.NewReader("x"))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status 500")
	})
}

func TestFetchJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("Should pass skills as a csv query parameter", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/jobs", r.URL.Path)
			assert.Equal(t, "Go,SQL", r.URL.Query().Get("skills"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"jobs":[{"title":"Go Developer","company":"Acme"}],"source":"live_data"}`))
		}))
		defer srv.Close()

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		feed, err := client.FetchJobs(ctx, []string{"Go", "SQL"})

		assert.NoError(t, err)
		assert.Len(t, feed.Jobs, 1)
		assert.Equal(t, "live_data", feed.Source)
	})

	t.Run("Should omit the parameter without skills", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.False(t, r.URL.Query().Has("skills"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success":true,"jobs":[]}`))
		}))
		defer srv.Close()

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		_, err := client.FetchJobs(ctx, nil)
		assert.NoError(t, err)
	})

	t.Run("Should error when the service is unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // closed on purpose

		client := analyzer.NewClient(srv.URL, time.Second, nil)
		_, err := client.FetchJobs(ctx, []string{"Go"})
		assert.Error(t, err)
	})
}

func TestFetchCareerPaths(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/career-paths", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"paths":[{"title":"Backend Developer"}],"userSkills":["Go"]}`))
	}))
	defer srv.Close()

	client := analyzer.NewClient(srv.URL, time.Second, nil)
	feed, err := client.FetchCareerPaths(ctx, []string{"Go"})

	assert.NoError(t, err)
	assert.Len(t, feed.Paths, 1)
	assert.Equal(t, []string{"Go"}, feed.UserSkills)
}
