package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SubmitReport(t *testing.T) {
	t.Run("sends multipart form with attachments", func(t *testing.T) {
		tmpDir := t.TempDir()
		first := filepath.Join(tmpDir, "evidence.txt")
		second := filepath.Join(tmpDir, "notes.txt")
		require.NoError(t, os.WriteFile(first, []byte("first file"), 0600))
		require.NoError(t, os.WriteFile(second, []byte("second file"), 0600))

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/voice/reports/", r.URL.Path)
			assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Broken AC", r.FormValue("title"))
			assert.Equal(t, "infraestrutura", r.FormValue("category"))

			f0, header0, err := r.FormFile("attachment_0")
			require.NoError(t, err)
			defer f0.Close()
			assert.Equal(t, "evidence.txt", header0.Filename)

			_, _, err = r.FormFile("attachment_1")
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":7,"title":"Broken AC","status":"open"}`))
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, staticToken("abc"))
		report, err := client.SubmitReport(context.Background(), ReportSubmission{
			Title:       "Broken AC",
			Content:     "The AC on floor 3 has been broken for a week.",
			Category:    "infraestrutura",
			Attachments: []string{first, second},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), report.ID)
	})

	t.Run("works with no attachments", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "No feedback culture", r.FormValue("title"))
			_, _, err := r.FormFile("attachment_0")
			assert.Error(t, err)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":8,"status":"open"}`))
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, staticToken("abc"))
		report, err := client.SubmitReport(context.Background(), ReportSubmission{
			Title:    "No feedback culture",
			Content:  "Feedback only happens in annual reviews.",
			Category: "gestao",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(8), report.ID)
	})

	t.Run("missing attachment file fails before the request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		client := New(Config{BaseURL: server.URL}, staticToken("abc"))
		_, err := client.SubmitReport(context.Background(), ReportSubmission{
			Title:       "x",
			Content:     "y",
			Category:    "z",
			Attachments: []string{filepath.Join(t.TempDir(), "missing.txt")},
		})
		require.Error(t, err)
		assert.Zero(t, requests)
	})
}
