package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/domain"
)

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123", "email": body["email"]})
	}))
	defer srv.Close()

	c := New(srv.URL)
	defer c.Close()

	require.NoError(t, c.Login(context.Background(), "jane@example.com", "pw"))
	assert.Equal(t, "tok-123", c.Token())
}

func TestListResumesSendsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume", r.URL.Path)
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.ResumeSummary{
			{ID: "a", Title: "Backend Resume"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok-123"))
	defer c.Close()

	list, err := c.ListResumes(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Backend Resume", list[0].Title)
}

func TestUnauthorizedClearsTokenAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookFired := false
	c := New(srv.URL, WithToken("stale"), OnUnauthorized(func() { hookFired = true }))
	defer c.Close()

	_, err := c.ListResumes(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, hookFired)
	assert.Empty(t, c.Token())
}

func TestGetResume(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/resume/r1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.Resume{ID: "r1", Title: "Backend CV", Content: `{"title":"Backend CV"}`})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	defer c.Close()

	res, err := c.GetResume(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "Backend CV", res.Title)
	assert.NotEmpty(t, res.Content)
}

func TestUpdateResumeRename(t *testing.T) {
	var got domain.ResumeUpdate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "updated"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	defer c.Close()

	require.NoError(t, c.UpdateResume(context.Background(), "r1", domain.ResumeUpdate{Title: "Renamed"}))
	assert.Equal(t, "Renamed", got.Title)
	assert.Empty(t, got.Content)
}

func TestServerErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"failed to list resumes"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithToken("tok"))
	defer c.Close()

	_, err := c.ListResumes(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "failed to list resumes")
}
