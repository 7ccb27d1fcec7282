package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/jobpages/models"
)

func TestHTTPEngine_Fetch_Success(t *testing.T) {
	var gotQuery, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>Web3 Jobs</title></head><body>listing</body></html>"))
	}))
	defer server.Close()

	e := NewHTTPEngine(5 * time.Second)
	result, err := e.Fetch(context.Background(), &FetchRequest{URL: server.URL + "/?search=python"})
	require.NoError(t, err)

	assert.Equal(t, "python", gotQuery)
	assert.Equal(t, DefaultUserAgent, gotUA)
	assert.Contains(t, result.HTML, "listing")
	assert.Equal(t, "Web3 Jobs", result.Title)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, "http", result.EngineName)
}

func TestHTTPEngine_Fetch_NonHTMLStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("plain body"))
	}))
	defer server.Close()

	result, err := NewHTTPEngine(5*time.Second).Fetch(context.Background(), &FetchRequest{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, "plain body", result.HTML)
}

func TestHTTPEngine_Fetch_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPEngine(5*time.Second).Fetch(context.Background(), &FetchRequest{URL: server.URL})
	require.Error(t, err)

	var fe *models.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, models.ErrCodeHTTPStatus, fe.Code)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPEngine_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	_, err := NewHTTPEngine(50*time.Millisecond).Fetch(context.Background(), &FetchRequest{URL: server.URL})
	require.Error(t, err)

	var fe *models.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, models.ErrCodeTimeout, fe.Code)
}

func TestHTTPEngine_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPEngine(time.Second).Fetch(context.Background(), &FetchRequest{URL: url})
	require.Error(t, err)

	var fe *models.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, models.ErrCodeNetwork, fe.Code)
}

func TestHTTPEngine_Fetch_CustomHeaders(t *testing.T) {
	var gotUA, gotReferer string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotReferer = r.Header.Get("Referer")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	_, err := NewHTTPEngine(time.Second).Fetch(context.Background(), &FetchRequest{
		URL:       server.URL,
		UserAgent: "jobpages-test",
		Headers:   map[string]string{"Referer": "https://example.com/"},
	})
	require.NoError(t, err)
	assert.Equal(t, "jobpages-test", gotUA)
	assert.Equal(t, "https://example.com/", gotReferer)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello", extractTitle("<html><head><title> Hello </title></head></html>"))
	assert.Equal(t, "", extractTitle("<html><head></head></html>"))
	assert.Equal(t, "", extractTitle("<title></title>"))
}
