package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/use-agent/jobpages/models"
)

func TestRodEngine_Name(t *testing.T) {
	assert.Equal(t, "rod", NewRodEngine(nil, false).Name())
	assert.Equal(t, "rod-stealth", NewRodEngine(nil, true).Name())
}

func TestRodEngine_ForceStealthDoesNotMutateCaller(t *testing.T) {
	var seen bool
	e := NewRodEngine(func(_ context.Context, req *FetchRequest) (*FetchResult, error) {
		seen = req.Stealth
		return &FetchResult{HTML: "<html></html>"}, nil
	}, true)

	req := &FetchRequest{URL: "https://example.com"}
	result, err := e.Fetch(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, seen)
	assert.False(t, req.Stealth)
	assert.Equal(t, "rod-stealth", result.EngineName)
}

func TestRodEngine_WrapsErrors(t *testing.T) {
	launchErr := models.NewFetchError(models.ErrCodeBrowserLaunch, "failed to launch browser", errors.New("no chromium"))
	e := NewRodEngine(func(context.Context, *FetchRequest) (*FetchResult, error) {
		return nil, launchErr
	}, false)

	_, err := e.Fetch(context.Background(), &FetchRequest{URL: "https://example.com"})
	require.Error(t, err)
	assert.ErrorIs(t, err, launchErr)
	assert.Contains(t, err.Error(), "rod: ")
}

func TestRodEngine_NoFetchFunc(t *testing.T) {
	_, err := NewRodEngine(nil, true).Fetch(context.Background(), &FetchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rod-stealth: no browser configured")
}
