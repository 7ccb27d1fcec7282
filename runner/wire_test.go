package runner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/use-agent/jobpages/config"
	"github.com/use-agent/jobpages/sources"
)

func TestEngines_Names(t *testing.T) {
	cfg := &config.Config{HTTP: config.HTTPConfig{Timeout: time.Second}}

	var names []string
	for _, e := range Engines(cfg) {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{sources.EngineHTTP, sources.EngineRod, sources.EngineRodStealth}, names)
}

func TestNewFromConfig_Stealth(t *testing.T) {
	cfg := &config.Config{
		Output:  config.OutputConfig{DefaultKeyword: "python", Dir: "pages", IndexPath: "index.html"},
		Browser: config.BrowserConfig{Stealth: true},
	}

	r := NewFromConfig(cfg)

	assert.Equal(t, "python", r.DefaultKeyword())
	for _, src := range r.sources {
		if src.Label == "Web3Career" {
			assert.Equal(t, sources.EngineHTTP, src.Engine)
			continue
		}
		assert.Equal(t, sources.EngineRodStealth, src.Engine)
		_, ok := r.engines[src.Engine]
		assert.True(t, ok)
	}
}
