package schemagen_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	schemagen "github.com/chirino/graphql-schemagen"
	"github.com/chirino/graphql-schemagen/log"
	"github.com/chirino/graphql-schemagen/naming"
)

func TestReadConfig(t *testing.T) {
	cfg, err := schemagen.ReadConfig([]byte(`
naming: relay
delimiter: __
inputSuffix: Input
rootPackages:
  - sync
  - "example.com/base/**"
log:
  level: debug
  json: true
`))
	require.NoError(t, err)
	assert.Equal(t, schemagen.RelayNaming, cfg.Naming)
	assert.Equal(t, "Input", cfg.InputSuffix)
	assert.Equal(t, []string{"sync", "example.com/base/**"}, cfg.RootPackages)
	assert.Equal(t, log.DebugLevel, cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, os.Stderr, cfg.Log.Output)
	assert.Equal(t, naming.Relay{Delimiter: "__"}, cfg.NamingStrategy())
}

func TestReadConfigDefaults(t *testing.T) {
	cfg, err := schemagen.ReadConfig([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, schemagen.DefaultConfig(), cfg)
	assert.Equal(t, naming.Simple{Delimiter: "_"}, cfg.NamingStrategy())
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		expected string
	}{
		{"naming", "naming: camel", "'Naming' failed on the 'oneof' tag"},
		{"delimiter", "delimiter: .", "'Delimiter' failed on the 'excludesall' tag"},
		{"root package", "rootPackages: ['']", "'RootPackages[0]' failed on the 'required' tag"},
		{"log level", "log: {level: loud}", "'Level' failed on the 'oneof' tag"},
		{"syntax", "naming: [", "invalid configuration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schemagen.ReadConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}
