package config

import (
	_ "embed"
	"errors"
)

//go:embed data/config.toml
var defaultConfig []byte

//go:embed data/tags.toml
var defaultTagData []byte

//go:embed data/rules.toml
var defaultRuleData []byte

//go:embed data/feeds.toml
var defaultFeedData []byte

// GetDefaultConfigContent returns the embedded built-in defaults, which
// init writes out as a starting config file.
func GetDefaultConfigContent() string {
	return string(defaultConfig)
}

// rawBytesProvider implements koanf's Provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
