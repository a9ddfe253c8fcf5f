package config

import (
	"bytes"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// File is the optional TOML configuration file. Flags and environment
// variables take precedence over its values.
//
//	[server]
//	addr = "0.0.0.0:8080"
//
//	[gitlab]
//	webhook_token = "..."
//
//	[forward]
//	url = "https://chat.example.com/hooks/..."
type File struct {
	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
	GitLab struct {
		WebhookToken string `toml:"webhook_token" masq:"secret"`
	} `toml:"gitlab"`
	Forward struct {
		URL string `toml:"url" masq:"secret"`
	} `toml:"forward"`
}

// LoadFile reads a TOML configuration file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var f File
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &f, nil
}
