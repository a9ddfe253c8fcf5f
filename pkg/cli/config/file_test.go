package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookline/pkg/cli/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hookline.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
[server]
addr = "0.0.0.0:9090"

[gitlab]
webhook_token = "s3cret"

[forward]
url = "https://chat.example.com/hooks/abc"
`)

	f, err := config.LoadFile(path)
	gt.NoError(t, err)
	gt.Value(t, f.Server.Addr).Equal("0.0.0.0:9090")
	gt.Value(t, f.GitLab.WebhookToken).Equal("s3cret")
	gt.Value(t, f.Forward.URL).Equal("https://chat.example.com/hooks/abc")
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeFile(t, `
[server]
port = 8080
`)

	_, err := config.LoadFile(path)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to parse config file")
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	gt.Error(t, err)
}
