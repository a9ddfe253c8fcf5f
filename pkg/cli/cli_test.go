package cli_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/hookline/pkg/cli"
)

func TestRun_Translate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "tag push payload",
			args: []string{"hookline", "translate", "--event", "Tag Push Hook", "--channel", "dev", "--input", filepath.Join("testdata", "tag_push.json")},
		},
		{
			name: "channel with leading hash",
			args: []string{"hookline", "translate", "--event", "Tag Push Hook", "--channel", "#dev", "--input", filepath.Join("testdata", "tag_push.json")},
		},
		{
			name: "unsupported event prints null",
			args: []string{"hookline", "translate", "--event", "Wiki Page Hook", "--input", filepath.Join("testdata", "tag_push.json")},
		},
		{
			name:    "missing payload file",
			args:    []string{"hookline", "translate", "--event", "Push Hook", "--input", filepath.Join(t.TempDir(), "missing.json")},
			wantErr: true,
		},
		{
			name:    "missing event flag",
			args:    []string{"hookline", "translate", "--input", filepath.Join("testdata", "tag_push.json")},
			wantErr: true,
		},
		{
			name:    "invalid log level",
			args:    []string{"hookline", "--log-level", "verbose", "translate", "--event", "Push Hook"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cli.Run(context.Background(), tt.args)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}
