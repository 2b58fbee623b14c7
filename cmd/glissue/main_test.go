package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/runoshun/glissue/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err    error
		name   string
		output string
		want   int
	}{
		{
			name: "success",
			err:  nil,
			want: 0,
		},
		{
			name:   "interrupted",
			err:    context.Canceled,
			want:   130,
			output: "\n",
		},
		{
			name:   "wrapped interrupt",
			err:    fmt.Errorf("read title: %w", context.Canceled),
			want:   130,
			output: "\n",
		},
		{
			name:   "not a member",
			err:    domain.ErrNotMember,
			want:   1,
			output: "Error: current user is not a member of given project\n",
		},
		{
			name:   "configuration",
			err:    fmt.Errorf("%w: %w: 9", domain.ErrConfiguration, domain.ErrMilestoneNotFound),
			want:   1,
			output: "Error: invalid configuration: no milestone with this iid found: 9\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.want, exitCode(tt.err, &buf))
			assert.Equal(t, tt.output, buf.String())
		})
	}
}

func TestRun_Help(t *testing.T) {
	t.Setenv(domain.ConfigPathEnv, t.TempDir()+"/config.toml")
	assert.Equal(t, 0, run([]string{"--help"}))
}

func TestRun_MissingFlags(t *testing.T) {
	t.Setenv(domain.ConfigPathEnv, t.TempDir()+"/config.toml")
	assert.Equal(t, 1, run(nil))
}
