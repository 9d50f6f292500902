package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pennywise/internal/insight"
)

func TestRenderInsightError(t *testing.T) {
	tests := []struct {
		err  error
		name string
	}{
		{name: "busy", err: insight.ErrBusy},
		{name: "timeout", err: fmt.Errorf("%w after 60s", insight.ErrTimeout)},
		{name: "parse", err: fmt.Errorf("%w: missing analysis", insight.ErrParse)},
		{name: "transport", err: insight.ErrTransport},
		{name: "unknown", err: errors.New("something else")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderInsightError(tt.err)
			require.Error(t, got)
			// Already explained to the user; the exit path must not print
			// the failure again.
			assert.ErrorIs(t, got, errReported)
		})
	}
}

func TestRenderInsightError_CanceledIsNotAFailure(t *testing.T) {
	assert.NoError(t, renderInsightError(context.Canceled))
}
