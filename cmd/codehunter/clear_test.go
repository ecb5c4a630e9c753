package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/codehunter"
	main "github.com/fwojciec/codehunter/cmd/codehunter"
	"github.com/fwojciec/codehunter/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &bytes.Buffer{}, Stderr: stderr, History: &mock.HistoryService{}}

		err := (&main.ClearCmd{}).Run(deps)

		assert.Equal(t, codehunter.EINVALID, codehunter.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("clears history with force", func(t *testing.T) {
		t.Parallel()

		cleared := false
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			History: &mock.HistoryService{
				EntriesFn: func() []codehunter.HistoryEntry { return []codehunter.HistoryEntry{sampleEntry} },
				ClearFn: func(_ context.Context) error {
					cleared = true
					return nil
				},
			},
		}

		err := (&main.ClearCmd{Force: true}).Run(deps)

		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Contains(t, stdout.String(), "Cleared 1 history entries")
	})
}
