// SPDX-License-Identifier: MIT

package transport_test

import (
	"testing"

	"github.com/katalvlaran/nwcorner/transport"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogObserver_Debug records one entry per step plus the permuted plan.
func TestLogObserver_Debug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	_, err := transport.AllocatePermuted(refSource, refTarget,
		transport.Permutation{2, 0, 1}, transport.Permutation{2, 1, 0},
		transport.LogObserver(logger)...)
	require.NoError(t, err)

	entries := hook.AllEntries()
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "permuted plan", last.Message)
	assert.Equal(t, transport.Permutation{2, 0, 1}, last.Data["rowPerm"])
	for _, e := range entries[:len(entries)-1] {
		assert.Equal(t, "allocated cell", e.Message)
		assert.Equal(t, log.DebugLevel, e.Level)
	}
}

// TestLogObserver_Silent emits nothing above debug level.
func TestLogObserver_Silent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.InfoLevel)

	_, err := transport.Allocate(refSource, refTarget, transport.LogObserver(log.NewEntry(logger))...)
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}
