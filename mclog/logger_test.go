package mclog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-mclib/mcserver/mclog"
)

func TestNew_UnrecognizedLevelFallsBackToInfo(t *testing.T) {
	logger := mclog.New("not-a-level")
	require.NotNil(t, logger)
	// Should not panic and should be usable at Info and below.
	logger.Info("hello")
}

func TestWithField_ReturnsDerivedLogger(t *testing.T) {
	base := mclog.New("debug")
	derived := base.WithField("conn_id", "abc123")
	require.NotNil(t, derived)

	derived.WithError(errors.New("boom")).Error("connection failed")
}

func TestWithFields_AcceptsMultipleKeys(t *testing.T) {
	base := mclog.New("debug")
	derived := base.WithFields(mclog.Fields{
		"remote_addr": "127.0.0.1:12345",
		"phase":       "Play",
	})
	require.NotNil(t, derived)
	derived.Debug("phase transition")
}
