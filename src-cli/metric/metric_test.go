package metric

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"evman/src-cli/model"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := New()

	m.ObserveOperation("event", "create", nil)
	m.ObserveOperation("event", "create", nil)
	m.ObserveOperation("event", "create", fmt.Errorf("wrapped: %w", model.ErrValidation))
	m.ObserveOperation("attendee", "edit", model.ErrNotFound)
	m.ObserveOperation("attendee", "edit", model.ErrInvalidChoice)
	m.ObserveOperation("attendee", "delete", os.ErrPermission)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("event", "create", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("event", "create", "validation")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("attendee", "edit", "not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("attendee", "edit", "invalid_choice")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("attendee", "delete", "error")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.SetCollectionSize(3, 2)
	m.ObserveLoad(1500 * time.Microsecond)
	m.ObserveSave(2 * time.Millisecond)

	path := filepath.Join(t.TempDir(), "evman.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "evman_events 3")
	assert.Contains(t, text, "evman_attendees 2")
	assert.Contains(t, text, "evman_load_microsec 1500")
	assert.Contains(t, text, "evman_save_microsec 2000")
}
