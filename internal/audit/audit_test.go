package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/rental-marketplace/internal/models"
	"github.com/BruksfildServices01/rental-marketplace/internal/testutil"
)

func TestDispatcher_WritesRows(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	d := NewDispatcher(New(db))

	d.Dispatch(Event{
		ProfileID: "u1",
		Action:    "booking_created",
		Entity:    "booking",
		EntityID:  "b1",
		Metadata:  map[string]any{"order_total": 330},
	})
	d.Close()

	var logs []models.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "booking_created", logs[0].Action)
	assert.Equal(t, "b1", logs[0].EntityID)
	assert.JSONEq(t, `{"order_total":330}`, string(logs[0].Metadata))
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: "x"}) })
}
