package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingEvent_WireFormat(t *testing.T) {
	b, err := json.Marshal(ListingEvent{Action: ActionUpdate, PropertyID: "p-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"update","property_id":"p-1"}`, string(b))
}

func TestRecordingPublisher(t *testing.T) {
	r := &RecordingPublisher{}
	require.NoError(t, r.Publish(context.Background(), ListingEvent{Action: ActionCreate, PropertyID: "p-1"}))
	assert.Equal(t, []ListingEvent{{Action: ActionCreate, PropertyID: "p-1"}}, r.Snapshot())

	assert.NoError(t, NoopPublisher{}.Publish(context.Background(), ListingEvent{}))
}
