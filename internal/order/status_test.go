package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "CONFIRMED", "PREPARING", "READY", "DELIVERED", "CANCELLED"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	_, err := ParseStatus("SHIPPED")
	assert.Error(t, err)
	_, err = ParseStatus("pending")
	assert.Error(t, err, "statuses are case sensitive")
}

func TestStatusOngoing(t *testing.T) {
	assert.True(t, StatusPending.Ongoing())
	assert.True(t, StatusConfirmed.Ongoing())
	assert.True(t, StatusPreparing.Ongoing())
	assert.True(t, StatusReady.Ongoing())
	assert.False(t, StatusDelivered.Ongoing())
	assert.False(t, StatusCancelled.Ongoing())
}

func TestBucketPreservesOrder(t *testing.T) {
	in := []Order{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusDelivered},
		{ID: "3", Status: StatusCancelled},
		{ID: "4", Status: StatusReady},
	}
	ongoing, history := Bucket(in)

	require.Len(t, ongoing, 2)
	assert.Equal(t, "1", ongoing[0].ID)
	assert.Equal(t, "4", ongoing[1].ID)

	require.Len(t, history, 2)
	assert.Equal(t, "2", history[0].ID)
	assert.Equal(t, "3", history[1].ID)
}

func TestBucketEmpty(t *testing.T) {
	ongoing, history := Bucket(nil)
	assert.Empty(t, ongoing)
	assert.Empty(t, history)
}
