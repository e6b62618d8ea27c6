package mail

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

func summary() OrderSummary {
	return OrderSummary{
		ID:          "9b2f5ff4-2b1e-4f22-8a96-5f3c1f2f2e7b",
		TotalAmount: "123.50",
		Items: []SummaryItem{
			{Name: "Sandwich", Quantity: 2},
			{Name: "Juice", Quantity: 1},
		},
	}
}

func TestSendSkippedWithoutCredentials(t *testing.T) {
	sent := 0
	d := NewDispatcher(Options{Host: "smtp.example.com", Port: 587})
	d.send = func(m *gomail.Message) error { sent++; return nil }

	res := d.SendOrderNotification("store@campus.edu", summary())

	assert.True(t, res.Success)
	assert.True(t, res.Skipped)
	assert.Empty(t, res.MessageID)
	assert.Equal(t, 0, sent, "no dispatch without credentials")
}

func TestSendComposesOrderMail(t *testing.T) {
	var got *gomail.Message
	d := NewDispatcher(Options{
		Host: "smtp.example.com", Port: 587,
		Username: "user", Password: "pass",
		From: "noreply@campus.edu", BaseURL: "https://campus.example.com/",
	})
	d.send = func(m *gomail.Message) error { got = m; return nil }

	res := d.SendOrderNotification("store@campus.edu", summary())

	require.True(t, res.Success)
	assert.False(t, res.Skipped)
	assert.True(t, strings.HasPrefix(res.MessageID, "<"))
	require.NotNil(t, got)
	assert.Equal(t, []string{"store@campus.edu"}, got.GetHeader("To"))
	// subject carries the short order reference, last six characters of the id
	assert.Equal(t, []string{"New Order Received: #2f2e7b"}, got.GetHeader("Subject"))

	var body strings.Builder
	_, err := got.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "2x Sandwich")
	assert.Contains(t, body.String(), "1x Juice")
	assert.Contains(t, body.String(), "123.50")
}

func TestSendFailureIsStructured(t *testing.T) {
	d := NewDispatcher(Options{Username: "user", Password: "pass", From: "noreply@campus.edu"})
	d.send = func(m *gomail.Message) error { return errors.New("smtp down") }

	res := d.SendOrderNotification("store@campus.edu", summary())

	assert.False(t, res.Success)
	assert.False(t, res.Skipped)
	assert.EqualError(t, res.Err, "smtp down")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "2f2e7b", summary().ShortID())
	assert.Equal(t, "ab12", OrderSummary{ID: "ab12"}.ShortID())
}
