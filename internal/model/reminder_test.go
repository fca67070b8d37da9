package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusScheduled.Terminal())
	assert.False(t, StatusSent.Terminal())
	assert.True(t, StatusConfirmed.Terminal())
	assert.True(t, StatusRescheduled.Terminal())
	assert.True(t, StatusFailed.Terminal())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"scheduled to sent", StatusScheduled, StatusSent, true},
		{"scheduled to failed", StatusScheduled, StatusFailed, true},
		{"scheduled to confirmed", StatusScheduled, StatusConfirmed, false},
		{"sent to confirmed", StatusSent, StatusConfirmed, true},
		{"sent to rescheduled", StatusSent, StatusRescheduled, true},
		{"sent to failed", StatusSent, StatusFailed, true},
		{"sent to scheduled", StatusSent, StatusScheduled, false},
		{"confirmed to failed", StatusConfirmed, StatusFailed, false},
		{"rescheduled to sent", StatusRescheduled, StatusSent, false},
		{"failed to sent", StatusFailed, StatusSent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestDeliveryFailure(t *testing.T) {
	assert.True(t, EventBusy.DeliveryFailure())
	assert.True(t, EventNoAnswer.DeliveryFailure())
	assert.True(t, EventFailed.DeliveryFailure())
	assert.False(t, EventCompleted.DeliveryFailure())
	assert.False(t, EventRinging.DeliveryFailure())
	assert.False(t, EventAnswered.DeliveryFailure())
}
