package call

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/mahbubulalom/voice-reminder/internal/mocks/rabbitmq/handlers/call"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
	"github.com/mahbubulalom/voice-reminder/internal/repository/reminder"
	remindersvc "github.com/mahbubulalom/voice-reminder/internal/service/reminder"
)

func TestHandler_HandleJob_PlacesDueCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockreminderService(ctrl)
	delayedMock := mocks.NewMockdelayPublisher(ctrl)
	h := NewHandler(serviceMock, delayedMock)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	rem := model.Reminder{
		ID:            id,
		Status:        model.StatusScheduled,
		AppointmentAt: time.Now().Add(2 * time.Hour),
	}
	job := queue.CallJob{ReminderID: id, AppointmentAt: rem.AppointmentAt}

	serviceMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	serviceMock.EXPECT().Eligibility(rem, gomock.Any()).Return(remindersvc.Decision{PlaceNow: true})
	serviceMock.EXPECT().AttemptCall(gomock.Any(), strategy, id).Return(nil)

	h.HandleJob(context.Background(), job, strategy)
}

func TestHandler_HandleJob_DefersEarlyJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockreminderService(ctrl)
	delayedMock := mocks.NewMockdelayPublisher(ctrl)
	h := NewHandler(serviceMock, delayedMock)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	rem := model.Reminder{
		ID:            id,
		Status:        model.StatusScheduled,
		AppointmentAt: time.Now().Add(72 * time.Hour),
	}
	job := queue.CallJob{ReminderID: id, AppointmentAt: rem.AppointmentAt}

	serviceMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	serviceMock.EXPECT().
		Eligibility(rem, gomock.Any()).
		Return(remindersvc.Decision{RetryAt: rem.AppointmentAt.Add(-24 * time.Hour)})
	delayedMock.EXPECT().PublishDelayed(job, strategy).Return(nil)

	h.HandleJob(context.Background(), job, strategy)
}

func TestHandler_HandleJob_DropsUnknownReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockreminderService(ctrl)
	delayedMock := mocks.NewMockdelayPublisher(ctrl)
	h := NewHandler(serviceMock, delayedMock)

	id := uuid.New()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	job := queue.CallJob{ReminderID: id}

	serviceMock.EXPECT().
		GetReminderByID(gomock.Any(), id).
		Return(model.Reminder{}, reminder.ErrReminderNotFound)

	h.HandleJob(context.Background(), job, strategy)
}
