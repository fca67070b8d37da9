package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/mahbubulalom/voice-reminder/internal/metrics"
	mocks "github.com/mahbubulalom/voice-reminder/internal/mocks/service/reminder"
	"github.com/mahbubulalom/voice-reminder/internal/model"
	"github.com/mahbubulalom/voice-reminder/internal/rabbitmq/queue"
)

const (
	testBaseURL  = "http://localhost:8080"
	testLeadTime = 24 * time.Hour
)

// promauto registers into the default registry, so one instance is shared
// across the package's tests.
var testMetrics = metrics.New()

func newTestService(
	repo reminderRepository,
	q callPublisher,
	gateway callGateway,
	generator scriptGenerator,
	c cache,
) *Service {
	return NewService(repo, q, gateway, generator, c, testMetrics, testBaseURL, testLeadTime, time.Second)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"already normalized", "+15551234567", "+15551234567", false},
		{"formatted", "+1 (555) 123-4567", "+15551234567", false},
		{"dots and spaces", "+44 20.7946.0958", "+442079460958", false},
		{"missing country code", "5551234567", "", true},
		{"letters", "+1555CALLNOW", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CreateReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	queueMock := mocks.NewMockcallPublisher(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := newTestService(repoMock, queueMock, nil, nil, cacheMock)

	reminderID := uuid.New()
	appointmentAt := time.Now().Add(48 * time.Hour)
	rem := model.Reminder{
		PatientName:   "John Doe",
		PhoneNumber:   "+1 (555) 123-4567",
		AppointmentAt: appointmentAt,
	}
	strategy := retry.Strategy{}

	stored := rem
	stored.PhoneNumber = "+15551234567"
	stored.Status = model.StatusScheduled

	repoMock.EXPECT().CreateReminder(gomock.Any(), stored).Return(reminderID, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, reminderID.String(), string(model.StatusScheduled)).Return(nil)
	queueMock.EXPECT().Publish(queue.CallJob{ReminderID: reminderID, AppointmentAt: appointmentAt}, strategy).Return(nil)

	id, err := svc.CreateReminder(context.Background(), strategy, rem)
	assert.NoError(t, err)
	assert.Equal(t, reminderID, id)
}

func TestService_CreateReminder_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := newTestService(nil, nil, nil, nil, nil)
	strategy := retry.Strategy{}

	tests := []struct {
		name string
		rem  model.Reminder
	}{
		{"bad phone", model.Reminder{
			PatientName:   "John Doe",
			PhoneNumber:   "not-a-number",
			AppointmentAt: time.Now().Add(time.Hour),
		}},
		{"missing name", model.Reminder{
			PhoneNumber:   "+15551234567",
			AppointmentAt: time.Now().Add(time.Hour),
		}},
		{"appointment in the past", model.Reminder{
			PatientName:   "John Doe",
			PhoneNumber:   "+15551234567",
			AppointmentAt: time.Now().Add(-time.Hour),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReminder(context.Background(), strategy, tt.rem)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestService_Eligibility(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil)
	now := time.Now()

	// Appointment far out: defer until one lead time before it.
	far := model.Reminder{AppointmentAt: now.Add(48 * time.Hour)}
	d := svc.Eligibility(far, now)
	assert.False(t, d.PlaceNow)
	assert.Equal(t, far.AppointmentAt.Add(-testLeadTime), d.RetryAt)

	// Appointment inside the lead window: place now.
	near := model.Reminder{AppointmentAt: now.Add(2 * time.Hour)}
	d = svc.Eligibility(near, now)
	assert.True(t, d.PlaceNow)
	assert.True(t, d.RetryAt.IsZero())

	// Exactly on the boundary counts as due.
	edge := model.Reminder{AppointmentAt: now.Add(testLeadTime)}
	d = svc.Eligibility(edge, now)
	assert.True(t, d.PlaceNow)
}

func TestService_AttemptCall_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	gatewayMock := mocks.NewMockcallGateway(ctrl)
	generatorMock := mocks.NewMockscriptGenerator(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := newTestService(repoMock, nil, gatewayMock, generatorMock, cacheMock)

	id := uuid.New()
	callRef := "CA1234567890"
	strategy := retry.Strategy{}
	rem := model.Reminder{
		ID:            id,
		PatientName:   "John Doe",
		PhoneNumber:   "+15551234567",
		AppointmentAt: time.Now().Add(2 * time.Hour),
		Status:        model.StatusScheduled,
	}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	generatorMock.EXPECT().
		ReminderScript(gomock.Any(), rem.PatientName, rem.AppointmentAt, rem.Message).
		Return("Hello John, you have an appointment.", nil)
	gatewayMock.EXPECT().
		PlaceCall(gomock.Any(), rem.PhoneNumber, testBaseURL+"/webhooks/voice/answer", testBaseURL+"/webhooks/voice/status").
		Return(callRef, nil)
	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), strategy, "script:"+callRef, "Hello John, you have an appointment.").
		Return(nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), id, callRef).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), string(model.StatusSent)).Return(nil)

	err := svc.AttemptCall(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_AttemptCall_GenerationFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	gatewayMock := mocks.NewMockcallGateway(ctrl)
	generatorMock := mocks.NewMockscriptGenerator(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := newTestService(repoMock, nil, gatewayMock, generatorMock, cacheMock)

	id := uuid.New()
	callRef := "CA1234567890"
	strategy := retry.Strategy{}
	rem := model.Reminder{
		ID:            id,
		PatientName:   "John Doe",
		PhoneNumber:   "+15551234567",
		AppointmentAt: time.Now().Add(2 * time.Hour),
		Status:        model.StatusScheduled,
	}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	generatorMock.EXPECT().
		ReminderScript(gomock.Any(), rem.PatientName, rem.AppointmentAt, rem.Message).
		Return("", errors.New("generation unavailable"))
	gatewayMock.EXPECT().
		PlaceCall(gomock.Any(), rem.PhoneNumber, gomock.Any(), gomock.Any()).
		Return(callRef, nil)
	cacheMock.EXPECT().
		SetWithRetry(gomock.Any(), strategy, "script:"+callRef, FallbackScript(rem)).
		Return(nil)
	repoMock.EXPECT().MarkSent(gomock.Any(), id, callRef).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), string(model.StatusSent)).Return(nil)

	err := svc.AttemptCall(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_AttemptCall_PlacementFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	gatewayMock := mocks.NewMockcallGateway(ctrl)
	generatorMock := mocks.NewMockscriptGenerator(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)

	svc := newTestService(repoMock, nil, gatewayMock, generatorMock, cacheMock)

	id := uuid.New()
	strategy := retry.Strategy{}
	rem := model.Reminder{
		ID:            id,
		PatientName:   "John Doe",
		PhoneNumber:   "+15551234567",
		AppointmentAt: time.Now().Add(2 * time.Hour),
		Status:        model.StatusScheduled,
	}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	generatorMock.EXPECT().
		ReminderScript(gomock.Any(), rem.PatientName, rem.AppointmentAt, rem.Message).
		Return("script", nil)
	gatewayMock.EXPECT().
		PlaceCall(gomock.Any(), rem.PhoneNumber, gomock.Any(), gomock.Any()).
		Return("", errors.New("provider refused"))
	repoMock.EXPECT().UpdateStatus(gomock.Any(), id, model.StatusScheduled, model.StatusFailed).Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), string(model.StatusFailed)).Return(nil)

	err := svc.AttemptCall(context.Background(), strategy, id)
	assert.Error(t, err)
}

func TestService_AttemptCall_SkipsNonScheduled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	svc := newTestService(repoMock, nil, nil, nil, nil)

	id := uuid.New()
	rem := model.Reminder{ID: id, Status: model.StatusConfirmed}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)

	err := svc.AttemptCall(context.Background(), retry.Strategy{}, id)
	assert.NoError(t, err)
}

func TestService_GetReminderStatusByID_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	svc := newTestService(nil, nil, nil, nil, cacheMock)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return(string(model.StatusSent), nil)

	status, err := svc.GetReminderStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetReminderStatusByID_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	cacheMock := mocks.NewMockcache(ctrl)
	svc := newTestService(repoMock, nil, nil, nil, cacheMock)

	id := uuid.New()
	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, id.String()).Return("", redis.Nil)
	repoMock.EXPECT().GetReminderStatusByID(gomock.Any(), id).Return(model.StatusConfirmed, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, id.String(), string(model.StatusConfirmed)).Return(nil)

	status, err := svc.GetReminderStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, status)
}

func TestService_EnqueueCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	queueMock := mocks.NewMockcallPublisher(ctrl)
	svc := newTestService(repoMock, queueMock, nil, nil, nil)

	id := uuid.New()
	strategy := retry.Strategy{}
	rem := model.Reminder{
		ID:            id,
		Status:        model.StatusScheduled,
		AppointmentAt: time.Now().Add(time.Hour),
	}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)
	queueMock.EXPECT().Publish(queue.CallJob{ReminderID: id, AppointmentAt: rem.AppointmentAt}, strategy).Return(nil)

	err := svc.EnqueueCall(context.Background(), strategy, id)
	assert.NoError(t, err)
}

func TestService_EnqueueCall_RejectsResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMockreminderRepository(ctrl)
	svc := newTestService(repoMock, nil, nil, nil, nil)

	id := uuid.New()
	rem := model.Reminder{ID: id, Status: model.StatusConfirmed}

	repoMock.EXPECT().GetReminderByID(gomock.Any(), id).Return(rem, nil)

	err := svc.EnqueueCall(context.Background(), retry.Strategy{}, id)
	assert.Error(t, err)
}
