package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/intervueapp/intervue/internal/events"
	"github.com/intervueapp/intervue/internal/models"
	"github.com/intervueapp/intervue/internal/utils"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockInterviewRepo struct {
	byID       map[primitive.ObjectID]*models.Interview
	byCallID   map[string]*models.Interview
	listCalls  int
	byCandCall int
}

func newMockInterviewRepo() *mockInterviewRepo {
	return &mockInterviewRepo{
		byID:     map[primitive.ObjectID]*models.Interview{},
		byCallID: map[string]*models.Interview{},
	}
}

func (m *mockInterviewRepo) add(iv *models.Interview) {
	if iv.ID.IsZero() {
		iv.ID = primitive.NewObjectID()
	}
	m.byID[iv.ID] = iv
	m.byCallID[iv.StreamCallID] = iv
}

func (m *mockInterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	if _, ok := m.byCallID[iv.StreamCallID]; ok {
		return utils.ErrDuplicate
	}
	m.add(iv)
	return nil
}

func (m *mockInterviewRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	if iv, ok := m.byID[id]; ok {
		cp := *iv
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (m *mockInterviewRepo) GetByStreamCallID(ctx context.Context, callID string) (*models.Interview, error) {
	if iv, ok := m.byCallID[callID]; ok {
		cp := *iv
		return &cp, nil
	}
	return nil, utils.ErrNotFound
}

func (m *mockInterviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	m.listCalls++
	var out []models.Interview
	for _, iv := range m.byID {
		out = append(out, *iv)
	}
	return out, nil
}

func (m *mockInterviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.Interview, error) {
	m.byCandCall++
	var out []models.Interview
	for _, iv := range m.byID {
		if iv.CandidateID == candidateID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (m *mockInterviewRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.InterviewStatus, endTime int64) (*models.Interview, error) {
	iv, ok := m.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	iv.Status = status
	if endTime > 0 {
		iv.EndTime = endTime
	}
	cp := *iv
	return &cp, nil
}

type recordingPublisher struct {
	events []events.InterviewStatusEvent
}

func (p *recordingPublisher) InterviewStatusChanged(ctx context.Context, ev events.InterviewStatusEvent) error {
	p.events = append(p.events, ev)
	return nil
}

type failingPublisher struct{}

func (failingPublisher) InterviewStatusChanged(ctx context.Context, ev events.InterviewStatusEvent) error {
	return errors.New("redis down")
}

func TestInterviewService_Schedule(t *testing.T) {
	repo := newMockInterviewRepo()
	svc := NewInterviewService(repo, nil, nil)

	scheduler := primitive.NewObjectID().Hex()
	candidate := primitive.NewObjectID().Hex()

	in := ScheduleInterviewInput{
		Title:       "Backend round 1",
		StartTime:   time.Now().Add(time.Hour).UnixMilli(),
		CandidateID: candidate,
	}

	iv, err := svc.Schedule(context.Background(), scheduler, models.RoleInterviewer, in)
	require.NoError(t, err)
	require.Equal(t, models.StatusUpcoming, iv.Status)
	require.NotEmpty(t, iv.StreamCallID)
	// the scheduler is always on the panel
	require.Contains(t, iv.InterviewerIDs, scheduler)
}

func TestInterviewService_Schedule_KeepsSchedulerInPanel(t *testing.T) {
	svc := NewInterviewService(newMockInterviewRepo(), nil, nil)

	scheduler := "sched-1"
	other := "other-1"

	iv, err := svc.Schedule(context.Background(), scheduler, models.RoleAdmin, ScheduleInterviewInput{
		Title:          "Panel round",
		StartTime:      time.Now().Add(time.Hour).UnixMilli(),
		CandidateID:    "cand-1",
		InterviewerIDs: []string{other},
	})
	require.NoError(t, err)
	require.Contains(t, iv.InterviewerIDs, scheduler)
	require.Contains(t, iv.InterviewerIDs, other)
}

func TestInterviewService_Schedule_Authorization(t *testing.T) {
	svc := NewInterviewService(newMockInterviewRepo(), nil, nil)

	_, err := svc.Schedule(context.Background(), "u1", models.RoleCandidate, ScheduleInterviewInput{
		Title:       "nope",
		StartTime:   time.Now().UnixMilli(),
		CandidateID: "c1",
	})
	require.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestInterviewService_Schedule_Validation(t *testing.T) {
	svc := NewInterviewService(newMockInterviewRepo(), nil, nil)

	tests := []struct {
		name string
		in   ScheduleInterviewInput
	}{
		{"missing title", ScheduleInterviewInput{StartTime: 1, CandidateID: "c"}},
		{"missing start time", ScheduleInterviewInput{Title: "t", CandidateID: "c"}},
		{"missing candidate", ScheduleInterviewInput{Title: "t", StartTime: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Schedule(context.Background(), "u1", models.RoleInterviewer, tt.in)
			require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestInterviewService_Schedule_DuplicateCallID(t *testing.T) {
	repo := newMockInterviewRepo()
	svc := NewInterviewService(repo, nil, nil)

	in := ScheduleInterviewInput{
		Title:        "a",
		StartTime:    1,
		CandidateID:  "c",
		StreamCallID: "call-1",
	}
	_, err := svc.Schedule(context.Background(), "u1", models.RoleInterviewer, in)
	require.NoError(t, err)

	_, err = svc.Schedule(context.Background(), "u2", models.RoleInterviewer, in)
	require.True(t, utils.IsCode(err, utils.CodeConflict))
}

func TestInterviewService_ListFor_RoleFiltering(t *testing.T) {
	repo := newMockInterviewRepo()
	repo.add(&models.Interview{Title: "mine", CandidateID: "cand-1", StreamCallID: "a"})
	repo.add(&models.Interview{Title: "other", CandidateID: "cand-2", StreamCallID: "b"})

	svc := NewInterviewService(repo, nil, nil)

	all, err := svc.ListFor(context.Background(), "cand-1", models.RoleInterviewer)
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := svc.ListFor(context.Background(), "cand-1", models.RoleCandidate)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "mine", own[0].Title)
}

func TestInterviewService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    models.InterviewStatus
		to      models.InterviewStatus
		allowed bool
	}{
		{models.StatusUpcoming, models.StatusCompleted, true},
		{models.StatusPending, models.StatusCompleted, true},
		{models.StatusCompleted, models.StatusSucceeded, true},
		{models.StatusCompleted, models.StatusFailed, true},
		{models.StatusUpcoming, models.StatusSucceeded, false},
		{models.StatusUpcoming, models.StatusFailed, false},
		{models.StatusSucceeded, models.StatusFailed, false},
		{models.StatusFailed, models.StatusSucceeded, false},
		{models.StatusSucceeded, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusUpcoming, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			repo := newMockInterviewRepo()
			iv := &models.Interview{Status: tt.from, StreamCallID: "call-x"}
			repo.add(iv)

			svc := NewInterviewService(repo, nil, nil)
			updated, err := svc.UpdateStatus(context.Background(), models.RoleInterviewer, iv.ID.Hex(), tt.to)

			if !tt.allowed {
				require.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.to, updated.Status)
			if tt.to == models.StatusCompleted {
				require.Positive(t, updated.EndTime)
			}
		})
	}
}

func TestInterviewService_UpdateStatus_RequiresInterviewer(t *testing.T) {
	repo := newMockInterviewRepo()
	iv := &models.Interview{Status: models.StatusUpcoming, StreamCallID: "c"}
	repo.add(iv)

	svc := NewInterviewService(repo, nil, nil)
	_, err := svc.UpdateStatus(context.Background(), models.RoleCandidate, iv.ID.Hex(), models.StatusCompleted)
	require.True(t, utils.IsCode(err, utils.CodeForbidden))
}

func TestInterviewService_UpdateStatus_PublishesEvent(t *testing.T) {
	repo := newMockInterviewRepo()
	iv := &models.Interview{Status: models.StatusUpcoming, StreamCallID: "call-7"}
	repo.add(iv)

	pub := &recordingPublisher{}
	svc := NewInterviewService(repo, pub, nil)

	_, err := svc.UpdateStatus(context.Background(), models.RoleAdmin, iv.ID.Hex(), models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, pub.events, 1)
	require.Equal(t, "completed", pub.events[0].Status)
	require.Equal(t, "call-7", pub.events[0].StreamCallID)
}

func TestInterviewService_UpdateStatus_PublishFailureIsLoggedNotFatal(t *testing.T) {
	repo := newMockInterviewRepo()
	iv := &models.Interview{Status: models.StatusUpcoming, StreamCallID: "call-8"}
	repo.add(iv)

	log, hook := logtest.NewNullLogger()
	svc := NewInterviewService(repo, failingPublisher{}, log)

	updated, err := svc.UpdateStatus(context.Background(), models.RoleInterviewer, iv.ID.Hex(), models.StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, updated.Status)

	require.Len(t, hook.Entries, 1)
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Equal(t, "failed to publish status event", hook.LastEntry().Message)
}

func TestInterviewService_GroupedFor(t *testing.T) {
	repo := newMockInterviewRepo()
	now := time.Now()
	repo.add(&models.Interview{CandidateID: "c1", Status: models.StatusUpcoming, StartTime: now.Add(time.Hour).UnixMilli(), StreamCallID: "a"})
	repo.add(&models.Interview{CandidateID: "c1", Status: models.StatusSucceeded, StartTime: now.Add(-time.Hour).UnixMilli(), StreamCallID: "b"})

	svc := NewInterviewService(repo, nil, nil)

	g, err := svc.GroupedFor(context.Background(), "c1", models.RoleCandidate, now)
	require.NoError(t, err)
	require.Len(t, g.Upcoming, 1)
	require.Len(t, g.Succeeded, 1)
}
