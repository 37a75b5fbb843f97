package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/intervueapp/intervue/internal/authz"
	"github.com/intervueapp/intervue/internal/events"
	"github.com/intervueapp/intervue/internal/interview"
	"github.com/intervueapp/intervue/internal/models"
	mongorepo "github.com/intervueapp/intervue/internal/repositories/mongo"
	"github.com/intervueapp/intervue/internal/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ScheduleInterviewInput struct {
	Title          string
	Description    string
	StartTime      int64 // epoch millis
	CandidateID    string
	InterviewerIDs []string
	StreamCallID   string // generated when empty
}

type InterviewService interface {
	// Schedule creates an interview. The scheduler is always kept in the
	// interviewer set.
	Schedule(ctx context.Context, schedulerID string, role models.Role, in ScheduleInterviewInput) (*models.Interview, error)
	// ListFor returns every interview for interviewers and admins, and
	// only the caller's own for candidates.
	ListFor(ctx context.Context, userID string, role models.Role) ([]models.Interview, error)
	Mine(ctx context.Context, userID string) ([]models.Interview, error)
	GroupedFor(ctx context.Context, userID string, role models.Role, now time.Time) (interview.Grouped, error)
	GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error)
	// UpdateStatus applies a validated lifecycle transition and stamps
	// the end time when completing.
	UpdateStatus(ctx context.Context, role models.Role, id string, status models.InterviewStatus) (*models.Interview, error)
}

type interviewService struct {
	interviews mongorepo.InterviewRepository
	events     events.Publisher
	log        *logrus.Logger
}

func NewInterviewService(interviews mongorepo.InterviewRepository, pub events.Publisher, log *logrus.Logger) InterviewService {
	if log == nil {
		log = logrus.New()
	}
	return &interviewService{interviews: interviews, events: pub, log: log}
}

func (s *interviewService) Schedule(ctx context.Context, schedulerID string, role models.Role, in ScheduleInterviewInput) (*models.Interview, error) {
	const op = "InterviewService.Schedule"

	if !authz.CanScheduleInterviews(role) {
		return nil, utils.E(utils.CodeForbidden, op, "only interviewers can schedule interviews", nil)
	}
	if in.Title == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title is required", nil)
	}
	if in.StartTime <= 0 {
		return nil, utils.E(utils.CodeInvalidArgument, op, "start time is required", nil)
	}
	if in.CandidateID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "candidate is required", nil)
	}

	// The scheduling interviewer is implicitly part of the panel and
	// cannot remove themselves.
	interviewerIDs := in.InterviewerIDs
	found := false
	for _, id := range interviewerIDs {
		if id == schedulerID {
			found = true
			break
		}
	}
	if !found {
		interviewerIDs = append([]string{schedulerID}, interviewerIDs...)
	}

	callID := in.StreamCallID
	if callID == "" {
		callID = uuid.NewString()
	}

	iv := &models.Interview{
		Title:          in.Title,
		Description:    in.Description,
		StartTime:      in.StartTime,
		Status:         models.StatusUpcoming,
		StreamCallID:   callID,
		CandidateID:    in.CandidateID,
		InterviewerIDs: interviewerIDs,
	}
	if err := s.interviews.Create(ctx, iv); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeConflict, op, "an interview already exists for this call", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create interview", err)
	}
	return iv, nil
}

func (s *interviewService) ListFor(ctx context.Context, userID string, role models.Role) ([]models.Interview, error) {
	const op = "InterviewService.ListFor"

	var (
		list []models.Interview
		err  error
	)
	if authz.CanSeeAllInterviews(role) {
		list, err = s.interviews.List(ctx)
	} else {
		list, err = s.interviews.ListByCandidate(ctx, userID)
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return list, nil
}

func (s *interviewService) Mine(ctx context.Context, userID string) ([]models.Interview, error) {
	const op = "InterviewService.Mine"

	list, err := s.interviews.ListByCandidate(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list interviews", err)
	}
	return list, nil
}

func (s *interviewService) GroupedFor(ctx context.Context, userID string, role models.Role, now time.Time) (interview.Grouped, error) {
	list, err := s.ListFor(ctx, userID, role)
	if err != nil {
		return interview.Grouped{}, err
	}
	return interview.Group(list, now), nil
}

func (s *interviewService) GetByStreamCallID(ctx context.Context, streamCallID string) (*models.Interview, error) {
	const op = "InterviewService.GetByStreamCallID"

	if streamCallID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "streamCallId is required", nil)
	}

	iv, err := s.interviews.GetByStreamCallID(ctx, streamCallID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}
	return iv, nil
}

func (s *interviewService) UpdateStatus(ctx context.Context, role models.Role, id string, status models.InterviewStatus) (*models.Interview, error) {
	const op = "InterviewService.UpdateStatus"

	if !authz.CanUpdateInterviewStatus(role) {
		return nil, utils.E(utils.CodeForbidden, op, "only interviewers can update interview status", nil)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "invalid interview id", err)
	}
	if !status.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown status", nil)
	}

	current, err := s.interviews.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "interview not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get interview", err)
	}
	if !canTransition(current.Status, status) {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"cannot transition from "+string(current.Status)+" to "+string(status), nil)
	}

	var endTime int64
	if status == models.StatusCompleted {
		endTime = time.Now().UnixMilli()
	}

	updated, err := s.interviews.UpdateStatus(ctx, oid, status, endTime)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to update status", err)
	}

	if s.events != nil {
		// best effort, a missed event only delays a dashboard refresh
		ev := events.InterviewStatusEvent{
			InterviewID:  updated.ID.Hex(),
			StreamCallID: updated.StreamCallID,
			Status:       string(updated.Status),
			At:           time.Now().UnixMilli(),
		}
		if perr := s.events.InterviewStatusChanged(ctx, ev); perr != nil {
			s.log.WithError(perr).WithField("interview_id", ev.InterviewID).
				Warn("failed to publish status event")
		}
	}
	return updated, nil
}

// canTransition encodes the stored-status lifecycle: an interview
// completes from a non-terminal state, passes or fails only once
// completed, and never leaves succeeded or failed.
func canTransition(from, to models.InterviewStatus) bool {
	switch to {
	case models.StatusCompleted:
		return from == models.StatusUpcoming || from == models.StatusPending
	case models.StatusSucceeded, models.StatusFailed:
		return from == models.StatusCompleted
	default:
		return false
	}
}
