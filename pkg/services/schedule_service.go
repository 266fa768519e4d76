package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/canaryscope/canaryscope/ent"
	"github.com/canaryscope/canaryscope/ent/pipelineschedule"
)

var (
	intervalPattern = regexp.MustCompile(`^(\d+)(m|h|d)$`)
	dailyPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// cronParser accepts the standard 5-field grammar.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ScheduleService manages database-backed recurring schedules.
type ScheduleService struct {
	client *ent.Client
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(client *ent.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// CreateScheduleRequest carries the fields for a new schedule.
type CreateScheduleRequest struct {
	Name          string
	Target        string
	ScheduleType  string
	ScheduleValue string
	Config        map[string]any
}

// CreateSchedule validates and persists a schedule, with next_run_at
// computed from now.
func (s *ScheduleService) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*ent.PipelineSchedule, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := ValidateScheduleValue(req.ScheduleType, req.ScheduleValue); err != nil {
		return nil, err
	}

	next, err := NextRun(req.ScheduleType, req.ScheduleValue, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	builder := s.client.PipelineSchedule.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetTarget(pipelineschedule.Target(req.Target)).
		SetScheduleType(pipelineschedule.ScheduleType(req.ScheduleType)).
		SetScheduleValue(req.ScheduleValue).
		SetNextRunAt(next)
	if req.Config != nil {
		builder.SetConfig(req.Config)
	}

	schedule, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

// ListSchedules returns all schedules in name order.
func (s *ScheduleService) ListSchedules(ctx context.Context) ([]*ent.PipelineSchedule, error) {
	rows, err := s.client.PipelineSchedule.Query().
		Order(ent.Asc(pipelineschedule.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return rows, nil
}

// DueSchedules returns enabled schedules whose next_run_at has passed.
func (s *ScheduleService) DueSchedules(ctx context.Context, now time.Time) ([]*ent.PipelineSchedule, error) {
	rows, err := s.client.PipelineSchedule.Query().
		Where(
			pipelineschedule.EnabledEQ(true),
			pipelineschedule.NextRunAtLTE(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due schedules: %w", err)
	}
	return rows, nil
}

// RecordRun stores one execution's outcome and advances next_run_at.
func (s *ScheduleService) RecordRun(ctx context.Context, scheduleID string, ranAt time.Time, runErr error) error {
	schedule, err := s.client.PipelineSchedule.Get(ctx, scheduleID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}

	next, err := NextRun(string(schedule.ScheduleType), schedule.ScheduleValue, ranAt)
	if err != nil {
		return err
	}

	update := schedule.Update().
		SetLastRunAt(ranAt).
		SetNextRunAt(next)
	if runErr != nil {
		update.SetLastRunStatus("error").
			SetLastRunError(truncateError(runErr.Error()))
	} else {
		update.SetLastRunStatus("success").
			SetLastRunError("")
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record schedule run: %w", err)
	}
	return nil
}

// SetEnabled toggles a schedule.
func (s *ScheduleService) SetEnabled(ctx context.Context, scheduleID string, enabled bool) error {
	err := s.client.PipelineSchedule.UpdateOneID(scheduleID).SetEnabled(enabled).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update schedule: %w", err)
	}
	return nil
}

// DeleteSchedule removes a schedule.
func (s *ScheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	err := s.client.PipelineSchedule.DeleteOneID(scheduleID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

// ValidateScheduleValue checks the value against its type's grammar.
func ValidateScheduleValue(scheduleType, value string) error {
	switch scheduleType {
	case "interval":
		if !intervalPattern.MatchString(value) {
			return NewValidationError("schedule_value", "interval must match <number>(m|h|d), e.g. 30m")
		}
	case "daily":
		m := dailyPattern.FindStringSubmatch(value)
		if m == nil {
			return NewValidationError("schedule_value", "daily must be HH:MM in UTC")
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return NewValidationError("schedule_value", "daily time out of range")
		}
	case "cron":
		if _, err := cronParser.Parse(value); err != nil {
			return NewValidationError("schedule_value", "invalid cron expression: "+err.Error())
		}
	default:
		return NewValidationError("schedule_type", "must be interval, daily, or cron")
	}
	return nil
}

// NextRun computes the next firing strictly after from.
func NextRun(scheduleType, value string, from time.Time) (time.Time, error) {
	from = from.UTC()
	switch scheduleType {
	case "interval":
		m := intervalPattern.FindStringSubmatch(value)
		if m == nil {
			return time.Time{}, NewValidationError("schedule_value", "invalid interval")
		}
		n, _ := strconv.Atoi(m[1])
		var unit time.Duration
		switch m[2] {
		case "m":
			unit = time.Minute
		case "h":
			unit = time.Hour
		case "d":
			unit = 24 * time.Hour
		}
		return from.Add(time.Duration(n) * unit), nil
	case "daily":
		m := dailyPattern.FindStringSubmatch(value)
		if m == nil {
			return time.Time{}, NewValidationError("schedule_value", "invalid daily time")
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		next := time.Date(from.Year(), from.Month(), from.Day(), hour, minute, 0, 0, time.UTC)
		if !next.After(from) {
			next = next.Add(24 * time.Hour)
		}
		return next, nil
	case "cron":
		spec, err := cronParser.Parse(value)
		if err != nil {
			return time.Time{}, NewValidationError("schedule_value", "invalid cron expression: "+err.Error())
		}
		return spec.Next(from), nil
	default:
		return time.Time{}, NewValidationError("schedule_type", "unknown schedule type "+strings.TrimSpace(scheduleType))
	}
}
