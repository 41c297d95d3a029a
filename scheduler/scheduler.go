// Package scheduler runs maintenance jobs on interval or daily schedules.
package scheduler

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"logotint/model"
)

// Job is the work a due schedule triggers.
type Job func(ctx context.Context, now time.Time) error

type Scheduler struct {
	mu        sync.Mutex
	schedules []model.Schedule
	lastRun   map[string]time.Time
	job       Job
	logger    zerolog.Logger
	tick      time.Duration
}

func New(logger zerolog.Logger, job Job, initial []model.Schedule) *Scheduler {
	return &Scheduler{
		schedules: append([]model.Schedule(nil), initial...),
		lastRun:   make(map[string]time.Time),
		job:       job,
		logger:    logger.With().Str("component", "scheduler").Logger(),
		tick:      30 * time.Second,
	}
}

// Start checks the schedules every tick until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.logger.Info().Int("schedules", len(s.Schedules())).Msg("scheduler started")
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("scheduler stopped")
				return
			case now := <-ticker.C:
				s.check(ctx, now)
			}
		}
	}()
}

func (s *Scheduler) check(ctx context.Context, now time.Time) {
	s.mu.Lock()
	scheds := make([]model.Schedule, len(s.schedules))
	copy(scheds, s.schedules)
	last := make(map[string]time.Time, len(s.lastRun))
	for k, v := range s.lastRun {
		last[k] = v
	}
	s.mu.Unlock()

	for _, sc := range scheds {
		if !sc.Enabled || sc.ID == "" {
			continue
		}
		if !shouldRun(sc, last[sc.ID], now) {
			continue
		}
		s.runOnce(ctx, sc.ID, now)
	}
}

func (s *Scheduler) runOnce(ctx context.Context, id string, now time.Time) {
	if err := s.job(ctx, now); err != nil {
		s.logger.Error().Err(err).Str("schedule", id).Msg("scheduled job failed")
		return
	}
	s.mu.Lock()
	s.lastRun[id] = now
	s.mu.Unlock()
	s.logger.Debug().Str("schedule", id).Msg("scheduled job done")
}

// RunNow runs the job immediately, outside any schedule.
func (s *Scheduler) RunNow(ctx context.Context) error {
	return s.job(ctx, time.Now())
}

func shouldRun(sc model.Schedule, lastRun time.Time, now time.Time) bool {
	switch sc.Type {
	case model.ScheduleInterval:
		if sc.Every == "" {
			return false
		}
		dur, err := time.ParseDuration(sc.Every)
		if err != nil || dur <= 0 {
			return false
		}
		if lastRun.IsZero() {
			return true
		}
		return now.Sub(lastRun) >= dur

	case model.ScheduleDaily:
		hour, min, ok := parseTimeOfDay(sc.TimeOfDay)
		if !ok {
			return false
		}

		loc := now.Location()
		target := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)

		if now.Before(target) {
			return false
		}
		if !lastRun.IsZero() && sameDay(lastRun.In(loc), now) {
			return false
		}
		return true

	default:
		return false
	}
}

func parseTimeOfDay(s string) (hour, min int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err1 := strconv.Atoi(parts[0])
	min, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, 0, false
	}
	return hour, min, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (s *Scheduler) Schedules() []model.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Schedule, len(s.schedules))
	copy(out, s.schedules)
	return out
}

func (s *Scheduler) SetSchedules(scheds []model.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules = make([]model.Schedule, len(scheds))
	copy(s.schedules, scheds)
	s.lastRun = make(map[string]time.Time)
}
