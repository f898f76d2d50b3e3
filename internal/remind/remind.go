// Package remind runs a cron-scheduled check for trackers that are due
// today and not yet completed, handing them to a notify callback.
package remind

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trackerhq/tracker/internal/engine"
	"github.com/trackerhq/tracker/internal/model"
)

// NotifyFunc receives the due-and-uncompleted trackers found on a tick.
// It is never called with an empty slice.
type NotifyFunc func(due []model.Tracker)

// Reminder periodically surfaces today's uncompleted trackers.
type Reminder struct {
	service *engine.Service
	cron    *cron.Cron
	notify  NotifyFunc
	now     func() time.Time
}

// New builds a Reminder. A nil now falls back to time.Now.
func New(service *engine.Service, loc *time.Location, notify NotifyFunc, now func() time.Time) *Reminder {
	if now == nil {
		now = time.Now
	}
	return &Reminder{
		service: service,
		cron:    cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		notify:  notify,
		now:     now,
	}
}

// ScheduleDaily registers the check at the given HH:MM time, daily.
func (r *Reminder) ScheduleDaily(timeStr string) (cron.EntryID, error) {
	spec, err := buildDailySpec(timeStr)
	if err != nil {
		return 0, err
	}
	return r.cron.AddFunc(spec, r.Run)
}

// ScheduleInterval registers the check every given duration.
func (r *Reminder) ScheduleInterval(interval time.Duration) (cron.EntryID, error) {
	if interval <= 0 {
		return 0, fmt.Errorf("interval must be positive")
	}
	seconds := int(interval.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return r.cron.AddFunc(fmt.Sprintf("@every %ds", seconds), r.Run)
}

// Start begins running scheduled checks.
func (r *Reminder) Start() {
	r.cron.Start()
}

// Stop halts the schedule and waits for an in-flight check to finish.
func (r *Reminder) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// Run performs one check immediately: today's scheduled-but-uncompleted
// trackers go to the notify callback. Engine failures are logged and
// the tick is skipped.
func (r *Reminder) Run() {
	ctx := context.Background()
	today := r.now()

	groups, err := r.service.VisibleCategories(ctx, today, model.FilterUncompleted, "")
	if err != nil {
		log.Printf("reminder check failed: %v", err)
		return
	}

	var due []model.Tracker
	for _, group := range groups {
		due = append(due, group.Trackers...)
	}

	if len(due) > 0 && r.notify != nil {
		r.notify(due)
	}
}

func buildDailySpec(timeStr string) (string, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", timeStr)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in %q", timeStr)
	}
	// cron format: second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
