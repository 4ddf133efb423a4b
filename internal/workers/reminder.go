// Package workers contains the server's background jobs. Each worker
// runs its own goroutine and is stopped through Stop, which blocks
// until the goroutine exits.
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/models"
)

// Defaults applied when the worker configuration leaves the reminder
// timings unset.
const (
	DefaultReminderInterval = 10 * time.Minute
	DefaultReminderWindow   = 24 * time.Hour
)

// DeadlineReminderWorker periodically scans tasks whose deadline falls
// inside the configured window and creates a deadline_reminder
// notification for the assignee. A task/assignee pair is reminded at
// most once: existing reminder notifications are used as the dedup set,
// so restarts never double-notify.
type DeadlineReminderWorker struct {
	entities service.EntityService
	logger   *logger.Logger

	interval time.Duration
	window   time.Duration
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDeadlineReminderWorker constructs the worker over the server-side
// entity service.
func NewDeadlineReminderWorker(entities service.EntityService, cfg config.Workers, log *logger.Logger) *DeadlineReminderWorker {
	interval := cfg.ReminderInterval
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	window := cfg.ReminderWindow
	if window <= 0 {
		window = DefaultReminderWindow
	}

	return &DeadlineReminderWorker{
		entities: entities,
		logger:   log,
		interval: interval,
		window:   window,
		now:      time.Now,
	}
}

// Start launches the scan loop. Calling Start on a running worker
// restarts it.
func (w *DeadlineReminderWorker) Start() {
	w.Stop()

	ctx, cancel := context.WithCancel(context.Background())

	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(ctx)

	w.logger.Info().
		Dur("interval", w.interval).
		Dur("window", w.window).
		Msg("deadline reminder worker started")
}

// Stop halts the scan loop and waits for the running scan to finish.
// Safe to call on a worker that was never started.
func (w *DeadlineReminderWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	w.wg.Wait()
}

func (w *DeadlineReminderWorker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// first scan right away so a short-lived process still reminds
	if err := w.scan(ctx); err != nil {
		w.logger.Err(err).Msg("deadline reminder scan failed")
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.scan(ctx); err != nil {
				w.logger.Err(err).Msg("deadline reminder scan failed")
			}
		}
	}
}

// scan creates reminder notifications for every assigned, unfinished
// task due within the window that has not been reminded yet.
func (w *DeadlineReminderWorker) scan(ctx context.Context) error {
	due, err := w.dueTasks(ctx)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	reminded, err := w.remindedPairs(ctx)
	if err != nil {
		return err
	}

	for _, task := range due {
		if _, ok := reminded[task.ID+"|"+task.AssignedTo]; ok {
			continue
		}
		if err = w.createReminder(ctx, task); err != nil {
			w.logger.Err(err).Str("task_id", task.ID).Msg("error creating reminder notification")
			continue
		}
		w.logger.Info().
			Str("task_id", task.ID).
			Str("recipient_id", task.AssignedTo).
			Msg("deadline reminder created")
	}

	return nil
}

func (w *DeadlineReminderWorker) dueTasks(ctx context.Context) ([]models.Task, error) {
	docs, err := w.entities.List(ctx, "tasks", models.ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	now := w.now().UTC()
	deadline := now.Add(w.window)

	var due []models.Task
	for _, doc := range docs {
		var task models.Task
		if err = json.Unmarshal(doc, &task); err != nil {
			w.logger.Err(err).Msg("error decoding task document")
			continue
		}
		if task.AssignedTo == "" || task.DueDate == nil {
			continue
		}
		if task.Status == models.TaskDone || task.Status == models.TaskCancelled {
			continue
		}
		if task.DueDate.Before(now) || task.DueDate.After(deadline) {
			continue
		}
		due = append(due, task)
	}

	return due, nil
}

// remindedPairs returns the "<task id>|<recipient id>" keys of every
// reminder notification already stored.
func (w *DeadlineReminderWorker) remindedPairs(ctx context.Context) (map[string]struct{}, error) {
	docs, err := w.entities.List(ctx, "notifications", models.ListQuery{})
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}

	pairs := make(map[string]struct{})
	for _, doc := range docs {
		var notification models.Notification
		if err = json.Unmarshal(doc, &notification); err != nil {
			w.logger.Err(err).Msg("error decoding notification document")
			continue
		}
		if notification.Type != models.NotifyDeadlineReminder {
			continue
		}
		pairs[notification.LinkedID+"|"+notification.RecipientID] = struct{}{}
	}

	return pairs, nil
}

func (w *DeadlineReminderWorker) createReminder(ctx context.Context, task models.Task) error {
	notification := models.Notification{
		Title:       "Deadline approaching: " + task.Title,
		Message:     fmt.Sprintf("Task %q is due at %s", task.Title, task.DueDate.UTC().Format(time.RFC3339)),
		Type:        models.NotifyDeadlineReminder,
		RecipientID: task.AssignedTo,
		LinkedType:  "task",
		LinkedID:    task.ID,
	}

	doc, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("error encoding reminder notification: %w", err)
	}

	_, err = w.entities.Create(ctx, "notifications", doc)
	return err
}
