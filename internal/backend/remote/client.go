// Package remote implements the service.Service interface against the
// to-do REST backend.
//
// Two data sources sit behind the client. The task list, creation,
// completion and deletion use the backend. GetTask, ClearCompletedTasks and
// DeleteAllTasks use an in-process seed store instead, so their view of the
// data can diverge from the backend's.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/imroc/req/v3"
	"github.com/jonboulle/clockwork"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"

	"todoremote/internal/config"
	"todoremote/internal/log"
	"todoremote/internal/observable"
	"todoremote/internal/service"
	"todoremote/internal/store"
)

const (
	tasksPath    = "/api/tasks"
	completePath = "/api/tasks/{id}/complete"
	deletePath   = "/api/tasks/{id}/delete"

	acceptHeader = "application/json, application/hal+json"
	userAgent    = "todoremote"
)

// errTaskIDRequired is returned by mutations given an empty id.
var errTaskIDRequired = errors.New("task id required")

// Client implements service.Service using the REST backend.
type Client struct {
	http    *req.Client
	seed    *store.Memory
	tasks   *observable.Value[service.Result[[]service.Task]]
	clock   clockwork.Clock
	latency time.Duration
	logger  log.Logger

	// refreshSeq numbers refreshes as they start; published is the number
	// of the newest refresh whose result has been published.
	refreshSeq atomic.Uint64
	publishMu  sync.Mutex
	published  uint64
}

// Option configures a Client.
type Option func(*options)

type options struct {
	clock       clockwork.Clock
	logger      log.Logger
	seed        *store.Memory
	tokenSource oauth2.TokenSource
	dump        io.Writer
	latency     *time.Duration
}

// WithClock sets the clock used for the simulated latency.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// WithLatency overrides the GetTask delay from config. Unlike
// config.Latency, zero here means no delay.
func WithLatency(d time.Duration) Option {
	return func(o *options) { o.latency = &d }
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSeedStore sets the store backing GetTask and the bulk clear calls.
// Defaults to store.NewSeeded().
func WithSeedStore(seed *store.Memory) Option {
	return func(o *options) { o.seed = seed }
}

// WithTokenSource sets the source of the Authorization header, overriding
// the one derived from config.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(o *options) { o.tokenSource = ts }
}

// WithDumpTo writes every request and response to w.
func WithDumpTo(w io.Writer) Option {
	return func(o *options) { o.dump = w }
}

// New creates a client for cfg.ServerURL.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	o := options{
		clock:  clockwork.NewRealClock(),
		logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == nil {
		o.seed = store.NewSeeded()
	}
	if o.tokenSource == nil {
		ts, err := TokenSource(ctx, cfg)
		if err != nil {
			return nil, err
		}
		o.tokenSource = ts
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	latency := cfg.Latency
	if latency <= 0 {
		latency = config.DefaultLatency
	}
	if o.latency != nil {
		latency = *o.latency
	}

	hc := req.C().
		SetBaseURL(cfg.ServerURL).
		SetTimeout(timeout).
		SetUserAgent(userAgent).
		SetCommonHeader("Accept", acceptHeader).
		SetLogger(log.Printf{Logger: o.logger})
	if o.dump != nil {
		hc.EnableDumpAllTo(o.dump)
	}
	if ts := o.tokenSource; ts != nil {
		hc.OnBeforeRequest(func(_ *req.Client, r *req.Request) error {
			token, err := ts.Token()
			if err != nil {
				return fmt.Errorf("token expired or revoked (run: todoremote login): %w", err)
			}
			r.SetHeader("Authorization", token.Type()+" "+token.AccessToken)
			return nil
		})
	}

	return &Client{
		http:    hc,
		seed:    o.seed,
		tasks:   observable.New[service.Result[[]service.Task]](),
		clock:   o.clock,
		latency: latency,
		logger:  o.logger.With("component", "remote"),
	}, nil
}

// RefreshTasks fetches all tasks and publishes the result. A refresh that
// finishes after a newer one has been published is dropped.
func (c *Client) RefreshTasks(ctx context.Context) {
	seq := c.refreshSeq.Add(1)
	result := c.GetTasks(ctx)

	c.publishMu.Lock()
	defer c.publishMu.Unlock()

	if seq < c.published {
		c.logger.Debug("dropping stale refresh", "seq", seq, "published", c.published)
		return
	}
	c.published = seq
	c.tasks.Publish(result)
}

// RefreshTask refreshes the whole list; there is no single-task endpoint.
func (c *Client) RefreshTask(ctx context.Context, taskID string) {
	c.RefreshTasks(ctx)
}

// ObserveTasks returns the last published task list.
func (c *Client) ObserveTasks() observable.Observable[service.Result[[]service.Task]] {
	return c.tasks
}

// ObserveTask returns a view of one task derived from ObserveTasks.
func (c *Client) ObserveTask(taskID string) observable.Observable[service.Result[service.Task]] {
	return observable.Map(c.ObserveTasks(), service.ObservedTask(taskID))
}

// GetTasks fetches all tasks in backend order. Transport, status and
// decoding failures are returned as the Error variant.
func (c *Client) GetTasks(ctx context.Context) service.Result[[]service.Task] {
	const op = "GET " + tasksPath

	resp, err := c.http.R().SetContext(ctx).Get(tasksPath)
	if err := checkResponse(op, resp, err); err != nil {
		c.logger.Warn("fetching tasks failed", "error", err)
		return service.Failure[[]service.Task](err)
	}

	body := resp.Bytes()
	if !gjson.GetBytes(body, "data").IsArray() {
		return service.Failure[[]service.Task](&service.DecodeError{Op: op, Err: errors.New(`missing "data" array`)})
	}

	var list taskListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return service.Failure[[]service.Task](&service.DecodeError{Op: op, Err: err})
	}

	tasks := make([]service.Task, 0, len(list.Data))
	for _, t := range list.Data {
		tasks = append(tasks, t.toTask())
	}
	c.logger.Debug("fetched tasks", "count", len(tasks))
	return service.Success(tasks)
}

// GetTask waits for the configured latency, then looks the task up in the
// seed store. The backend is not consulted.
func (c *Client) GetTask(ctx context.Context, taskID string) service.Result[service.Task] {
	select {
	case <-c.clock.After(c.latency):
	case <-ctx.Done():
		return service.Failure[service.Task](ctx.Err())
	}

	if task, ok := c.seed.Get(taskID); ok {
		return service.Success(task)
	}
	return service.Failure[service.Task](service.ErrTaskNotFound)
}

// SaveTask creates a task from its title and description. A response body
// that is not a task is logged and returned as a *service.DecodeError; the
// task has been created on the backend in that case.
func (c *Client) SaveTask(ctx context.Context, task service.Task) error {
	const op = "POST " + tasksPath

	resp, err := c.http.R().
		SetContext(ctx).
		SetBodyJsonMarshal(taskRequest{Title: task.Title, Description: task.Description}).
		Post(tasksPath)
	if err := checkResponse(op, resp, err); err != nil {
		return err
	}

	body := resp.Bytes()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}

	var echoed taskResponse
	if err := json.Unmarshal(body, &echoed); err != nil {
		c.logger.Error("error while saving task", "title", task.Title, "error", err)
		return &service.DecodeError{Op: op, Err: err}
	}
	c.logger.Debug("saved task", "id", echoed.ID)
	return nil
}

// CompleteTask marks a task completed on the backend. Observers see the
// change after the next refresh.
func (c *Client) CompleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return errTaskIDRequired
	}
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", taskID).Patch(completePath)
	return checkTaskResponse("PATCH "+completePath, resp, err)
}

// ActivateTask does nothing; the backend has no activate endpoint.
func (c *Client) ActivateTask(ctx context.Context, taskID string) error {
	return nil
}

// ClearCompletedTasks removes completed tasks from the seed store only.
func (c *Client) ClearCompletedTasks(ctx context.Context) error {
	n := c.seed.ClearCompleted()
	c.logger.Debug("cleared completed seed tasks", "count", n)
	return nil
}

// DeleteAllTasks empties the seed store only.
func (c *Client) DeleteAllTasks(ctx context.Context) error {
	c.seed.Clear()
	return nil
}

// DeleteTask deletes a task on the backend.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	if taskID == "" {
		return errTaskIDRequired
	}
	resp, err := c.http.R().SetContext(ctx).SetPathParam("id", taskID).Delete(deletePath)
	return checkTaskResponse("DELETE "+deletePath, resp, err)
}

var _ service.Service = (*Client)(nil)
