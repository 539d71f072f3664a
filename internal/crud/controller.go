// Package crud keeps one entity page's list and edit form in sync with the
// REST collaborator. Every mutation is followed by a full reload: the list
// snapshot only ever holds what the collaborator last returned.
package crud

import (
	"context"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"
)

// Observer is notified once per finished operation.
type Observer func(entity string, op Op, err error)

type Option func(*options)

type options struct {
	observer Observer
	logger   *logrus.Entry
}

func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

func WithLogger(l *logrus.Entry) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

type Controller[R any, F any] struct {
	schema    Schema[R, F]
	endpoints Endpoints
	client    Collaborator
	observer  Observer
	log       *logrus.Entry

	mu      sync.Mutex
	records []R
	form    F
	editing *R
	lastErr error
	busy    map[Op]bool
	mounted bool
}

// View is a copy of a controller's state at one instant.
type View[R any, F any] struct {
	Entity  string
	Records []R
	Form    F
	Editing *R
	Err     error
	Busy    []Op
	Mounted bool
}

func New[R any, F any](schema Schema[R, F], client Collaborator, opts ...Option) *Controller[R, F] {
	o := options{logger: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[R, F]{
		schema:    schema,
		endpoints: schema.Endpoints(),
		client:    client,
		observer:  o.observer,
		log:       o.logger.WithField("entity", schema.Entity()),
		records:   []R{},
		busy:      make(map[Op]bool),
	}
}

func (c *Controller[R, F]) Entity() string {
	return c.schema.Entity()
}

// Mount runs the initial Load the first time the page is shown. Later calls
// are no-ops, whether or not the first load succeeded.
func (c *Controller[R, F]) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return nil
	}
	c.mounted = true
	c.mu.Unlock()

	return c.Load(ctx)
}

// Load replaces the list snapshot with the collaborator's current list. On
// failure the previous snapshot is kept.
func (c *Controller[R, F]) Load(ctx context.Context) error {
	if err := c.begin(OpLoad); err != nil {
		return err
	}
	defer c.end(OpLoad)

	return c.load(ctx)
}

func (c *Controller[R, F]) load(ctx context.Context) error {
	var records []R
	if err := c.client.Get(ctx, c.endpoints.List, &records); err != nil {
		return c.fail(OpLoad, err)
	}
	if records == nil {
		records = []R{}
	}

	c.mu.Lock()
	c.records = records
	c.lastErr = nil
	c.mu.Unlock()

	c.succeed(OpLoad)
	return nil
}

// SetForm replaces the form field values.
func (c *Controller[R, F]) SetForm(form F) {
	c.mu.Lock()
	c.form = form
	c.mu.Unlock()
}

// Create submits the form as a new record, then reloads the list.
func (c *Controller[R, F]) Create(ctx context.Context) error {
	if err := c.begin(OpCreate); err != nil {
		return err
	}
	defer c.end(OpCreate)

	c.mu.Lock()
	form := c.form
	c.mu.Unlock()

	payload, err := c.schema.Payload(form, ModeCreate)
	if err != nil {
		return c.fail(OpCreate, err)
	}

	if err := c.client.Send(ctx, http.MethodPost, c.endpoints.Create, payload); err != nil {
		return c.fail(OpCreate, err)
	}

	c.mu.Lock()
	var zero F
	c.form = zero
	c.lastErr = nil
	c.mu.Unlock()

	c.succeed(OpCreate)
	return c.load(ctx)
}

// BeginEdit copies the listed record with the given id into the form and
// makes it the active edit target.
func (c *Controller[R, F]) BeginEdit(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.records {
		if c.schema.Key(c.records[i]) == id {
			record := c.records[i]
			c.editing = &record
			c.form = c.schema.FormOf(record)
			return nil
		}
	}

	err := &OperationError{Op: OpEdit, Entity: c.schema.Entity(), Err: ErrNotFound}
	c.lastErr = err
	return err
}

// Update submits the form against the active edit target, then reloads.
func (c *Controller[R, F]) Update(ctx context.Context) error {
	if err := c.begin(OpUpdate); err != nil {
		return err
	}
	defer c.end(OpUpdate)

	c.mu.Lock()
	target := c.editing
	form := c.form
	c.mu.Unlock()

	if target == nil {
		return c.fail(OpUpdate, ErrNoEditTarget)
	}

	payload, err := c.schema.Payload(form, ModeUpdate)
	if err != nil {
		return c.fail(OpUpdate, err)
	}

	id := c.schema.Key(*target)
	if err := c.client.Send(ctx, http.MethodPut, c.endpoints.UpdatePath(id), payload); err != nil {
		return c.fail(OpUpdate, err)
	}

	c.mu.Lock()
	c.clearEditLocked(id)
	c.lastErr = nil
	c.mu.Unlock()

	c.succeed(OpUpdate)
	return c.load(ctx)
}

// CancelEdit drops the active edit target and the form without contacting
// the collaborator.
func (c *Controller[R, F]) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero F
	c.editing = nil
	c.form = zero
	c.lastErr = nil
}

// Delete asks confirm first; a declined confirmation returns ErrCancelled
// and sends nothing.
func (c *Controller[R, F]) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	if err := c.begin(OpDelete); err != nil {
		return err
	}
	defer c.end(OpDelete)

	ok := false
	if confirm != nil {
		var err error
		ok, err = confirm.Confirm(ctx, DeleteRequest{Entity: c.schema.Entity(), ID: id})
		if err != nil {
			return c.fail(OpDelete, err)
		}
	}
	if !ok {
		return &OperationError{Op: OpDelete, Entity: c.schema.Entity(), Err: ErrCancelled}
	}

	if err := c.client.Send(ctx, http.MethodDelete, c.endpoints.DeletePath(id), nil); err != nil {
		return c.fail(OpDelete, err)
	}
	c.succeed(OpDelete)

	err := c.load(ctx)

	c.mu.Lock()
	c.clearEditLocked(id)
	c.mu.Unlock()

	return err
}

// View returns a copy of the current state.
func (c *Controller[R, F]) View() View[R, F] {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View[R, F]{
		Entity:  c.schema.Entity(),
		Records: append([]R(nil), c.records...),
		Form:    c.form,
		Err:     c.lastErr,
		Mounted: c.mounted,
	}
	if v.Records == nil {
		v.Records = []R{}
	}
	if c.editing != nil {
		editing := *c.editing
		v.Editing = &editing
	}
	for _, op := range []Op{OpLoad, OpCreate, OpUpdate, OpDelete} {
		if c.busy[op] {
			v.Busy = append(v.Busy, op)
		}
	}
	return v
}

// Err returns the last error, or nil after a successful operation.
func (c *Controller[R, F]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller[R, F]) begin(op Op) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy[op] {
		return &OperationError{Op: op, Entity: c.schema.Entity(), Err: ErrBusy}
	}
	c.busy[op] = true
	return nil
}

func (c *Controller[R, F]) end(op Op) {
	c.mu.Lock()
	delete(c.busy, op)
	c.mu.Unlock()
}

func (c *Controller[R, F]) clearEditLocked(id int64) {
	if c.editing != nil && c.schema.Key(*c.editing) == id {
		var zero F
		c.editing = nil
		c.form = zero
	}
}

func (c *Controller[R, F]) fail(op Op, err error) error {
	opErr := &OperationError{Op: op, Entity: c.schema.Entity(), Err: err}

	c.mu.Lock()
	c.lastErr = opErr
	c.mu.Unlock()

	c.log.WithError(err).WithField("op", op).Warn("Page operation failed")
	if c.observer != nil {
		c.observer(c.schema.Entity(), op, err)
	}
	return opErr
}

func (c *Controller[R, F]) succeed(op Op) {
	c.log.WithField("op", op).Debug("Page operation succeeded")
	if c.observer != nil {
		c.observer(c.schema.Entity(), op, nil)
	}
}
