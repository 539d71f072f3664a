package crud

import (
	"context"
	"fmt"
)

type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpEdit   Op = "edit"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// Endpoints is one entity's resource family on the collaborator. Update and
// Delete are format strings taking the record identifier.
type Endpoints struct {
	List   string
	Create string
	Update string
	Delete string
}

func (e Endpoints) UpdatePath(id int64) string {
	return fmt.Sprintf(e.Update, id)
}

func (e Endpoints) DeletePath(id int64) string {
	return fmt.Sprintf(e.Delete, id)
}

// Schema describes one record shape to the controller.
type Schema[R any, F any] interface {
	Entity() string
	Endpoints() Endpoints
	Key(record R) int64
	FormOf(record R) F
	// Payload validates the form and parses it into a request body. It must
	// not have side effects: a validation error means no request is sent.
	Payload(form F, mode Mode) (interface{}, error)
}

// Collaborator is the REST backend as the controller sees it.
type Collaborator interface {
	Get(ctx context.Context, path string, out interface{}) error
	Send(ctx context.Context, method, path string, body interface{}) error
}

type DeleteRequest struct {
	Entity string
	ID     int64
}

// Confirmer asks the operator a blocking yes/no question before a delete.
type Confirmer interface {
	Confirm(ctx context.Context, req DeleteRequest) (bool, error)
}

type ConfirmFunc func(ctx context.Context, req DeleteRequest) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, req DeleteRequest) (bool, error) {
	return f(ctx, req)
}

// Answer is a Confirmer whose answer is already known, e.g. from a
// --yes flag or a confirm=true query parameter.
type Answer bool

func (a Answer) Confirm(context.Context, DeleteRequest) (bool, error) {
	return bool(a), nil
}
