// internal/services/workspace.go
package services

import (
	"github.com/sirupsen/logrus"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/metrics"
)

// Workspace is one operator's set of entity pages. Pages never share state.
type Workspace struct {
	Users    *UserController
	Products *ProductController
	Orders   *OrderController
	Reviews  *ReviewController
}

func NewWorkspace(client crud.Collaborator, log *logrus.Entry) *Workspace {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	opts := []crud.Option{
		crud.WithObserver(recordPageOperation),
		crud.WithLogger(log),
	}

	return &Workspace{
		Users:    NewUserController(client, opts...),
		Products: NewProductController(client, opts...),
		Orders:   NewOrderController(client, opts...),
		Reviews:  NewReviewController(client, opts...),
	}
}

func recordPageOperation(entity string, op crud.Op, err error) {
	metrics.RecordPageOperation(entity, string(op), err == nil)
}
