// internal/services/order_service.go
package services

import (
	"fmt"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/utils"
)

type OrderController = crud.Controller[models.Order, models.OrderForm]

type OrderSchema struct{}

func NewOrderController(client crud.Collaborator, opts ...crud.Option) *OrderController {
	return crud.New[models.Order, models.OrderForm](OrderSchema{}, client, opts...)
}

func (OrderSchema) Entity() string { return "order" }

func (OrderSchema) Endpoints() crud.Endpoints {
	return crud.Endpoints{
		List:   "/orders",
		Create: "/createOrders",
		Update: "/updateOrder/%d",
		Delete: "/deleteOrder/%d",
	}
}

func (OrderSchema) Key(o models.Order) int64 { return o.OrderID }

func (OrderSchema) FormOf(o models.Order) models.OrderForm { return o.Form() }

func (OrderSchema) Payload(form models.OrderForm, _ crud.Mode) (interface{}, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return form.Payload()
}
