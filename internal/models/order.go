// internal/models/order.go
package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	OrderID     int64           `json:"order_id"`
	UserID      int64           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	OrderDate   time.Time       `json:"order_date"`
}

type OrderForm struct {
	UserID      string `json:"user_id" label:"User ID" validate:"notblank,int,int_min=1"`
	TotalAmount string `json:"total_amount" label:"Total amount" validate:"notblank,decimal,decimal_min=0"`
	Status      string `json:"status" label:"Status" validate:"notblank,order_status"`
}

type OrderPayload struct {
	UserID      int64           `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
}

func (o Order) Form() OrderForm {
	return OrderForm{
		UserID:      strconv.FormatInt(o.UserID, 10),
		TotalAmount: o.TotalAmount.String(),
		Status:      string(o.Status),
	}
}

func (f OrderForm) Payload() (OrderPayload, error) {
	userID, err := parseID("user_id", f.UserID)
	if err != nil {
		return OrderPayload{}, err
	}
	total, err := parseDecimal("total_amount", f.TotalAmount)
	if err != nil {
		return OrderPayload{}, err
	}

	return OrderPayload{
		UserID:      userID,
		TotalAmount: total,
		Status:      OrderStatus(f.Status),
	}, nil
}
