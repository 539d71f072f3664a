// internal/models/product.go
package models

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

type ProductForm struct {
	ProductName string `json:"product_name" label:"Product name" validate:"notblank"`
	Description string `json:"description" label:"Description" validate:"notblank"`
	Price       string `json:"price" label:"Price" validate:"notblank,decimal,decimal_min=0.01"`
	Stock       string `json:"stock" label:"Stock quantity" validate:"notblank,int,int_min=0"`
}

type ProductPayload struct {
	ProductName string          `json:"product_name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

func (p Product) Form() ProductForm {
	return ProductForm{
		ProductName: p.ProductName,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       strconv.Itoa(p.Stock),
	}
}

func (f ProductForm) Payload() (ProductPayload, error) {
	price, err := parseDecimal("price", f.Price)
	if err != nil {
		return ProductPayload{}, err
	}
	stock, err := parseInt("stock", f.Stock)
	if err != nil {
		return ProductPayload{}, err
	}

	return ProductPayload{
		ProductName: f.ProductName,
		Description: f.Description,
		Price:       price,
		Stock:       stock,
	}, nil
}
