// internal/services/product_service.go
package services

import (
	"fmt"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/utils"
)

type ProductController = crud.Controller[models.Product, models.ProductForm]

type ProductSchema struct{}

func NewProductController(client crud.Collaborator, opts ...crud.Option) *ProductController {
	return crud.New[models.Product, models.ProductForm](ProductSchema{}, client, opts...)
}

func (ProductSchema) Entity() string { return "product" }

func (ProductSchema) Endpoints() crud.Endpoints {
	return crud.Endpoints{
		List:   "/products",
		Create: "/createProducts",
		Update: "/updateProduct/%d",
		Delete: "/deleteProduct/%d",
	}
}

func (ProductSchema) Key(p models.Product) int64 { return p.ProductID }

func (ProductSchema) FormOf(p models.Product) models.ProductForm { return p.Form() }

func (ProductSchema) Payload(form models.ProductForm, _ crud.Mode) (interface{}, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return form.Payload()
}
