package commands

import (
	"strconv"

	"github.com/javajoker/storefront-admin/cmd/adminctl/output"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/services"
)

var userEntity = entity[models.User, models.UserForm]{
	name: "users",
	page: func(ws *services.Workspace) *crud.Controller[models.User, models.UserForm] { return ws.Users },
	fields: []field[models.UserForm]{
		{flag: "name", usage: "Username", value: func(f *models.UserForm) *string { return &f.Name }},
		{flag: "email", usage: "Email address", value: func(f *models.UserForm) *string { return &f.Email }},
		{flag: "password", usage: "Password (required on create and update)", value: func(f *models.UserForm) *string { return &f.Password }},
	},
	headers: []string{"ID", "USERNAME", "EMAIL", "CREATED"},
	row: func(u models.User) []string {
		return []string{strconv.FormatInt(u.UserID, 10), u.Username, u.Email, formatDate(u.CreatedAt)}
	},
}

var productEntity = entity[models.Product, models.ProductForm]{
	name: "products",
	page: func(ws *services.Workspace) *crud.Controller[models.Product, models.ProductForm] { return ws.Products },
	fields: []field[models.ProductForm]{
		{flag: "name", usage: "Product name", value: func(f *models.ProductForm) *string { return &f.ProductName }},
		{flag: "description", usage: "Description", value: func(f *models.ProductForm) *string { return &f.Description }},
		{flag: "price", usage: "Price, at least 0.01", value: func(f *models.ProductForm) *string { return &f.Price }},
		{flag: "stock", usage: "Stock quantity, 0 or more", value: func(f *models.ProductForm) *string { return &f.Stock }},
	},
	headers: []string{"ID", "NAME", "PRICE", "STOCK", "DESCRIPTION"},
	row: func(p models.Product) []string {
		return []string{
			strconv.FormatInt(p.ProductID, 10),
			p.ProductName,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Stock),
			p.Description,
		}
	},
}

var orderEntity = entity[models.Order, models.OrderForm]{
	name: "orders",
	page: func(ws *services.Workspace) *crud.Controller[models.Order, models.OrderForm] { return ws.Orders },
	fields: []field[models.OrderForm]{
		{flag: "user-id", usage: "Ordering user's ID", value: func(f *models.OrderForm) *string { return &f.UserID }},
		{flag: "total", usage: "Total amount", value: func(f *models.OrderForm) *string { return &f.TotalAmount }},
		{flag: "status", usage: "pending, shipped or delivered", value: func(f *models.OrderForm) *string { return &f.Status }},
	},
	headers: []string{"ID", "USER", "TOTAL", "STATUS", "DATE"},
	row: func(o models.Order) []string {
		return []string{
			strconv.FormatInt(o.OrderID, 10),
			strconv.FormatInt(o.UserID, 10),
			o.TotalAmount.StringFixed(2),
			output.StatusIcon(string(o.Status)) + " " + string(o.Status),
			formatDate(o.OrderDate),
		}
	},
}

var reviewEntity = entity[models.Review, models.ReviewForm]{
	name: "reviews",
	page: func(ws *services.Workspace) *crud.Controller[models.Review, models.ReviewForm] { return ws.Reviews },
	fields: []field[models.ReviewForm]{
		{flag: "user-id", usage: "Reviewing user's ID (sent on create only)", value: func(f *models.ReviewForm) *string { return &f.UserID }},
		{flag: "product-id", usage: "Reviewed product's ID", value: func(f *models.ReviewForm) *string { return &f.ProductID }},
		{flag: "rating", usage: "Rating from 1 to 5", value: func(f *models.ReviewForm) *string { return &f.Rating }},
		{flag: "text", usage: "Review text", value: func(f *models.ReviewForm) *string { return &f.ReviewText }},
	},
	headers: []string{"ID", "USER", "PRODUCT", "RATING", "REVIEW", "CREATED"},
	row: func(r models.Review) []string {
		return []string{
			strconv.FormatInt(r.ReviewID, 10),
			strconv.FormatInt(r.UserID, 10),
			strconv.FormatInt(r.ProductID, 10),
			strconv.Itoa(r.Rating),
			r.ReviewText,
			formatDate(r.CreatedAt),
		}
	},
}
