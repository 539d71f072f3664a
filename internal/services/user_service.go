// internal/services/user_service.go
package services

import (
	"fmt"

	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/models"
	"github.com/javajoker/storefront-admin/internal/utils"
)

type UserController = crud.Controller[models.User, models.UserForm]

type UserSchema struct{}

func NewUserController(client crud.Collaborator, opts ...crud.Option) *UserController {
	return crud.New[models.User, models.UserForm](UserSchema{}, client, opts...)
}

func (UserSchema) Entity() string { return "user" }

func (UserSchema) Endpoints() crud.Endpoints {
	return crud.Endpoints{
		List:   "/users",
		Create: "/createUsers",
		Update: "/updateUser/%d",
		Delete: "/deleteUser/%d",
	}
}

func (UserSchema) Key(u models.User) int64 { return u.UserID }

// FormOf leaves the password blank; the operator retypes it on every update.
func (UserSchema) FormOf(u models.User) models.UserForm { return u.Form() }

func (UserSchema) Payload(form models.UserForm, _ crud.Mode) (interface{}, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return form.Payload()
}
