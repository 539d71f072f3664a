// internal/models/user.go
package models

import (
	"encoding/json"
	"time"
)

type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserForm holds the user page's inputs. Password is write-only: it is
// bound from requests but never rendered back out.
type UserForm struct {
	Name     string `json:"name" label:"Username" validate:"notblank"`
	Email    string `json:"email" label:"Email" validate:"notblank,email"`
	Password string `json:"password" label:"Password" validate:"notblank"`
}

type UserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u User) Form() UserForm {
	return UserForm{
		Name:  u.Username,
		Email: u.Email,
	}
}

func (f UserForm) Payload() (UserPayload, error) {
	return UserPayload{
		Name:     f.Name,
		Email:    f.Email,
		Password: f.Password,
	}, nil
}

func (f UserForm) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}{f.Name, f.Email})
}
