package user

import "github.com/google/uuid"

type RegisterUserDTO struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	IsTeacher bool   `json:"isTeacher"`
}

type RegisterUserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Status string    `json:"status"`
}
