package dto

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type ResetPasswordInput struct {
	Email string `json:"email"`
}
