package dto

type LoginInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type SMSLoginInput struct {
	Phone     string `json:"phone"`
	Code      string `json:"code"`
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

type SendCodeInput struct {
	Phone string `json:"phone"`
}
