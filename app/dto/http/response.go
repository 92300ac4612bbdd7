package http

type RegisterResponse struct {
	UserID  uint64 `json:"user_id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ForgotPasswordResponse struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

type ValidateResetTokenResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type ResetPasswordResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
