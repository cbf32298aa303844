package handler

type signupRequest struct {
	Name     string `json:"name"     validate:"required,min=4,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=30"`
}

// loginRequest carries no validate tags: the login contract reports missing
// fields with dedicated messages before any lookup happens.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}
