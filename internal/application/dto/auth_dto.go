package dto

// LoginRequest credenciales del operador.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido tras un login correcto.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
