package dto

// LoginDTO is the email-only login/registration request.
type LoginDTO struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponseDTO carries the session token and account snapshot.
type LoginResponseDTO struct {
	Token  string        `json:"token"`
	User   UserDTO       `json:"user"`
	Status UserStatusDTO `json:"status"`
}

// AdminLoginDTO is the admin password login request.
type AdminLoginDTO struct {
	Password string `json:"password" validate:"required"`
}

type AdminLoginResponseDTO struct {
	Token string `json:"token"`
}
