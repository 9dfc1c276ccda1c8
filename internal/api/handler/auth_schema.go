package handler

// errorResponse is the standard error envelope on non-auth routes.
type errorResponse struct {
	Error string `json:"error"`
}

// Auth routes keep the envelope the dashboard client already consumes:
// {success, authtoken} on success, {success, error|errors} on failure.

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is the administrative patch. Nil fields are absent from
// the body and leave the stored values unchanged.
type updateUserRequest struct {
	Role                   *string `json:"role" validate:"omitempty,oneof=owner viewer collaborator"`
	CanCollaborate         *bool   `json:"canCollaborate"`
	RequestedToCollaborate *bool   `json:"requestedToCollaborate"`
}

type tokenResponse struct {
	Success   bool   `json:"success"`
	AuthToken string `json:"authtoken"`
}

type authFailureResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}
