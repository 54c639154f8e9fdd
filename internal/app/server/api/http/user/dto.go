package user

type credentials struct {
	Email    string `json:"email" doc:"E-mail do usuário" format:"email"`
	Password string `json:"password" doc:"Senha" minLength:"6"`
}

type registerInput struct {
	Body credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
}

type loginInput struct {
	Body credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type logoutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token da sessão"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}

type sessionInput struct{}

type sessionOutput struct {
	Body SessionResponse
}

type SessionResponse struct {
	UserID int    `json:"user_id"`
	Status string `json:"status"`
}
