package auth

// Claims representa la sesión verificada del usuario.
type Claims struct {
	UserID string
	Email  string
}
