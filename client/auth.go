package client

import (
	"net/http"
	"strings"
)

const minPasswordLength = 6

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type userResponse struct {
	User User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates and stores token and user in the scope picked by remember.
func (c *Client) Login(username, password string, remember bool) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, invalid("username", "Ingresa usuario y contraseña")
	}

	var resp loginResponse
	body := map[string]string{"username": username, "password": password}
	if err := c.do(http.MethodPost, "/login", body, &resp); err != nil {
		return User{}, err
	}

	if err := c.session.SetRememberSession(remember); err != nil {
		return User{}, err
	}
	if err := c.session.SetAccessToken(resp.Token, remember); err != nil {
		return User{}, err
	}
	if err := c.session.SetStoredUser(&resp.User, remember); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Logout notifies the server and clears local state even when that call fails.
func (c *Client) Logout() error {
	err := c.do(http.MethodPost, "/logout", nil, nil)
	if clearErr := c.session.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (c *Client) Me() (User, error) {
	var resp userResponse
	if err := c.do(http.MethodGet, "/me", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Refresh reloads the profile and stores it next to the token.
func (c *Client) Refresh() (User, error) {
	user, err := c.Me()
	if err != nil {
		return User{}, err
	}
	if err := c.session.SetStoredUser(&user, c.session.Persistent()); err != nil {
		return User{}, err
	}
	return user, nil
}

// Restore validates a stored session at start-up. It returns nil when there
// is no usable session; expired or rejected sessions are cleared.
func (c *Client) Restore() (*User, error) {
	token := c.session.AccessToken()
	if token == "" {
		return nil, nil
	}
	if tokenExpired(token, c.now()) {
		return nil, c.session.Clear()
	}
	user, err := c.Refresh()
	if err != nil {
		c.session.Clear()
		return nil, err
	}
	return &user, nil
}

// ForgotPassword asks the server to email a reset link.
func (c *Client) ForgotPassword(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalid("email", "Ingresa tu correo")
	}
	var resp messageResponse
	err := c.do(http.MethodPost, "/forgot-password", map[string]string{"email": email}, &resp)
	return resp.Message, err
}

// ResetPassword checks length and confirmation locally before sending.
func (c *Client) ResetPassword(token, password, confirm string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", invalid("token", "El enlace no es válido")
	}
	if len(password) < minPasswordLength {
		return "", invalid("password", "La contraseña debe tener al menos 6 caracteres")
	}
	if password != confirm {
		return "", invalid("confirm", "Las contraseñas no coinciden")
	}
	var resp messageResponse
	err := c.do(http.MethodPost, "/reset-password", map[string]string{"token": token, "password": password}, &resp)
	return resp.Message, err
}

func (c *Client) GetAccount() (User, error) {
	var resp userResponse
	if err := c.do(http.MethodGet, "/account", nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// AccountUpdate changes email and optionally the password.
// NewPassword is only sent when non-empty.
type AccountUpdate struct {
	Email           string
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (c *Client) UpdateAccount(update AccountUpdate) (User, error) {
	if update.CurrentPassword == "" {
		return User{}, invalid("current_password", "Debes ingresar tu contraseña actual")
	}
	body := map[string]string{"current_password": update.CurrentPassword}
	if email := strings.TrimSpace(update.Email); email != "" {
		body["email"] = email
	}
	if update.NewPassword != "" {
		if update.NewPassword != update.ConfirmPassword {
			return User{}, invalid("confirm_password", "Las contraseñas no coinciden")
		}
		if len(update.NewPassword) < minPasswordLength {
			return User{}, invalid("new_password", "La contraseña debe tener al menos 6 caracteres")
		}
		body["new_password"] = update.NewPassword
	}

	var resp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := c.do(http.MethodPut, "/account", body, &resp); err != nil {
		return User{}, err
	}
	if c.session.StoredUser() != nil {
		c.session.SetStoredUser(&resp.User, c.session.Persistent())
	}
	return resp.User, nil
}
