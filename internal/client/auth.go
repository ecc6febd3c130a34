package client

import (
	"context"
	"net/http"

	"leavedesk/internal/domain/users"
)

// Session is the result of a successful login. The caller owns the token
// and passes it back via WithToken; the client never stores credentials
// anywhere else.
type Session struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]string{"email": email, "password": password}
	var session Session
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &session); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (c *Client) Register(ctx context.Context, payload users.RegisterPayload) (users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodPost, "/api/users", payload, &user); err != nil {
		return users.User{}, err
	}
	return user, nil
}
