package client

import (
	"context"
	"net/http"

	"leavedesk/internal/domain/users"
)

func (c *Client) ListUsers(ctx context.Context) ([]users.User, error) {
	var list []users.User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, payload users.UpdatePayload) (users.User, error) {
	var user users.User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, payload, &user); err != nil {
		return users.User{}, err
	}
	return user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}
