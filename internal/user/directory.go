package user

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	ErrConnectionFailed = errors.New("Falha ao conectar com o servidor.")
	ErrUserNotFound     = errors.New("Usuário não encontrado.")
)

// Directory finds registered users by e-mail.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type remoteDirectory struct {
	client *resty.Client
	url    string
}

func NewRemoteDirectory(url string, timeout time.Duration) Directory {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &remoteDirectory{client: client, url: url}
}

func (d *remoteDirectory) FindByEmail(ctx context.Context, email string) (*User, error) {
	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		Get(d.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrConnectionFailed, resp.StatusCode())
	}

	var users []remoteUser
	if err := json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	u := users[0].toUser()
	return &u, nil
}

// remoteUser is the record returned by the users endpoint, whose ids may be
// numbers or strings.
type remoteUser struct {
	ID    flexibleID `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  string     `json:"role"`
}

func (r remoteUser) toUser() User {
	return User{ID: string(r.ID), Name: r.Name, Email: r.Email, Role: r.Role}
}

type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&n); err != nil {
		return fmt.Errorf("user id must be a number or string: %w", err)
	}
	*id = flexibleID(canonicalNumber(n))
	return nil
}

// canonicalNumber renders integral ids without fraction or exponent, so 7,
// 7.0 and 7e0 all name the same user.
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.TrimSpace(n.String())
}
