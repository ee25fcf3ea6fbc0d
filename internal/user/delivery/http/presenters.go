package http

import (
	"property-listings/internal/user"
	"property-listings/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string             `json:"id"`
	Username  string             `json:"username"`
	Email     string             `json:"email"`
	CreatedAt response.Timestamp `json:"created_at"`
}

func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: response.Timestamp(u.CreatedAt),
	}
}

type authResp struct {
	User      userResp           `json:"user"`
	Token     string             `json:"token"`
	ExpiresAt response.Timestamp `json:"expires_at"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:      newUserResp(out.User),
		Token:     out.Token,
		ExpiresAt: response.Timestamp(out.ExpiresAt),
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out user.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
