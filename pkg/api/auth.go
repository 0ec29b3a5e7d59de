package api

import (
	json "github.com/json-iterator/go"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/logger"
)

// Login authenticates user with email and password
func Login(email, password string) (*LoginResponse, error) {
	logger.Debug("Attempting login", "email", email)

	req := LoginRequest{
		Email:    email,
		Password: password,
	}

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/auth/login")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &loginResp); err != nil {
		return nil, err
	}

	logger.Debug("Login successful", "username", loginResp.User.Username)
	return &loginResp, nil
}

// Register creates a new account. The backend logs the new user in and
// returns a token alongside the user record.
func Register(req RegisterRequest) (*LoginResponse, error) {
	logger.Debug("Registering user", "username", req.Username)

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post("/users")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var registerResp LoginResponse
	if err := json.Unmarshal(resp.Body(), &registerResp); err != nil {
		return nil, err
	}

	logger.Debug("Registration successful", "user_id", registerResp.User.UserID)
	return &registerResp, nil
}

// GetCurrentUser gets the current authenticated user
func GetCurrentUser() (*User, error) {
	logger.Debug("Fetching current user")

	resp, err := client.GetClient().
		R().
		Get("/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	logger.Debug("Current user fetched", "username", user.Username)
	return &user, nil
}
