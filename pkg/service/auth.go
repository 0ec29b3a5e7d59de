package service

import (
	"fmt"
	"strings"

	"github.com/osohub/cli/pkg/api"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/credentials"
	"github.com/osohub/cli/pkg/formatter"
	"github.com/osohub/cli/pkg/logger"
	"github.com/osohub/cli/pkg/prompter"
)

type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// Login handles user login
func (s *AuthService) Login() error {
	creds, err := credentials.Load()
	if err != nil {
		logger.Error("Failed to load credentials", "error", err)
		return err
	}

	if creds.IsValid() {
		formatter.PrintWarning("Already logged in as %s", creds.Username)
		confirm, err := prompter.PromptConfirm("Continue with new login?")
		if err != nil {
			return err
		}
		if !confirm {
			return nil
		}
	}

	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	client.Init()

	formatter.PrintInfo("Authenticating...")
	loginResp, err := api.Login(email, password)
	if err != nil {
		formatter.PrintError("Login failed: %v", err)
		return err
	}

	client.SetAuthToken(loginResp.Token)

	creds = &credentials.Credentials{
		Token:    loginResp.Token,
		UserID:   loginResp.User.UserID,
		Username: loginResp.User.Username,
		Email:    loginResp.User.Email,
	}

	if err := credentials.Save(creds); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Login successful!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(loginResp.User.Username))
	fmt.Printf("\n")
	formatter.PrintKeyValue(map[string]interface{}{
		"Username": loginResp.User.Username,
		"Email":    loginResp.User.Email,
		"User ID":  loginResp.User.UserID,
	})

	return nil
}

// Register handles account creation. The backend logs the new account in,
// so the returned token is stored like a login.
func (s *AuthService) Register() error {
	email, err := prompter.PromptString("Email: ")
	if err != nil {
		return err
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email address")
	}

	username, err := prompter.PromptString("Username: ")
	if err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	password, err := prompter.PromptPassword("Password: ")
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	confirm, err := prompter.PromptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	client.Init()

	formatter.PrintInfo("Creating account...")
	registerResp, err := api.Register(api.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		formatter.PrintError("Registration failed: %v", err)
		return err
	}

	client.SetAuthToken(registerResp.Token)

	creds := &credentials.Credentials{
		Token:    registerResp.Token,
		UserID:   registerResp.User.UserID,
		Username: registerResp.User.Username,
		Email:    registerResp.User.Email,
	}

	if err := credentials.Save(creds); err != nil {
		formatter.PrintError("Failed to save credentials: %v", err)
		return err
	}

	formatter.PrintSuccess("Account created!")
	formatter.PrintInfo("Logged in as %s", formatter.Bold.Sprint(registerResp.User.Username))

	return nil
}

// Logout removes the stored credentials
func (s *AuthService) Logout() error {
	creds, err := credentials.Load()
	if err != nil {
		return err
	}

	if creds == nil {
		formatter.PrintInfo("Not logged in")
		return nil
	}

	if err := credentials.Delete(); err != nil {
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	client.ClearAuthToken()

	formatter.PrintSuccess("Logged out %s", creds.Username)
	return nil
}

// GetMe displays the current authenticated user
func (s *AuthService) GetMe() error {
	user, err := api.GetCurrentUser()
	if err != nil {
		if api.IsUnauthorized(err) {
			formatter.PrintError("Not logged in. Run 'osohub auth login' first.")
			return err
		}
		return fmt.Errorf("failed to fetch current user: %w", err)
	}

	formatter.PrintKeyValue(map[string]interface{}{
		"User ID":  user.UserID,
		"Username": user.Username,
		"Email":    user.Email,
		"Bio":      user.Bio,
	})

	return nil
}
