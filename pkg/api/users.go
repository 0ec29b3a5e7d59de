package api

import (
	"fmt"

	json "github.com/json-iterator/go"
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/logger"
)

// UpdateProfile updates the current user's profile
func UpdateProfile(req UpdateProfileRequest) (*User, error) {
	logger.Debug("Updating profile")

	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Patch("/users/me")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	logger.Debug("Profile updated", "username", user.Username)
	return &user, nil
}

// GetUser fetches a user by id
func GetUser(userID string) (*User, error) {
	logger.Debug("Fetching user", "user_id", userID)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/users/%s", userID))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(resp.Body(), &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// GetPublicProfile fetches a user's public profile (user plus images)
func GetPublicProfile(username string) (*PublicProfileResponse, error) {
	logger.Debug("Fetching public profile", "username", username)

	resp, err := client.GetClient().
		R().
		Get(fmt.Sprintf("/profile/%s", username))

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var profile PublicProfileResponse
	if err := json.Unmarshal(resp.Body(), &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetShareLink fetches the current user's public share link
func GetShareLink() (string, error) {
	logger.Debug("Fetching share link")

	resp, err := client.GetClient().
		R().
		Get("/users/me/share-link")

	if err := CheckResponse(resp, err); err != nil {
		return "", err
	}

	var link ShareLinkResponse
	if err := json.Unmarshal(resp.Body(), &link); err != nil {
		return "", err
	}

	return link.ShareURL, nil
}

// BanUser sets a user's banned flag (admin only)
func BanUser(userID string, banned bool) error {
	logger.Debug("Setting ban status", "user_id", userID, "banned", banned)

	reqBody, err := json.Marshal(map[string]bool{"banned": banned})
	if err != nil {
		return err
	}

	resp, err := client.GetClient().
		R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Patch(fmt.Sprintf("/users/%s/ban", userID))

	return CheckResponse(resp, err)
}
