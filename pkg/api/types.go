package api

// Auth Request/Response Types
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by both login and registration.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the backend's user record. Every field may be absent.
type User struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	IsAdmin           bool   `json:"is_admin,omitempty"`
	Banned            bool   `json:"banned,omitempty"`
}

type UpdateProfileRequest struct {
	Username          string `json:"username,omitempty"`
	Email             string `json:"email,omitempty"`
	Bio               string `json:"bio,omitempty"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
	Password          string `json:"password,omitempty"`
}

// RawImage is the wire record for one uploaded image. The backend may omit
// or null any field; consumers apply their own fallbacks.
type RawImage struct {
	ImageID               string `json:"image_id"`
	ImageURL              string `json:"image_url"`
	Title                 string `json:"title"`
	UserID                string `json:"user_id"`
	Username              string `json:"username"`
	UserProfilePictureURL string `json:"user_profile_picture_url"`
	LikeCount             int    `json:"like_count"`
	IsLiked               bool   `json:"is_liked"`
	UploadedAt            string `json:"uploaded_at"`
}

// PublicProfileResponse bundles a user with their images.
type PublicProfileResponse struct {
	User   User       `json:"user"`
	Images []RawImage `json:"images"`
}

type ShareLinkResponse struct {
	ShareURL string `json:"share_url"`
}

// Like Types
type LikeCountResponse struct {
	Count int `json:"count"`
}

type LikeStatusResponse struct {
	Liked bool `json:"liked"`
}

// Report Types
type ReportRequest struct {
	Category string `json:"category"`
	Reason   string `json:"reason"`
}

type ReportCountResponse struct {
	Count int `json:"count"`
}

type ReportCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CategoryReportCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type ReportsByCategoryResponse struct {
	Reports []CategoryReportCount `json:"reports"`
}

// Error Response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
