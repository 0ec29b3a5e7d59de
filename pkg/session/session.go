package session

import (
	"github.com/osohub/cli/pkg/client"
	"github.com/osohub/cli/pkg/credentials"
)

// Context is a read-only snapshot of the authenticated session, built once
// from stored credentials and passed to the services that need it. Login
// and logout replace the stored credentials; they never mutate a Context.
type Context struct {
	UserID   string
	Username string
	Token    string
}

// Anonymous reports whether the session has no authenticated user.
func (c *Context) Anonymous() bool {
	return c == nil || c.Token == ""
}

// Current loads the stored credentials and wires the auth token into the
// HTTP client. Returns an anonymous context when no credentials exist.
func Current() (*Context, error) {
	creds, err := credentials.Load()
	if err != nil {
		return nil, err
	}

	if !creds.IsValid() {
		return &Context{}, nil
	}

	client.SetAuthToken(creds.Token)

	return &Context{
		UserID:   creds.UserID,
		Username: creds.Username,
		Token:    creds.Token,
	}, nil
}
