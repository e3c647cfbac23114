package user

import "errors"

// ErrNotAdmin signals that the requesting account lacks the admin role.
var ErrNotAdmin = errors.New("requester is not an admin")
