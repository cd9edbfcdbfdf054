package models

// Credentials is the input of registration and authentication.
//
// Email is only required for registration; authentication ignores it.
// Validation rules live in the struct tags and are enforced by
// the validators package.
type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email,omitempty" validate:"required,max=254"`
	Password string `json:"password,omitempty" validate:"required,maxbytes=1024"`
}

// LookupRequest identifies a user by id. Used by the gRPC transport.
// Any non-empty id is accepted; an id that matches no record is a lookup miss.
type LookupRequest struct {
	UserID string `json:"id" validate:"required"`
}

// VersionResponse carries the server version. Used by the gRPC transport.
type VersionResponse struct {
	Version string `json:"version"`
}
