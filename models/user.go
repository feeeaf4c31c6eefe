package models

// User is an authenticated Firebase user as seen by this backend. The
// uid is produced exclusively by Firebase Auth; this service never
// creates or mutates identifiers itself.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
}
