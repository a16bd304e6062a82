package constants

// User roles carried in the user_type token claim
const (
	RoleUser    = "user"
	RoleSpeaker = "speaker"
)
