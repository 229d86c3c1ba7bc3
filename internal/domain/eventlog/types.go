package eventlog

// Kind es el conjunto cerrado de eventos que admite el log.
type Kind string

const (
	KindPasswordAttempt       Kind = "password_attempt"
	KindPasswordAttemptFailed Kind = "password_attempt_failed"
	KindAdminStoryUpload      Kind = "admin_story_upload"
	KindUserStoryUpload       Kind = "user_story_upload"
	KindChatMessage           Kind = "chat_message"
)
