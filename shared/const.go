package shared

const (
	UserID    = "user_id"
	SessionID = "session_id"

	// Object storage folders for unlockable artwork.
	FolderBadges = "badges"
	FolderSkins  = "skins"
	FolderEvents = "events"

	// Persisted document kinds, one row per user per kind.
	DocumentProgress = "progress"
	DocumentSkins    = "skins"
	DocumentEvents   = "events"
)
