package model

// Scope identifies who issued a command and in which community.
type Scope struct {
	Community int64  // Telegram chat id; partitions all schedule data
	UserID    int64  // sender id, 0 for system callers
	Username  string // optional, for logs
}
