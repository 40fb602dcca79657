package model

// Row is one persisted schedule entry.
type Row struct {
	ID        int64  // surrogate key, carries insertion order
	Community int64  // chat id
	Date      string // canonical YYYY-MM-DD
	Text      string
}
