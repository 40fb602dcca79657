package repository

// AppendOptions holds the row to insert.
type AppendOptions struct {
	Community int64
	Date      string // canonical YYYY-MM-DD
	Text      string
}

// DeleteDateOptions selects the rows of one day.
type DeleteDateOptions struct {
	Community int64
	Date      string // canonical YYYY-MM-DD
}
