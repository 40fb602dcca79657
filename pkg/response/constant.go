package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	// DateFormat matches the canonical schedule date.
	DateFormat = "2006-01-02"
)
