package response

const (
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)
