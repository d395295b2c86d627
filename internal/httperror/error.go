package httperror

type Error struct {
	Message string `json:"error" example:"you need to be logged in to do this"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
