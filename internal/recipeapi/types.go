package recipeapi

// StatusResponse is the body of GET /recipes/{id}/status.
type StatusResponse struct {
	IsLiked bool `json:"isLiked"`
}

// ToggleResponse is the body of POST /recipes/{id}/like. The service is not
// required to report the resulting state; IsLiked is nil when it does not.
type ToggleResponse struct {
	IsLiked *bool  `json:"isLiked,omitempty"`
	Message string `json:"message,omitempty"`
}

// errorBody covers the error shapes the service is known to return.
type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    struct {
		Message string `json:"message"`
	} `json:"data"`
}

func (e errorBody) message() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Data.Message != "":
		return e.Data.Message
	default:
		return e.Error
	}
}
