package viewmodels

type ErrorResponse struct {
	Message string `json:"message"`
}

type ContactResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}
