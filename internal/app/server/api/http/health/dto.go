package health

// Input is empty; the check takes no parameters.
type Input struct{}

type Output struct {
	Body Response
}

// Response reports service liveness.
type Response struct {
	Status string `json:"status" example:"OK" doc:"Service liveness"`
}
