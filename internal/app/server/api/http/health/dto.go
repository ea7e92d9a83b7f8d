package health

type statusInput struct{}

type statusOutput struct {
	Body StatusResponse
}

// StatusResponse describes the running instance. The backend is not called.
type StatusResponse struct {
	Status string `json:"status" example:"OK"`
	Env    string `json:"env" example:"prod" doc:"APP_ENV the process was started with"`
	Table  string `json:"table" example:"Questions" doc:"Airtable table the questions are proxied to"`
	Uptime string `json:"uptime" example:"3h12m5s"`
}
