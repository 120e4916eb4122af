package data

const (
	homeMessage  = "Hello from Flask!"
	homeStatus   = "running"
	healthStatus = "healthy"
)

// HomeResponse is the body served at the root path.
type HomeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// InfoResponse reports the application name and the environment it was
// started in.
type InfoResponse struct {
	App         string `json:"app"`
	Environment string `json:"environment"`
}

func NewHomeResponse() HomeResponse {
	return HomeResponse{
		Message: homeMessage,
		Status:  homeStatus,
	}
}

// NewHealthResponse always reports healthy. Liveness must not depend on
// any downstream resource.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: healthStatus}
}

func NewInfoResponse(app, env string) InfoResponse {
	return InfoResponse{
		App:         app,
		Environment: env,
	}
}
