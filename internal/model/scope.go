package model

// Scope carries the caller identity through a request.
// Authentication happens upstream; UserID is the backend user UUID.
type Scope struct {
	UserID string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
