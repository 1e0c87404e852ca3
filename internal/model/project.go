package model

// Project is a user project a task can belong to.
type Project struct {
	ID   string
	Name string
}
