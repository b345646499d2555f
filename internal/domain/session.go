package domain

import "time"

// SessionConfig holds the FBS credentials and codes. It is loaded once at
// startup and never mutated afterward.
type SessionConfig struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Endpoint string `json:"endpoint"`
	Agency   string `json:"agency"`
	Location string `json:"location"`
}

func (c SessionConfig) Complete() bool {
	return c.Endpoint != "" && c.Agency != ""
}

// OnlineRequest asks the reachability provider whether URL answers.
type OnlineRequest struct {
	URL     string
	Timeout time.Duration
}

type StorageRequest struct {
	Type string
	Name string
	// Value is only set for save requests.
	Value any
}
