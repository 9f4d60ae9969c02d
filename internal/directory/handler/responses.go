package handler

import "github.com/google/uuid"

type statusResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	ID      *uuid.UUID `json:"_id,omitempty"`
}

func success(message string) statusResponse {
	return statusResponse{Status: "success", Message: message}
}

func created(id uuid.UUID) statusResponse {
	return statusResponse{Status: "success", Message: "Data saved", ID: &id}
}
