package api

import "github.com/mediaforge/mediaforge/pkg/models"

// ExecuteRequest is the body of POST /execute.
type ExecuteRequest struct {
	ExecutionPlan models.ExecutionPlan    `json:"executionPlan"`
	Options       models.ExecutionOptions `json:"options"`
}

// SetProviderKeyRequest is the body of PUT /providers/:provider/key.
type SetProviderKeyRequest struct {
	Key string `json:"key" binding:"required"`
}
