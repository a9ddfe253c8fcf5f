package model

import "github.com/slack-go/slack"

// NotificationColor is the color of every attachment produced
const NotificationColor = "#6498CC"

// ZeroSHA is the "before" value GitLab sends when a ref is created
const ZeroSHA = "0000000000000000000000000000000000000000"

// IsZeroSHA reports whether sha is the zero SHA or empty
func IsZeroSHA(sha string) bool {
	return sha == "" || sha == ZeroSHA
}

// Result is the translation outcome. Exactly one of Content and Error is set.
type Result struct {
	Content *slack.WebhookMessage `json:"content,omitempty"`
	Error   *ResultError          `json:"error,omitempty"`
}

// ResultError describes a failed translation
type ResultError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewContentResult wraps msg in a Result
func NewContentResult(msg *slack.WebhookMessage) *Result {
	return &Result{Content: msg}
}

// NewErrorResult converts err into an error Result
func NewErrorResult(err error) *Result {
	return &Result{
		Error: &ResultError{
			Success: false,
			Message: err.Error(),
		},
	}
}
