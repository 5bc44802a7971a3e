package handlers

import (
	"context"

	"github.com/theadtya/youtube-assistant/internal/models"
	"github.com/theadtya/youtube-assistant/internal/services/qa"
)

// AskService runs one question against one video.
type AskService interface {
	Ask(ctx context.Context, req qa.AskRequest) (*models.Answer, error)
}

// CredentialResolver reports which API key a request would use.
type CredentialResolver interface {
	Credential(requestKey string) string
}

// Asker is the combined service the page and API handlers depend on.
type Asker interface {
	AskService
	CredentialResolver
}
