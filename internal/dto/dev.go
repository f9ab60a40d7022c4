package dto

import (
	"time"

	"github.com/google/uuid"
)

// SeedWalletRequest generates fake transactions for the calling user
type SeedWalletRequest struct {
	Months  int  `json:"months" validate:"omitempty,min=1,max=24"`
	Count   int  `json:"count" validate:"omitempty,min=1,max=5000"`
	Replace bool `json:"replace"`
}

type SeedWalletResponse struct {
	Inserted int   `json:"inserted"`
	Deleted  int64 `json:"deleted"`
}

// DevTokenRequest issues a token for local testing
type DevTokenRequest struct {
	UserID string `json:"userId" validate:"omitempty,uuid"`
	Email  string `json:"email" validate:"omitempty,email"`
}

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	UserID      uuid.UUID `json:"userId"`
}
