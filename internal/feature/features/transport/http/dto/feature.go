// Package dto defines the HTTP request/response shapes for the features feature.
package dto

// RegisterFeatureRequest is the body of POST /tickers/:symbol/features.
type RegisterFeatureRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// FeatureResponse is the JSON representation of a registered feature.
type FeatureResponse struct {
	ID          uint    `json:"id"`
	TickerID    uint    `json:"ticker_id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// FeatureValueResponse is the JSON representation of one stored value point.
type FeatureValueResponse struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}
