// Package ucs fetches course units and their evaluations from the UC API.
package ucs

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/contract"
	"github.com/pedrofp4444/infoloom-discord-bot/internal/domain/entity"
)

type Client struct {
	url        string
	httpClient *http.Client
}

func New(url string, httpClient *http.Client) contract.UCClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
	}
}

// FetchAll returns every course unit published by the API. Failures are
// logged and reported as an empty list.
func (c *Client) FetchAll(ctx context.Context) []entity.CourseUnit {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		log.Printf("Failed to build UCs request: %v", err)
		return []entity.CourseUnit{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Failed to fetch UCs: %v", err)
		return []entity.CourseUnit{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Failed to fetch UCs: unexpected status %d", resp.StatusCode)
		return []entity.CourseUnit{}
	}

	var units []entity.CourseUnit
	if err := json.NewDecoder(resp.Body).Decode(&units); err != nil {
		log.Printf("Failed to decode UCs response: %v", err)
		return []entity.CourseUnit{}
	}

	return units
}
