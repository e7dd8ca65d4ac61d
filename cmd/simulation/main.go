package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api/search/v1"

// Simplified DTOs for the script
type TurnRequest struct {
	SessionID        string `json:"session_id"`
	UserID           string `json:"user_id"`
	ModificationText string `json:"modification_text"`
	Reset            bool   `json:"reset"`
	ImageRef         string `json:"image_ref,omitempty"`
	Limit            int    `json:"limit"`
}

type TurnResponse struct {
	Data struct {
		CurrentText string   `json:"current_text"`
		BackBone    string   `json:"back_bone"`
		Tags        []string `json:"tags"`
		Total       int      `json:"total"`
		Results     []struct {
			Index         int    `json:"index"`
			Description   string `json:"description"`
			Price         string `json:"price"`
			Rating        string `json:"rating"`
			PassedFilters bool   `json:"passed_filters"`
		} `json:"results"`
	} `json:"data"`
}

type turn struct {
	text  string
	reset bool
	image string
}

func main() {
	bold := color.New(color.Bold)
	bold.Println("=== Conversational Search Simulation Client ===")

	sessionID := fmt.Sprintf("sim-%d", time.Now().Unix())
	fmt.Printf("Session: %s\n", sessionID)

	// A typical refinement conversation: open with a query, narrow twice,
	// then contradict the color to force a fresh retrieval.
	conversation := []turn{
		{text: "modern black table lamp for a reading desk", reset: true},
		{text: "with a dimmer switch"},
		{text: "under 80 dollars with rating of at least 4"},
		{text: "actually make it white"},
	}

	for _, t := range conversation {
		color.Cyan("\nUSER: %s", t.text)

		start := time.Now()
		res, err := sendTurn(sessionID, t)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		fmt.Printf("(%v) current_text=%q total=%d tags=%v\n", elapsed, res.Data.CurrentText, res.Data.Total, res.Data.Tags)
		for i, item := range res.Data.Results {
			line := fmt.Sprintf("  %2d. [#%d] %.80s | %s | %s stars", i+1, item.Index, item.Description, item.Price, item.Rating)
			if item.PassedFilters {
				color.Green(line)
			} else {
				color.Yellow(line)
			}
		}

		// Small delay to allow async logs to flush on server side (optional)
		time.Sleep(1 * time.Second)
	}
}

func sendTurn(sessionID string, t turn) (*TurnResponse, error) {
	payload := TurnRequest{
		SessionID:        sessionID,
		UserID:           "sim-user",
		ModificationText: t.text,
		Reset:            t.reset,
		ImageRef:         t.image,
		Limit:            5,
	}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal request: %v", err)
	}

	req, _ := http.NewRequest("POST", baseURL+"/turn", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API Error %d: %s", resp.StatusCode, string(body))
	}

	var res TurnResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}
