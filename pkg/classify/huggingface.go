package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// defaultHFModel is a binary sentiment model emitting POSITIVE/NEGATIVE labels.
const defaultHFModel = "distilbert/distilbert-base-uncased-finetuned-sst-2-english"

// HuggingFaceClassifier implements the Classifier interface using the
// Hugging Face Inference API.
type HuggingFaceClassifier struct {
	apiKey string
	model  string
	client *http.Client
}

// NewHuggingFaceClassifier creates a new Hugging Face classifier
func NewHuggingFaceClassifier(apiKey, model string) *HuggingFaceClassifier {
	if model == "" {
		model = defaultHFModel
	}
	return &HuggingFaceClassifier{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}
}

// Name returns the provider name
func (c *HuggingFaceClassifier) Name() string {
	return fmt.Sprintf("Hugging Face (%s)", c.model)
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

// Classify submits the text and returns the top-scoring label.
// The inference API answers [[{"label","score"},...]] with candidates
// ordered by score; some deployments flatten the outer array.
func (c *HuggingFaceClassifier) Classify(ctx context.Context, text string) (*Result, error) {
	jsonData, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := "https://api-inference.huggingface.co/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Hugging Face API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Hugging Face API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Hugging Face response: %w", err)
	}

	var nested [][]Result
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return &nested[0][0], nil
	}

	var flat []Result
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return &flat[0], nil
	}

	return nil, fmt.Errorf("failed to decode Hugging Face response: %s", string(body))
}
