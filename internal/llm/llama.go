package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"
)

// LLaMAClient talks to a hosted Llama-3 text-generation endpoint
// (Hugging Face inference style).
type LLaMAClient struct {
	apiKey string
	model  string
	apiURL string
}

func NewLLaMAClient() *LLaMAClient {
	return &LLaMAClient{
		apiKey: os.Getenv("LLAMA_API_KEY"),
		model:  os.Getenv("LLAMA_MODEL"),
		apiURL: os.Getenv("LLAMA_API_URL"),
	}
}

func (l *LLaMAClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float64) (string, error) {
	if l.apiKey == "" {
		return "", errors.New("missing LLAMA_API_KEY")
	}
	if l.apiURL == "" {
		return "", errors.New("missing LLAMA_API_URL")
	}

	payload := map[string]interface{}{
		"model": l.model,
		"input": systemPrompt + "\n\n" + userPrompt,
		"parameters": map[string]interface{}{
			"max_new_tokens": maxTokens,
			"temperature":    temperature,
		},
	}

	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		l.apiURL,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+l.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	// ---- Try the known response formats ----
	var parsed map[string]interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		// Some deployments return bare text
		if len(raw) > 0 {
			return string(raw), nil
		}
		return "", err
	}

	// Variant A
	if v, ok := parsed["output_text"].(string); ok && v != "" {
		return v, nil
	}

	// Variant B
	if v, ok := parsed["generated_text"].(string); ok && v != "" {
		return v, nil
	}

	// Variant C
	if gen, ok := parsed["generation"].(map[string]interface{}); ok {
		if txt, ok := gen["text"].(string); ok && txt != "" {
			return txt, nil
		}
	}

	return "", errors.New("empty llama response")
}
