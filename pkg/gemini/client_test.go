package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"smart-task-manager/pkg/datemath"
	"smart-task-manager/pkg/gemini"
)

func TestBuildTaskParsingPrompt(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	dc := parser.Context(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	rawText := "Comprar pão amanhã"

	prompt := gemini.BuildTaskParsingPrompt(rawText, dc, []string{"Casa", "Trabalho"})

	if !strings.Contains(prompt, "You are a task parsing assistant") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, "Today: 2024-05-01") || !strings.Contains(prompt, "Tomorrow: 2024-05-02") {
		t.Errorf("prompt missing date context")
	}
	if !strings.Contains(prompt, "- Trabalho\n") {
		t.Errorf("prompt missing project list")
	}
	if !strings.HasSuffix(prompt, rawText) {
		t.Errorf("prompt missing source user text")
	}
}

func TestBuildTaskParsingPrompt_NoProjects(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	prompt := gemini.BuildTaskParsingPrompt("x", parser.Context(time.Now()), nil)
	if strings.Contains(prompt, "AVAILABLE PROJECTS") {
		t.Errorf("project section should be omitted when no projects are given")
	}
}

func TestBuildSubtaskPrompt(t *testing.T) {
	prompt := gemini.BuildSubtaskPrompt("Organizar festa", "aniversário da Ana")
	if !strings.Contains(prompt, "TASK: Organizar festa") || !strings.Contains(prompt, "DETAILS: aniversário da Ana") {
		t.Errorf("unexpected prompt: %s", prompt)
	}

	prompt = gemini.BuildSubtaskPrompt("Organizar festa", "  ")
	if strings.Contains(prompt, "DETAILS") {
		t.Errorf("empty description should be omitted")
	}
}

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(context.Background(), gemini.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		raw, _ := json.Marshal(body)
		if strings.Contains(string(raw), "cause_400") {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"code":400,"message":"bad request","status":"INVALID_ARGUMENT"}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "mocked response string"}], "role": "model"}}
			],
			"usageMetadata": {"promptTokenCount": 3, "candidatesTokenCount": 4, "totalTokenCount": 7}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(context.Background(), gemini.Config{
		APIKey:  "test-api-key",
		BaseURL: ts.URL,
		Model:   "gemini-test",
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "Hello world"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "mocked response string" {
			t.Errorf("unexpected content response: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 7 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: "cause_400"})
		if err == nil {
			t.Fatalf("expected error from 400 response")
		}
	})

	t.Run("Empty Prompt", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{Prompt: " "})
		if err == nil {
			t.Fatalf("expected error for empty prompt")
		}
	})

	if client.Model() != "gemini-test" {
		t.Errorf("Model() = %s, want gemini-test", client.Model())
	}
}
