package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"smart-task-manager/internal/parser"
)

func TestSuggestSubtasks(t *testing.T) {
	tests := []struct {
		name     string
		input    parser.SuggestSubtasksInput
		response string
		genErr   error
		want     []string
		wantErr  error
	}{
		{
			name:     "array in prose",
			input:    parser.SuggestSubtasksInput{Title: "Organizar festa"},
			response: `Sugestões: ["Listar convidados", "Reservar local", "Enviar convites"]`,
			want:     []string{"Listar convidados", "Reservar local", "Enviar convites"},
		},
		{
			name:     "trimmed and capped at five",
			input:    parser.SuggestSubtasksInput{Title: "Mudança"},
			response: `[" a ", "b", "", "c", "d", "e", "f"]`,
			want:     []string{"a", "b", "c", "d", "e"},
		},
		{
			name:     "non-string item",
			input:    parser.SuggestSubtasksInput{Title: "Mudança"},
			response: `["a", 2, "c"]`,
			wantErr:  parser.ErrInvalidSuggestionFormat,
		},
		{
			name:     "empty array",
			input:    parser.SuggestSubtasksInput{Title: "Mudança"},
			response: `[]`,
			wantErr:  parser.ErrInvalidSuggestionFormat,
		},
		{
			name:     "object instead of array",
			input:    parser.SuggestSubtasksInput{Title: "Mudança"},
			response: `{"subtasks": 3}`,
			wantErr:  parser.ErrNoJSONFound,
		},
		{
			name:     "malformed array",
			input:    parser.SuggestSubtasksInput{Title: "Mudança"},
			response: `["a", "b",]`,
			wantErr:  parser.ErrMalformedJSON,
		},
		{
			name:    "gateway failure is not degraded",
			input:   parser.SuggestSubtasksInput{Title: "Mudança"},
			genErr:  parser.ErrGenerationFailed,
			wantErr: parser.ErrGenerationFailed,
		},
		{
			name:    "empty title",
			input:   parser.SuggestSubtasksInput{Title: " "},
			wantErr: parser.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{response: tt.response, err: tt.genErr}
			uc, _ := newTestUseCase(t, gw)

			got, err := uc.SuggestSubtasks(context.Background(), tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if got.Subtasks != nil {
					t.Errorf("expected no subtasks on failure, got %v", got.Subtasks)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Subtasks); diff != "" {
				t.Errorf("SuggestSubtasks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuggestSubtasks_Unavailable(t *testing.T) {
	gw := &fakeGateway{unavailable: true}
	uc, limiter := newTestUseCase(t, gw)

	_, err := uc.SuggestSubtasks(context.Background(), parser.SuggestSubtasksInput{Title: "x"})
	if !errors.Is(err, parser.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
	if limiter.Count() != 0 {
		t.Errorf("expected limiter untouched, got count %d", limiter.Count())
	}
}

func TestSuggestSubtasks_SharesLimiterWithParse(t *testing.T) {
	gw := &fakeGateway{response: `["a"]`}
	uc, limiter := newTestUseCase(t, gw)

	for i := 0; i < 60; i++ {
		if _, err := uc.SuggestSubtasks(context.Background(), parser.SuggestSubtasksInput{Title: "x"}); err != nil {
			t.Fatalf("call %d: %v", i+1, err)
		}
	}

	got := uc.ParseTask(context.Background(), parser.ParseTaskInput{Text: "x"})
	if got.Success {
		t.Fatalf("expected parse to be rate limited after 60 suggestions")
	}
	if limiter.Count() != 60 {
		t.Errorf("expected count 60, got %d", limiter.Count())
	}
}
