package datemath_test

import (
	"testing"
	"time"

	"smart-task-manager/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{name: "Today", relative: "today", want: startOfBase},
		{name: "Hoje", relative: "hoje", want: startOfBase},
		{name: "Tomorrow", relative: "tomorrow", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Amanhã", relative: "Amanhã", want: startOfBase.AddDate(0, 0, 1)},
		{name: "Depois de amanhã", relative: "depois de  amanhã", want: startOfBase.AddDate(0, 0, 2)},
		{name: "Yesterday", relative: "yesterday", want: startOfBase.AddDate(0, 0, -1)},
		{name: "In 3 days", relative: "in 3 days", want: startOfBase.AddDate(0, 0, 3)},
		{name: "Em 2 semanas", relative: "em 2 semanas", want: startOfBase.AddDate(0, 0, 14)},
		{name: "In 1 month", relative: "in 1 month", want: startOfBase.AddDate(0, 1, 0)},
		{name: "Daqui a 2 meses", relative: "daqui a 2 meses", want: startOfBase.AddDate(0, 2, 0)},
		{name: "Invalid duration pattern", relative: "in a few days", want: baseTime, wantErr: true},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Próxima sexta-feira (from Wed)",
			relative: "próxima sexta-feira",
			want:     startOfBase.AddDate(0, 0, 2),
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		text       string
		wantDay    string
		wantPhrase string
		wantOK     bool
	}{
		{"Dentista amanhã às 10h", "2024-05-02", "amanhã", true},
		{"Entregar relatório depois de amanhã", "2024-05-03", "depois de amanhã", true},
		{"Revisar contrato em 2 semanas", "2024-05-15", "em 2 semanas", true},
		{"Call the client next friday.", "2024-05-03", "next friday", true},
		{"Reunião sexta-feira com o time", "2024-05-03", "sexta-feira", true},
		{"Comprar pão", "", "", false},
		{"semana que vem", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			day, phrase, ok := parser.Resolve(tt.text, base)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got := day.Format(datemath.DateFormatISO); got != tt.wantDay {
				t.Errorf("Resolve() day = %s, want %s", got, tt.wantDay)
			}
			if phrase != tt.wantPhrase {
				t.Errorf("Resolve() phrase = %q, want %q", phrase, tt.wantPhrase)
			}
		})
	}
}

func TestContext(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC) // Sunday

	ctx := parser.Context(now)
	if ctx.Today != "2024-05-05" || ctx.Weekday != "Sunday" {
		t.Errorf("unexpected today: %+v", ctx)
	}
	if ctx.Tomorrow != "2024-05-06" {
		t.Errorf("Tomorrow = %s, want 2024-05-06", ctx.Tomorrow)
	}
	if ctx.WeekStart != "2024-04-29" || ctx.WeekEnd != "2024-05-05" {
		t.Errorf("week = %s..%s, want 2024-04-29..2024-05-05", ctx.WeekStart, ctx.WeekEnd)
	}
}

func TestMentionsRelativeDate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Comprar pão amanhã", true},
		{"reunião na sexta-feira às 10h", true},
		{"call mom tomorrow", true},
		{"entregar relatório semana que vem", true},
		{"Comprar pão", false},
		{"Pay rent 2024-05-01", false},
	}
	for _, tt := range tests {
		if got := datemath.MentionsRelativeDate(tt.text); got != tt.want {
			t.Errorf("MentionsRelativeDate(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
