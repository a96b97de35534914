package form

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"fplthreats/internal/player"
)

type stubHistory struct {
	rows map[int][]player.HistoryRow
	err  error
}

func (s stubHistory) FetchHistory(_ context.Context, id int) ([]player.HistoryRow, error) {
	return s.rows[id], s.err
}

func rounds(points ...int) []player.HistoryRow {
	rows := make([]player.HistoryRow, len(points))
	for i, p := range points {
		rows[i] = player.HistoryRow{PlayerID: 1, Round: i + 1, TotalPoints: p}
	}
	return rows
}

func TestSummarise(t *testing.T) {
	tests := []struct {
		name     string
		rows     []player.HistoryRow
		window   int
		wantAvg  string
		wantApps int
	}{
		{name: "TakesLatestRounds", rows: rounds(20, 20, 1, 2, 3, 4, 5), window: 5, wantAvg: "3", wantApps: 5},
		{name: "FewerThanWindow", rows: rounds(4, 8), window: 5, wantAvg: "6", wantApps: 2},
		{name: "Fractional", rows: rounds(1, 2), window: 5, wantAvg: "1.5", wantApps: 2},
		{name: "Empty", rows: nil, window: 5, wantAvg: "0", wantApps: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarise(tc.rows, tc.window)
			if got.Appearances != tc.wantApps {
				t.Fatalf("appearances = %d want %d", got.Appearances, tc.wantApps)
			}
			if !got.Average.Equal(decimal.RequireFromString(tc.wantAvg)) {
				t.Fatalf("average = %s want %s", got.Average, tc.wantAvg)
			}
		})
	}
}

func TestSummariseUnorderedInput(t *testing.T) {
	rows := []player.HistoryRow{
		{Round: 3, TotalPoints: 10},
		{Round: 1, TotalPoints: 0},
		{Round: 2, TotalPoints: 6},
	}
	got := Summarise(rows, 2)
	if !got.Average.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("average = %s want 8", got.Average)
	}
	if rows[0].Round != 3 {
		t.Fatal("input slice must not be reordered")
	}
}

func TestRecentAverage(t *testing.T) {
	calc := NewCalculator(stubHistory{rows: map[int][]player.HistoryRow{7: rounds(2, 4, 6)}}, 0)
	got, err := calc.RecentAverage(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Average.Equal(decimal.NewFromInt(4)) || got.Appearances != 3 {
		t.Fatalf("unexpected form %+v", got)
	}
}

func TestRecentAverageError(t *testing.T) {
	boom := errors.New("boom")
	calc := NewCalculator(stubHistory{err: boom}, 5)
	if _, err := calc.RecentAverage(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}
