package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"fplthreats/internal/player"
)

func pl(id int, name string, pos player.Position, ppg, own string, price int) player.Player {
	return player.Player{
		ID:            id,
		WebName:       name,
		Position:      pos,
		Status:        player.StatusActive,
		PointsPerGame: decimal.RequireFromString(ppg),
		Ownership:     decimal.RequireFromString(own),
		TotalPoints:   50,
		PriceTenths:   price,
	}
}

func fm(avg string) player.Form {
	return player.Form{Average: decimal.RequireFromString(avg), Appearances: 5}
}

func fixture() (Cohorts, map[int]player.Form) {
	c := Cohorts{
		Owned:      []player.Player{pl(1, "Owned", player.Defender, "4.0", "30", 50)},
		Excluded:   []player.Player{pl(2, "Nope", player.Forward, "8.0", "60", 140)},
		Candidates: []player.Player{pl(3, "Threat", player.Midfielder, "6.5", "25", 100), pl(4, "Slump", player.Forward, "5.0", "12", 75), pl(5, "Quiet", player.Forward, "4.0", "9", 60)},
	}
	forms := map[int]player.Form{1: fm("3"), 2: fm("9"), 3: fm("7.2"), 4: fm("4.5"), 5: fm("4.4")}
	return c, forms
}

func TestBuildClassifiesAllCohortsAndSorts(t *testing.T) {
	c, forms := fixture()
	rows := Build(c, forms)

	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	wantIDs := []int{2, 3, 4, 1, 5}
	for i, id := range wantIDs {
		if rows[i].Player.ID != id {
			t.Fatalf("row %d: id %d want %d", i, rows[i].Player.ID, id)
		}
	}
	if rows[0].Profile != player.ProfileNone || rows[0].Cohort != player.Excluded {
		t.Fatalf("excluded row misclassified: %+v", rows[0])
	}
	if rows[3].Cohort != player.Owned || rows[3].Profile != player.ProfileUnderperformer {
		t.Fatalf("owned row misclassified: %+v", rows[3])
	}
	if rows[1].Profile != player.ProfileRankKiller {
		t.Fatalf("candidate row misclassified: %+v", rows[1])
	}
}

func TestBuildTiesKeepCohortOrder(t *testing.T) {
	c := Cohorts{
		Owned:      []player.Player{pl(1, "A", player.Defender, "5", "5", 50)},
		Candidates: []player.Player{pl(2, "B", player.Defender, "5", "5", 50)},
	}
	rows := Build(c, nil)
	if rows[0].Player.ID != 1 || rows[1].Player.ID != 2 {
		t.Fatalf("stable ordering broken: %d, %d", rows[0].Player.ID, rows[1].Player.ID)
	}
	if !rows[0].Form.Empty() {
		t.Fatal("missing form should be empty")
	}
}

func TestPresent(t *testing.T) {
	c, forms := fixture()
	rows := Build(c, forms)
	got := Present(rows, DefaultMinRecentForm)

	var want []int
	for _, r := range rows {
		if r.Cohort == player.Candidate && r.Form.Average.GreaterThanOrEqual(DefaultMinRecentForm) {
			want = append(want, r.Player.ID)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("got %d presented rows want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Player.ID != want[i] {
			t.Fatalf("row %d: got %d want %d", i, got[i].Player.ID, want[i])
		}
	}
	if len(got) != 2 || got[0].Player.ID != 3 || got[1].Player.ID != 4 {
		t.Fatalf("unexpected presented rows %+v", got)
	}
}

func TestFormatRow(t *testing.T) {
	c, forms := fixture()
	rows := Present(Build(c, forms), DefaultMinRecentForm)
	table := Format(rows)

	if strings.Join(table.Header, "|") != strings.Join(Columns, "|") {
		t.Fatalf("unexpected header %v", table.Header)
	}

	want := []string{"3", "Threat", "Threat", "Midfielder", "50", "25.0%", "£10.0", "6.50", "7.2", "1.11 △", "😈 Rank Killer"}
	got := table.Rows[0]
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %s: got %q want %q", Columns[i], got[i], want[i])
		}
	}

	second := table.Rows[1]
	if second[9] != "0.90 ▽" || second[10] != "🔪 Rank Threat" {
		t.Fatalf("unexpected trend/profile %q %q", second[9], second[10])
	}
}

func TestFormatZeroPPG(t *testing.T) {
	rows := Build(Cohorts{Candidates: []player.Player{pl(9, "Zero", player.Forward, "0", "10", 45)}}, map[int]player.Form{9: fm("5")})
	cells := FormatRow(rows[0])
	if cells[9] != "0.00 ☠︎" {
		t.Fatalf("zero PPG trend = %q", cells[9])
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	c, forms := fixture()
	a := Format(Present(Build(c, forms), DefaultMinRecentForm)).TSV()
	b := Format(Present(Build(c, forms), DefaultMinRecentForm)).TSV()
	if a != b {
		t.Fatalf("formatted output differs between runs:\n%s\n%s", a, b)
	}
	if !strings.HasPrefix(a, "FPL ID\tTeam\t") {
		t.Fatalf("unexpected TSV header: %q", a)
	}
}
