package classify_test

import (
	"testing"

	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"fplthreats/internal/classify"
	"fplthreats/internal/player"
)

func mk(pos player.Position, ppg, own string, priceTenths int) player.Player {
	return player.Player{
		ID:            1,
		Position:      pos,
		Status:        player.StatusActive,
		PointsPerGame: decimal.RequireFromString(ppg),
		Ownership:     decimal.RequireFromString(own),
		PriceTenths:   priceTenths,
	}
}

func form(avg string) player.Form {
	return player.Form{Average: decimal.RequireFromString(avg), Appearances: 5}
}

func TestCandidateProfile(t *testing.T) {
	Convey("Given a candidate", t, func() {
		profile := func(p player.Player) player.Profile { return classify.Profile(player.Candidate, p) }

		Convey("High PPG splits on ownership", func() {
			So(profile(mk(player.Forward, "6.5", "21", 100)), ShouldEqual, player.ProfileRankKiller)
			So(profile(mk(player.Forward, "6.5", "20", 100)), ShouldEqual, player.ProfileRankThreat)
			So(profile(mk(player.Forward, "6.5", "15", 100)), ShouldEqual, player.ProfileRankThreat)
			So(profile(mk(player.Forward, "6.5", "10", 100)), ShouldEqual, player.ProfileRankThreat)
			So(profile(mk(player.Forward, "6.5", "2", 100)), ShouldEqual, player.ProfileRisingStar)
		})

		Convey("A high PPG goalkeeper above 20% is still a rank killer", func() {
			So(profile(mk(player.Goalkeeper, "6.5", "30", 55)), ShouldEqual, player.ProfileRankKiller)
		})

		Convey("A goalkeeper over 4.5 PPG is a rank threat with the keeper symbol", func() {
			keeper := mk(player.Goalkeeper, "4.6", "8", 50)
			So(profile(keeper), ShouldEqual, player.ProfileRankThreat)
			So(profile(mk(player.Goalkeeper, "4.5", "8", 50)), ShouldEqual, player.ProfileRisingStar)

			row := classify.Classify(player.Candidate, keeper, player.Form{})
			So(row.KeeperRule, ShouldBeTrue)
			So(row.ProfileLabel(), ShouldEqual, "🥅 Rank Threat")
		})

		Convey("A goalkeeper caught by an earlier rule keeps the plain symbol", func() {
			row := classify.Classify(player.Candidate, mk(player.Goalkeeper, "6.5", "15", 55), player.Form{})
			So(row.Profile, ShouldEqual, player.ProfileRankThreat)
			So(row.KeeperRule, ShouldBeFalse)
			So(row.ProfileLabel(), ShouldEqual, "🔪 Rank Threat")
		})

		Convey("Exactly 6 PPG falls through to the 5+ rule", func() {
			So(profile(mk(player.Midfielder, "6", "12", 80)), ShouldEqual, player.ProfileRankThreat)
			So(profile(mk(player.Midfielder, "5", "9.9", 80)), ShouldEqual, player.ProfileRisingStar)
		})

		Convey("Heavily owned mid-range players are high ownership", func() {
			So(profile(mk(player.Defender, "4.0", "26", 55)), ShouldEqual, player.ProfileHighOwnership)
			So(profile(mk(player.Defender, "4.0", "25", 55)), ShouldEqual, player.ProfileRisingStar)
		})
	})
}

func TestOwnedProfile(t *testing.T) {
	Convey("Given an owned player", t, func() {
		profile := func(p player.Player) player.Profile { return classify.Profile(player.Owned, p) }

		Convey("Strong scorers are star performers", func() {
			So(profile(mk(player.Forward, "5.6", "5", 40)), ShouldEqual, player.ProfileStarPerformer)
			So(profile(mk(player.Goalkeeper, "3.8", "5", 45)), ShouldEqual, player.ProfileStarPerformer)
		})

		Convey("Cheap players are fodder", func() {
			So(profile(mk(player.Defender, "4.0", "5", 46)), ShouldEqual, player.ProfileFodder)
			So(profile(mk(player.Midfielder, "5.0", "5", 55)), ShouldEqual, player.ProfileFodder)
			So(profile(mk(player.Forward, "4.0", "5", 55)), ShouldEqual, player.ProfileUnderperformer)
		})

		Convey("Remaining players fall through by PPG then ownership", func() {
			So(profile(mk(player.Defender, "4.4", "30", 60)), ShouldEqual, player.ProfileUnderperformer)
			So(profile(mk(player.Defender, "5.0", "30", 60)), ShouldEqual, player.ProfileHighOwnership)
			So(profile(mk(player.Defender, "5.0", "10", 60)), ShouldEqual, player.ProfileUnclassified)
		})
	})
}

func TestExcludedProfile(t *testing.T) {
	Convey("Excluded players are never classified", t, func() {
		So(classify.Profile(player.Excluded, mk(player.Forward, "9", "60", 140)), ShouldEqual, player.ProfileNone)
		So(player.ProfileNone.Display(), ShouldEqual, "—")
	})
}

func TestTrend(t *testing.T) {
	Convey("Given season PPG and recent form", t, func() {
		Convey("Zero PPG is dead with a zero ratio", func() {
			tr := classify.Trend(decimal.Zero, form("6"))
			So(tr.Tag, ShouldEqual, player.TrendDead)
			So(tr.Ratio.StringFixed(2), ShouldEqual, "0.00")
		})

		Convey("Form above PPG is rising", func() {
			tr := classify.Trend(decimal.NewFromInt(5), form("6"))
			So(tr.Tag, ShouldEqual, player.TrendRising)
			So(tr.Ratio.StringFixed(2), ShouldEqual, "1.20")
		})

		Convey("Form under 3 is dead", func() {
			tr := classify.Trend(decimal.NewFromInt(5), form("2"))
			So(tr.Tag, ShouldEqual, player.TrendDead)
			So(tr.Ratio.StringFixed(2), ShouldEqual, "0.40")
		})

		Convey("Slight decline above the floor is ok", func() {
			So(classify.Trend(decimal.NewFromInt(5), form("4")).Tag, ShouldEqual, player.TrendDeclining)
		})

		Convey("A ratio of exactly 0.70 is dead", func() {
			So(classify.Trend(decimal.NewFromInt(5), form("3.5")).Tag, ShouldEqual, player.TrendDead)
		})

		Convey("The absolute floor applies before the ratio check", func() {
			So(classify.Trend(decimal.RequireFromString("3.2"), form("2.9")).Tag, ShouldEqual, player.TrendDead)
		})

		Convey("Ratio exactly 1 is not rising", func() {
			So(classify.Trend(decimal.NewFromInt(4), form("4")).Tag, ShouldEqual, player.TrendDeclining)
		})

		Convey("Empty history is dead", func() {
			tr := classify.Trend(decimal.NewFromInt(5), player.Form{})
			So(tr.Tag, ShouldEqual, player.TrendDead)
			So(tr.Ratio.StringFixed(2), ShouldEqual, "0.00")
		})
	})
}

func TestClassifyIsPure(t *testing.T) {
	Convey("Classifying the same input twice gives the same result", t, func() {
		p := mk(player.Midfielder, "6.2", "14", 95)
		a := classify.Classify(player.Candidate, p, form("7"))
		b := classify.Classify(player.Candidate, p, form("7"))
		So(a.Profile, ShouldEqual, b.Profile)
		So(a.Trend.Tag, ShouldEqual, b.Trend.Tag)
		So(a.Trend.Ratio.Equal(b.Trend.Ratio), ShouldBeTrue)
		So(a.Cohort, ShouldEqual, player.Candidate)
	})
}
