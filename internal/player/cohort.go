package player

import "github.com/shopspring/decimal"

// Cohort partitions players for reporting and rule selection.
type Cohort int

const (
	Candidate Cohort = iota
	Owned
	Excluded
)

// Label is the value shown in the report's Team column.
func (c Cohort) Label() string {
	switch c {
	case Owned:
		return "MadLads"
	case Excluded:
		return "Excluded"
	default:
		return "Threat"
	}
}

func (c Cohort) String() string {
	switch c {
	case Owned:
		return "owned"
	case Excluded:
		return "excluded"
	default:
		return "candidate"
	}
}

// ExclusionSet holds the two persisted id lists.
type ExclusionSet struct {
	Held     map[int]struct{}
	Unwanted map[int]struct{}
}

// NewExclusionSet builds a set from the raw id lists.
func NewExclusionSet(held, unwanted []int) ExclusionSet {
	return ExclusionSet{Held: toSet(held), Unwanted: toSet(unwanted)}
}

// Contains reports whether id is in either list.
func (e ExclusionSet) Contains(id int) bool {
	if _, ok := e.Held[id]; ok {
		return true
	}
	_, ok := e.Unwanted[id]
	return ok
}

func toSet(ids []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Form is the recent-form average over the last N appearances.
type Form struct {
	Average     decimal.Decimal
	Appearances int
}

// Empty reports whether no history rows contributed.
func (f Form) Empty() bool {
	return f.Appearances == 0
}

// Trend is the recent-form ratio and its tag.
type Trend struct {
	Ratio decimal.Decimal
	Tag   TrendTag
}

// TrendTag labels the ratio between recent form and season PPG.
type TrendTag string

const (
	TrendRising    TrendTag = "rising"
	TrendDeclining TrendTag = "declining-but-ok"
	TrendDead      TrendTag = "dead"
)

// Symbol is the glyph printed after the ratio.
func (t TrendTag) Symbol() string {
	switch t {
	case TrendRising:
		return "△"
	case TrendDeclining:
		return "▽"
	default:
		return "☠︎"
	}
}

// Profile is the categorical label assigned by the tag cascade.
type Profile string

const (
	ProfileRankKiller     Profile = "Rank Killer"
	ProfileRankThreat     Profile = "Rank Threat"
	ProfileRisingStar     Profile = "Rising Star"
	ProfileHighOwnership  Profile = "High Ownership"
	ProfileStarPerformer  Profile = "Star Performer"
	ProfileFodder         Profile = "Fodder"
	ProfileUnderperformer Profile = "Underperformer"
	ProfileUnclassified   Profile = "Unclassified"
	ProfileNone           Profile = "—"
)

// Display renders the tag with its emoji prefix.
func (p Profile) Display() string {
	switch p {
	case ProfileRankKiller:
		return "😈 Rank Killer"
	case ProfileRankThreat:
		return "🔪 Rank Threat"
	case ProfileRisingStar:
		return "👨🏼‍🎤 Rising Star"
	case ProfileHighOwnership:
		return "☠️ High Ownership"
	case ProfileStarPerformer:
		return "👑 Star Performer"
	case ProfileFodder:
		return "🪦 Fodder"
	case ProfileUnderperformer:
		return "🤡 Underperformer"
	case ProfileUnclassified:
		return "🦄 Unclassified"
	default:
		return string(ProfileNone)
	}
}

// Classified is a player with every derived report field attached.
// KeeperRule marks a Rank Threat reached through the goalkeeper branch.
type Classified struct {
	Player     Player
	Cohort     Cohort
	Form       Form
	Profile    Profile
	KeeperRule bool
	Trend      Trend
}

// ProfileLabel renders the profile with its emoji, using the goalkeeper
// symbol when the keeper rule assigned it.
func (c Classified) ProfileLabel() string {
	if c.KeeperRule {
		return "🥅 " + string(c.Profile)
	}
	return c.Profile.Display()
}
