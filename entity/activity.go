package entity

import (
	"time"

	"github.com/kofuk/bungie/enums"
)

// ActivityValues holds the basic stat values of one activity entry.
type ActivityValues struct {
	Assists            int
	CompletionReason   int
	Completed          bool
	Kills              int
	Deaths             int
	OpponentsDefeated  int
	Efficiency         float64
	KillsDeathsRatio   float64
	KillsDeathsAssists float64
	Score              int
	DurationSeconds    int
	PlayerCount        int
	TeamScore          int
	StartSeconds       int
	TimePlayedSeconds  int
	FireteamID         int64
	Team               *int
	Standing           *int
	Raw                map[string]float64
}

// Duration formats DurationSeconds as a duration.
func (v ActivityValues) Duration() time.Duration {
	return time.Duration(v.DurationSeconds) * time.Second
}

type Activity struct {
	Period               time.Time
	Hash                 int
	InstanceID           int64
	Mode                 enums.GameMode
	Modes                []enums.GameMode
	IsPrivate            bool
	MembershipType       enums.MembershipType
	ReferenceID          int
	DirectorActivityHash int
	Values               ActivityValues
}

func (a Activity) IsSoloFlawless() bool {
	return a.Values.PlayerCount == 1 && a.Values.Deaths == 0 && a.Values.Completed
}

type ExtendedWeaponValues struct {
	ReferenceID         int
	Kills               int
	PrecisionKills      int
	PrecisionKillsRatio float64
}

type PostActivityPlayer struct {
	Standing       int
	Score          int
	CharacterID    int64
	Destiny        DestinyMembership
	Class          UndefinedOr[string]
	RaceHash       int
	GenderHash     int
	ClassHash      int
	CharacterLevel int
	LightLevel     int
	EmblemHash     int
	Values         ActivityValues
	Weapons        []ExtendedWeaponValues
	Extended       map[string]float64
}

type PostActivityTeam struct {
	ID         int
	Name       UndefinedOr[string]
	Standing   int
	Score      int
	IsDefeated bool
}

type PostActivity struct {
	Period                          time.Time
	StartingPhaseIndex              *int
	Hash                            int
	InstanceID                      int64
	Mode                            enums.GameMode
	Modes                           []enums.GameMode
	IsPrivate                       bool
	MembershipType                  enums.MembershipType
	ReferenceID                     int
	DirectorActivityHash            int
	ActivityWasStartedFromBeginning *bool
	Players                         []PostActivityPlayer
	Teams                           []PostActivityTeam
}

func (p PostActivity) IsSolo() bool { return len(p.Players) == 1 }

// IsFlawless reports whether no player died.
func (p PostActivity) IsFlawless() bool {
	for _, pl := range p.Players {
		if pl.Values.Deaths != 0 {
			return false
		}
	}
	return true
}

func (p PostActivity) IsSoloFlawless() bool { return p.IsSolo() && p.IsFlawless() }

type AggregatedActivity struct {
	Hash                int
	Completions         int
	Kills               int
	Deaths              int
	Assists             int
	PrecisionKills      int
	TimePlayedSeconds   int
	FastestCompletionMS int
	ActivitiesEntered   int
	ActivitiesCleared   int
	Raw                 map[string]float64
}

type HistoricalStatsValue struct {
	StatID       string
	Value        float64
	DisplayValue string
	PGA          *float64
	Weighted     *float64
	ActivityID   *int64
}

// HistoricalStats is keyed by stats group then stat id.
type HistoricalStats map[string]map[string]HistoricalStatsValue

type UniqueWeapon struct {
	ReferenceID int
	Values      map[string]HistoricalStatsValue
}
