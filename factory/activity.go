package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

// basic reads values.<stat>.basic.value.
func basic(values object, stat string) (float64, bool) {
	s := values.obj(stat)
	if s == nil {
		return 0, false
	}
	b := s.obj("basic")
	if b == nil || !b.has("value") {
		return 0, false
	}
	return toFloat(b["value"])
}

func basicFloat(values object, stat string) float64 {
	v, _ := basic(values, stat)
	return v
}

func basicInt(values object, stat string) int {
	v, _ := basic(values, stat)
	return int(v)
}

func basicPtr(values object, stat string) *int {
	v, ok := basic(values, stat)
	if !ok {
		return nil
	}
	n := int(v)
	return &n
}

// allBasics flattens a values object to stat id -> basic value.
func allBasics(values object) map[string]float64 {
	if values == nil {
		return nil
	}
	out := make(map[string]float64, len(values))
	for k := range values {
		if v, ok := basic(values, k); ok {
			out[k] = v
		}
	}
	return out
}

func activityValues(values object) entity.ActivityValues {
	fireteam, _ := basic(values, "fireteamId")
	return entity.ActivityValues{
		Assists:            basicInt(values, "assists"),
		CompletionReason:   basicInt(values, "completionReason"),
		Completed:          basicInt(values, "completed") == 1,
		Kills:              basicInt(values, "kills"),
		Deaths:             basicInt(values, "deaths"),
		OpponentsDefeated:  basicInt(values, "opponentsDefeated"),
		Efficiency:         basicFloat(values, "efficiency"),
		KillsDeathsRatio:   basicFloat(values, "killsDeathsRatio"),
		KillsDeathsAssists: basicFloat(values, "killsDeathsAssists"),
		Score:              basicInt(values, "score"),
		DurationSeconds:    basicInt(values, "activityDurationSeconds"),
		PlayerCount:        basicInt(values, "playerCount"),
		TeamScore:          basicInt(values, "teamScore"),
		StartSeconds:       basicInt(values, "startSeconds"),
		TimePlayedSeconds:  basicInt(values, "timePlayedSeconds"),
		FireteamID:         int64(fireteam),
		Team:               basicPtr(values, "team"),
		Standing:           basicPtr(values, "standing"),
		Raw:                allBasics(values),
	}
}

func gameModes(o object, key string) []enums.GameMode {
	ints := o.ints(key)
	if ints == nil {
		return nil
	}
	out := make([]enums.GameMode, len(ints))
	for i, m := range ints {
		out[i] = enums.GameMode(m)
	}
	return out
}

func activity(r *reader, o object) entity.Activity {
	d := o.obj("activityDetails")
	return entity.Activity{
		Period:               r.time(o, "period"),
		Hash:                 d.int("referenceId"),
		InstanceID:           r.id(d, "instanceId"),
		Mode:                 enums.GameMode(d.int("mode")),
		Modes:                gameModes(d, "modes"),
		IsPrivate:            d.bool("isPrivate"),
		MembershipType:       enums.MembershipType(d.int("membershipType")),
		ReferenceID:          d.int("referenceId"),
		DirectorActivityHash: d.int("directorActivityHash"),
		Values:               activityValues(o.obj("values")),
	}
}

// DeserializeActivities reads one page of activity history.
func DeserializeActivities(raw json.RawMessage) ([]entity.Activity, error) {
	return decodeWith(raw, func(r *reader, o object) []entity.Activity {
		return listOf(r, o.arr("activities"), activity)
	})
}

func postActivityPlayer(r *reader, o object) entity.PostActivityPlayer {
	p := o.obj("player")
	ext := o.obj("extended")
	return entity.PostActivityPlayer{
		Standing:       o.int("standing"),
		Score:          basicInt(o, "score"),
		CharacterID:    r.id(o, "characterId"),
		Destiny:        destinyMembership(r, p.obj("destinyUserInfo")),
		Class:          p.undefined("characterClass"),
		RaceHash:       p.int("raceHash"),
		GenderHash:     p.int("genderHash"),
		ClassHash:      p.int("classHash"),
		CharacterLevel: p.int("characterLevel"),
		LightLevel:     p.int("lightLevel"),
		EmblemHash:     p.int("emblemHash"),
		Values:         activityValues(o.obj("values")),
		Weapons: listOf(r, ext.arr("weapons"), func(_ *reader, o object) entity.ExtendedWeaponValues {
			v := o.obj("values")
			ratio, _ := basic(v, "uniqueWeaponKillsPrecisionKills")
			return entity.ExtendedWeaponValues{
				ReferenceID:         o.int("referenceId"),
				Kills:               basicInt(v, "uniqueWeaponKills"),
				PrecisionKills:      basicInt(v, "uniqueWeaponPrecisionKills"),
				PrecisionKillsRatio: ratio,
			}
		}),
		Extended: allBasics(ext.obj("values")),
	}
}

func postActivityTeam(_ *reader, o object) entity.PostActivityTeam {
	return entity.PostActivityTeam{
		ID:         o.int("teamId"),
		Name:       o.undefined("teamName"),
		Standing:   basicInt(o, "standing"),
		Score:      basicInt(o, "score"),
		IsDefeated: basicInt(o, "standing") == 1,
	}
}

func DeserializePostActivity(raw json.RawMessage) (entity.PostActivity, error) {
	return decodeWith(raw, func(r *reader, o object) entity.PostActivity {
		d := o.obj("activityDetails")
		p := entity.PostActivity{
			Period:                          r.time(o, "period"),
			StartingPhaseIndex:              o.intPtr("startingPhaseIndex"),
			Hash:                            d.int("referenceId"),
			InstanceID:                      r.id(d, "instanceId"),
			Mode:                            enums.GameMode(d.int("mode")),
			Modes:                           gameModes(d, "modes"),
			IsPrivate:                       d.bool("isPrivate"),
			MembershipType:                  enums.MembershipType(d.int("membershipType")),
			ReferenceID:                     d.int("referenceId"),
			DirectorActivityHash:            d.int("directorActivityHash"),
			ActivityWasStartedFromBeginning: o.boolPtr("activityWasStartedFromBeginning"),
			Players:                         listOf(r, o.arr("entries"), postActivityPlayer),
		}
		if o.has("teams") {
			p.Teams = listOf(r, o.arr("teams"), postActivityTeam)
		}
		return p
	})
}

func aggregatedActivity(_ *reader, o object) entity.AggregatedActivity {
	v := o.obj("values")
	return entity.AggregatedActivity{
		Hash:                o.int("activityHash"),
		Completions:         basicInt(v, "activityCompletions"),
		Kills:               basicInt(v, "activityKills"),
		Deaths:              basicInt(v, "activityDeaths"),
		Assists:             basicInt(v, "activityAssists"),
		PrecisionKills:      basicInt(v, "activityPrecisionKills"),
		TimePlayedSeconds:   basicInt(v, "activitySecondsPlayed"),
		FastestCompletionMS: basicInt(v, "fastestCompletionMsForActivity"),
		ActivitiesEntered:   basicInt(v, "activitiesEntered"),
		ActivitiesCleared:   basicInt(v, "activitiesCleared"),
		Raw:                 allBasics(v),
	}
}

func DeserializeAggregatedActivities(raw json.RawMessage) ([]entity.AggregatedActivity, error) {
	return decodeWith(raw, func(r *reader, o object) []entity.AggregatedActivity {
		return listOf(r, o.arr("activities"), aggregatedActivity)
	})
}

func historicalStatsValue(r *reader, o object) entity.HistoricalStatsValue {
	v, _ := toFloat(o.obj("basic")["value"])
	h := entity.HistoricalStatsValue{
		StatID:       o.str("statId"),
		Value:        v,
		DisplayValue: o.obj("basic").str("displayValue"),
		ActivityID:   r.idPtr(o, "activityId"),
	}
	if pga := o.obj("pga"); pga != nil {
		f, _ := toFloat(pga["value"])
		h.PGA = &f
	}
	if w := o.obj("weighted"); w != nil {
		f, _ := toFloat(w["value"])
		h.Weighted = &f
	}
	return h
}

func statValues(r *reader, o object) map[string]entity.HistoricalStatsValue {
	if o == nil {
		return nil
	}
	out := make(map[string]entity.HistoricalStatsValue, len(o))
	for k, v := range o {
		if m, ok := v.(map[string]any); ok {
			out[k] = historicalStatsValue(r, m)
		}
	}
	return out
}

// historicalStats reads {"<group>": {"allTime": {...}}} into group -> stats.
func historicalStats(r *reader, o object) entity.HistoricalStats {
	out := make(entity.HistoricalStats, len(o))
	for group, v := range o {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		out[group] = statValues(r, object(m).obj("allTime"))
	}
	return out
}

func DeserializeHistoricalStats(raw json.RawMessage) (entity.HistoricalStats, error) {
	return decodeWith(raw, historicalStats)
}

// DeserializeAccountHistoricalStats reads the merged account-wide stats. The
// account-wide totals are stored under the "merged" group.
func DeserializeAccountHistoricalStats(raw json.RawMessage) (entity.HistoricalStats, error) {
	return decodeWith(raw, func(r *reader, o object) entity.HistoricalStats {
		all := o.obj("mergedAllCharacters")
		stats := historicalStats(r, all.obj("results"))
		if merged := all.obj("merged"); merged != nil {
			stats["merged"] = statValues(r, merged.obj("allTime"))
		}
		return stats
	})
}

func DeserializeUniqueWeapons(raw json.RawMessage) ([]entity.UniqueWeapon, error) {
	return decodeWith(raw, func(r *reader, o object) []entity.UniqueWeapon {
		return listOf(r, o.arr("weapons"), func(r *reader, o object) entity.UniqueWeapon {
			return entity.UniqueWeapon{
				ReferenceID: o.int("referenceId"),
				Values:      statValues(r, o.obj("values")),
			}
		})
	})
}
