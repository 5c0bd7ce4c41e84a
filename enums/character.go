package enums

type Class int

const (
	ClassTitan   Class = 0
	ClassHunter  Class = 1
	ClassWarlock Class = 2
	ClassUnknown Class = 3
)

var classNames = map[Class]string{
	ClassTitan:   "TITAN",
	ClassHunter:  "HUNTER",
	ClassWarlock: "WARLOCK",
	ClassUnknown: "UNKNOWN",
}

func (c Class) String() string { return nameOf("Class", classNames, c) }

func (c Class) IsKnown() bool {
	_, ok := classNames[c]
	return ok
}

type Race int

const (
	RaceHuman   Race = 0
	RaceAwoken  Race = 1
	RaceExo     Race = 2
	RaceUnknown Race = 3
)

var raceNames = map[Race]string{
	RaceHuman:   "HUMAN",
	RaceAwoken:  "AWOKEN",
	RaceExo:     "EXO",
	RaceUnknown: "UNKNOWN",
}

func (r Race) String() string { return nameOf("Race", raceNames, r) }

func (r Race) IsKnown() bool {
	_, ok := raceNames[r]
	return ok
}

type Gender int

const (
	GenderMale    Gender = 0
	GenderFemale  Gender = 1
	GenderUnknown Gender = 2
)

var genderNames = map[Gender]string{
	GenderMale:    "MALE",
	GenderFemale:  "FEMALE",
	GenderUnknown: "UNKNOWN",
}

func (g Gender) String() string { return nameOf("Gender", genderNames, g) }

func (g Gender) IsKnown() bool {
	_, ok := genderNames[g]
	return ok
}

// Stat is the hash of a character stat definition.
type Stat int

const (
	StatNone       Stat = 0
	StatMobility   Stat = 2996146975
	StatResilience Stat = 392767087
	StatRecovery   Stat = 1943323491
	StatDiscipline Stat = 1735777505
	StatIntellect  Stat = 144602215
	StatStrength   Stat = 4244567218
	StatLightPower Stat = 1935470627
)

var statNames = map[Stat]string{
	StatNone:       "NONE",
	StatMobility:   "MOBILITY",
	StatResilience: "RESILIENCE",
	StatRecovery:   "RECOVERY",
	StatDiscipline: "DISCIPLINE",
	StatIntellect:  "INTELLECT",
	StatStrength:   "STRENGTH",
	StatLightPower: "LIGHT_POWER",
}

func (s Stat) String() string { return nameOf("Stat", statNames, s) }

func (s Stat) IsKnown() bool {
	_, ok := statNames[s]
	return ok
}
