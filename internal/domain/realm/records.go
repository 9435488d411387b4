package realm

// ShipStat tracks how many ships of a design a realm has in service
type ShipStat struct {
	design string
	inUse  int
}

func NewShipStat(design string, inUse int) *ShipStat {
	if inUse < 0 {
		inUse = 0
	}
	return &ShipStat{design: design, inUse: inUse}
}

func (s *ShipStat) Design() string { return s.design }
func (s *ShipStat) InUse() int     { return s.inUse }

func (s *ShipStat) IncrementInUse() {
	s.inUse++
}

// DecrementInUse never drops below zero
func (s *ShipStat) DecrementInUse() {
	if s.inUse > 0 {
		s.inUse--
	}
}

// Espionage accumulates intelligence gathered on other realms
type Espionage struct {
	values map[string]int
}

func NewEspionage() *Espionage {
	return &Espionage{values: make(map[string]int)}
}

func (e *Espionage) Add(realm string, value int) {
	e.values[realm] += value
}

func (e *Espionage) Value(realm string) int {
	return e.values[realm]
}

// Diplomacy records delegations that reached other realms
type Diplomacy struct {
	meetings map[string]int
}

func NewDiplomacy() *Diplomacy {
	return &Diplomacy{meetings: make(map[string]int)}
}

func (d *Diplomacy) RecordMeeting(realm string) {
	d.meetings[realm]++
}

func (d *Diplomacy) Meetings(realm string) int {
	return d.meetings[realm]
}

func (d *Diplomacy) HasMet(realm string) bool {
	return d.meetings[realm] > 0
}
