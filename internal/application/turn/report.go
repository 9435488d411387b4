package turn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/realmfleet-go/internal/application/missions"
	"github.com/andrescamacho/realmfleet-go/internal/domain/mission"
)

// TurnReport summarizes one processed turn
type TurnReport struct {
	Turn   int
	Realms []RealmReport
}

// RealmReport is the state of one AI realm after its turn
type RealmReport struct {
	Realm       string
	Credits     int
	Fleets      int
	Missions    map[string]int // keyed by MissionKey
	Removals    map[string]int // keyed by removal reason
	Transitions int
	Detours     int
	Conflicts   []string
}

// MissionKey formats the mission count key "TYPE/PHASE"
func MissionKey(t mission.MissionType, p mission.MissionPhase) string {
	return string(t) + "/" + string(p)
}

// MissionCount sums open missions across realms
func (r *TurnReport) MissionCount() int {
	total := 0
	for _, realm := range r.Realms {
		for _, n := range realm.Missions {
			total += n
		}
	}
	return total
}

// RemovalCount sums removed missions across realms
func (r *TurnReport) RemovalCount() int {
	total := 0
	for _, realm := range r.Realms {
		for _, n := range realm.Removals {
			total += n
		}
	}
	return total
}

// Realm returns the report of a realm by name
func (r *TurnReport) Realm(name string) (RealmReport, bool) {
	for _, realm := range r.Realms {
		if realm.Realm == name {
			return realm, true
		}
	}
	return RealmReport{}, false
}

// Lines renders the report one realm per line, with sorted keys
func (r *TurnReport) Lines() []string {
	lines := make([]string, 0, len(r.Realms))
	for _, realm := range r.Realms {
		lines = append(lines, fmt.Sprintf("turn %d | %s | credits=%d fleets=%d detours=%d | missions: %s | removed: %s",
			r.Turn, realm.Realm, realm.Credits, realm.Fleets, realm.Detours,
			formatCounts(realm.Missions), formatCounts(realm.Removals)))
	}
	return lines
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}

// reportRecorder counts mission events for the report and forwards them
type reportRecorder struct {
	next        missions.MetricsRecorder
	transitions int
	detours     int
	removals    map[string]int
}

func newReportRecorder(next missions.MetricsRecorder) *reportRecorder {
	return &reportRecorder{next: next, removals: make(map[string]int)}
}

func (r *reportRecorder) RecordTransition(missionType, from, to string) {
	r.transitions++
	if r.next != nil {
		r.next.RecordTransition(missionType, from, to)
	}
}

func (r *reportRecorder) RecordDetourSearch(realmName string, reached bool) {
	r.detours++
	if r.next != nil {
		r.next.RecordDetourSearch(realmName, reached)
	}
}

func (r *reportRecorder) RecordRemoval(missionType, reason string) {
	r.removals[reason]++
	if r.next != nil {
		r.next.RecordRemoval(missionType, reason)
	}
}
