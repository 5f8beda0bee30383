package schema

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportCollection = "reports"
)

// Incident categories stored on a report. The level of detail collected at
// submission time (accident, crime, panic button) is folded into these
// three before a report is persisted.
const (
	IncidentMedical = "Medical"
	IncidentFire    = "Fire"
	IncidentIllegal = "Illegal"
)

// PlaceholderImageURL is stored on a report when no attachment is uploaded.
const PlaceholderImageURL = "https://via.placeholder.com/400"

// incidentTypeMap folds client-side incident types into stored categories.
var incidentTypeMap = map[string]string{
	"accident":  IncidentMedical,
	"medical":   IncidentMedical,
	"fire":      IncidentFire,
	"crime":     IncidentIllegal,
	"illegal":   IncidentIllegal,
	"ilegal":    IncidentIllegal,
	"sos panic": IncidentMedical,
}

// MapIncidentType returns the stored category for a submitted incident type.
// Unknown types fall back to Medical so a malformed submission still reaches
// a responder queue.
func MapIncidentType(submitted string) string {
	if category, ok := incidentTypeMap[strings.ToLower(submitted)]; ok {
		return category
	}
	return IncidentMedical
}

// Report is a single incident submission. Email is kept for the
// username+email fallback lookup but is never serialized to API consumers.
type Report struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Username    string             `bson:"username" json:"username"`
	Email       string             `bson:"email,omitempty" json:"-"`
	PhoneNumber int64              `bson:"phoneNumber" json:"phoneNumber"`
	Description string             `bson:"description" json:"description"`
	Incident    string             `bson:"Incident" json:"Incident"`
	Location    string             `bson:"location" json:"location"`
	Severity    string             `bson:"severity" json:"severity"`
	Status      bool               `bson:"status" json:"status"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SynthesizeEmail builds the placeholder address stored when a reporter
// submits without one.
func SynthesizeEmail(username string) string {
	return fmt.Sprintf("%s@resq.local", strings.Join(strings.Fields(username), "_"))
}

// IncidentBreakdown is the per-category share of reports shown on the
// admin analytics panel.
type IncidentBreakdown struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Percent  int    `json:"percent"`
}

// analyticsBuckets are the display categories of the analytics chart, in
// rendering order. They are finer-grained than the stored categories: the
// chart distinguishes crime from the legacy misspelled form and panic
// alerts from other medical reports.
var analyticsBuckets = []string{"accident", "medical", "fire", "crime", "SOS PANIC"}

// BreakdownReports re-buckets stored incidents into the analytics display
// categories. Percentages are rounded; categories with no reports are
// dropped.
func BreakdownReports(reports []Report) []IncidentBreakdown {
	counts := make(map[string]int, len(analyticsBuckets))
	for _, r := range reports {
		incident := strings.ToLower(r.Incident)
		switch {
		case strings.Contains(incident, "medical"):
			counts["medical"]++
		case strings.Contains(incident, "fire"):
			counts["fire"]++
		case strings.Contains(incident, "crime"), strings.Contains(incident, "ilegal"), strings.Contains(incident, "illegal"):
			counts["crime"]++
		case strings.Contains(incident, "accident"):
			counts["accident"]++
		case strings.Contains(incident, "sos"), strings.Contains(incident, "panic"):
			counts["SOS PANIC"]++
		}
	}

	total := len(reports)
	if total == 0 {
		total = 1
	}

	breakdown := make([]IncidentBreakdown, 0, len(analyticsBuckets))
	for _, bucket := range analyticsBuckets {
		count := counts[bucket]
		if count == 0 {
			continue
		}
		breakdown = append(breakdown, IncidentBreakdown{
			Category: bucket,
			Count:    count,
			Percent:  int(float64(count)/float64(total)*100 + 0.5),
		})
	}
	return breakdown
}
