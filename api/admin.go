package api

import (
	"github.com/gin-gonic/gin"

	"github.com/resq-net/resq-api/schema"
)

// demoUnits is the static payload behind the units-status panel. Unit
// dispatch tracking is not persisted.
var demoUnits = []gin.H{
	{"id": "P-101", "type": "Police Patrol", "status": "Busy", "location": "Sector 4", "eta": "5 min"},
	{"id": "A-202", "type": "Ambulance", "status": "Available", "location": "Hospital HQ", "eta": "0 min"},
	{"id": "F-305", "type": "Fire Engine", "status": "Available", "location": "Fire Station 1", "eta": "0 min"},
}

// allReports feeds both the admin dashboard table and the analytics view.
func (s *Server) allReports(c *gin.Context) {
	reports, err := s.mongoStore.AllReports()
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, reports, "All reports fetched successfully")
}

func (s *Server) unitStatus(c *gin.Context) {
	respondWithData(c, demoUnits, "Unit status fetched successfully")
}

// analytics aggregates report counts and the per-category breakdown shown
// on the admin analytics panel.
func (s *Server) analytics(c *gin.Context) {
	reports, err := s.mongoStore.AllReports()
	if err != nil {
		abortWithError(c, err)
		return
	}

	open := 0
	for _, r := range reports {
		if !r.Status {
			open++
		}
	}

	respondWithData(c, gin.H{
		"total":     len(reports),
		"open":      open,
		"solved":    len(reports) - open,
		"breakdown": schema.BreakdownReports(reports),
	}, "Analytics computed successfully")
}

// deleteReport removes a report permanently. Administrative cleanup only.
func (s *Server) deleteReport(c *gin.Context) {
	if err := s.mongoStore.DeleteReport(c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, nil, "Report deleted")
}
