package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resq-net/resq-api/schema"
	"github.com/resq-net/resq-api/store"
)

// createReport ingests a multipart incident submission, uploading the
// optional image attachment before the report is persisted.
func (s *Server) createReport(c *gin.Context) {
	location, err := canonicalLocation(c.PostForm("location"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	incident := c.PostForm("Incident")

	description := c.PostForm("description")
	if description == "" && strings.EqualFold(incident, "SOS PANIC") {
		// SOS submissions carry no details
		description = "No details provided"
	}

	// the empty string must survive to the required-field check
	if incident != "" {
		incident = schema.MapIncidentType(incident)
	}

	params := store.ReportParams{
		Username:    c.PostForm("username"),
		Email:       c.PostForm("email"),
		Description: description,
		PhoneNumber: c.PostForm("phoneNumber"),
		Incident:    incident,
		Location:    location,
		Severity:    c.PostForm("severity"),
	}
	if raw := c.PostForm("status"); raw != "" {
		status, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, store.NewValidationError(http.StatusBadRequest, "Invalid status value"))
			return
		}
		params.Status = &status
	}

	imageURL := schema.PlaceholderImageURL
	if header, err := c.FormFile("image"); err == nil {
		file, err := header.Open()
		if err != nil {
			abortWithError(c, &store.UploadError{Err: err})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			abortWithError(c, &store.UploadError{Err: err})
			return
		}

		key := fmt.Sprintf("reports/%s%s", uuid.New().String(), path.Ext(header.Filename))
		url, err := s.mediaStore.Put(c.Request.Context(), key, header.Header.Get("Content-Type"), data)
		if err != nil {
			abortWithError(c, &store.UploadError{Err: err})
			return
		}
		imageURL = url
	}

	report, err := s.mongoStore.CreateReport(params, imageURL)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, report, "Report was added into the database")
}

// reportsByPhone lists the caller's own reports. A missing or placeholder
// phone number yields an empty list, not an error.
func (s *Server) reportsByPhone(c *gin.Context) {
	phone := c.Param("phoneNumber")
	if phone == "" || phone == "N/A" {
		respondWithData(c, []schema.Report{}, "No phone number provided")
		return
	}

	phoneNumber, err := strconv.ParseInt(phone, 10, 64)
	if err != nil {
		abortWithError(c, store.NewValidationError(http.StatusBadRequest, "Invalid phone number format"))
		return
	}

	reports, err := s.mongoStore.ReportsByPhone(phoneNumber)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, reports, "Reports fetched successfully")
}

// getReport fetches a single report by the username+email pair. A miss is
// answered with a null payload, matching the legacy contract.
func (s *Server) getReport(c *gin.Context) {
	var params struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	// an absent body behaves like an empty pair; anything else must decode
	if err := c.ShouldBindJSON(&params); err != nil && err != io.EOF {
		abortWithError(c, store.NewValidationError(http.StatusBadRequest, "Cannot parse request"))
		return
	}

	report, err := s.mongoStore.GetReport(params.Username, params.Email)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, report, "Report fetched successfully")
}

// firstOpenReport returns the oldest unresolved report. Kept for backward
// compatibility with the legacy status endpoint.
func (s *Server) firstOpenReport(c *gin.Context) {
	report, err := s.mongoStore.FirstOpenReport()
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, report, "Report fetched successfully")
}

// updateReportStatus resolves a report by id, falling back to the
// username+email pair.
func (s *Server) updateReportStatus(c *gin.Context) {
	var params struct {
		ID       string `json:"_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Status   *bool  `json:"status"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithError(c, store.NewValidationError(http.StatusBadRequest, "Cannot parse request"))
		return
	}

	report, err := s.mongoStore.UpdateReportStatus(params.ID, params.Username, params.Email, params.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, report, "Fields were updated")
}

// updateReport replaces the fields of the report matching the
// username+email pair.
func (s *Server) updateReport(c *gin.Context) {
	var params struct {
		Username    string      `json:"username"`
		Email       string      `json:"email"`
		Description string      `json:"description"`
		PhoneNumber json.Number `json:"phoneNumber"`
		Incident    string      `json:"Incident"`
		Location    string      `json:"location"`
		Severity    string      `json:"severity"`
		Status      *bool       `json:"status"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithError(c, store.NewValidationError(http.StatusBadRequest, "Cannot parse request"))
		return
	}

	location := params.Location
	if location != "" {
		var err error
		if location, err = canonicalLocation(location); err != nil {
			abortWithError(c, err)
			return
		}
	}

	incident := params.Incident
	if incident != "" {
		incident = schema.MapIncidentType(incident)
	}

	report, err := s.mongoStore.UpdateReport(params.Username, params.Email, store.ReportParams{
		Username:    params.Username,
		Description: params.Description,
		PhoneNumber: params.PhoneNumber.String(),
		Incident:    incident,
		Location:    location,
		Severity:    params.Severity,
		Status:      params.Status,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	respondWithData(c, report, "Fields were updated")
}

// canonicalLocation normalizes a submitted location to the stored
// "lat,lng" form. Both the canonical string and the legacy {lat,lng}
// object are accepted at ingestion.
func canonicalLocation(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if strings.HasPrefix(raw, "{") {
		var loc struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		}
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			return "", store.NewValidationError(http.StatusBadRequest, "Invalid location format")
		}
		return formatLocation(loc.Lat, loc.Lng), nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return "", store.NewValidationError(http.StatusBadRequest, "Invalid location format")
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return "", store.NewValidationError(http.StatusBadRequest, "Invalid location format")
	}

	return formatLocation(lat, lng), nil
}

func formatLocation(lat, lng float64) string {
	return fmt.Sprintf("%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}
