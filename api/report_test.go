package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/resq-net/resq-api/api/mocks"
	mediamocks "github.com/resq-net/resq-api/external/mediastore/mocks"
	"github.com/resq-net/resq-api/schema"
	"github.com/resq-net/resq-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return s.setupRouter()
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	var resp Response
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func multipartForm(t *testing.T, fields map[string]string, fileField, fileName string, fileData []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		assert.NoError(t, err)
		_, err = part.Write(fileData)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	var captured store.ReportParams
	m.EXPECT().CreateReport(gomock.Any(), schema.PlaceholderImageURL).
		DoAndReturn(func(params store.ReportParams, imageURL string) (*schema.Report, error) {
			captured = params
			return &schema.Report{
				ID:          primitive.NewObjectID(),
				Username:    params.Username,
				PhoneNumber: 9876543210,
				Description: params.Description,
				Incident:    params.Incident,
				Location:    params.Location,
				Severity:    params.Severity,
				Image:       imageURL,
			}, nil
		}).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"description": "fire on the second floor",
		"Incident":    "fire",
		"location":    "28.6139,77.209",
		"severity":    "High",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, resp.Data)

	assert.Equal(t, schema.IncidentFire, captured.Incident)
	assert.Equal(t, "28.6139,77.209", captured.Location)
}

func TestCreateReportSOSWithoutDescription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	var captured store.ReportParams
	m.EXPECT().CreateReport(gomock.Any(), schema.PlaceholderImageURL).
		DoAndReturn(func(params store.ReportParams, imageURL string) (*schema.Report, error) {
			captured = params
			return &schema.Report{Incident: params.Incident}, nil
		}).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"Incident":    "SOS PANIC",
		"location":    "28.6139,77.209",
		"severity":    "CRITICAL",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, schema.IncidentMedical, captured.Incident, "SOS submissions fold into Medical")
	assert.Equal(t, "No details provided", captured.Description)
}

func TestCreateReportValidationFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().CreateReport(gomock.Any(), gomock.Any()).
		Return(nil, store.NewValidationError(http.StatusNotFound, "All fields are required")).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username": "Jane Doe",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "All fields are required", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestCreateReportMissingIncident(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	var captured store.ReportParams
	m.EXPECT().CreateReport(gomock.Any(), schema.PlaceholderImageURL).
		DoAndReturn(func(params store.ReportParams, imageURL string) (*schema.Report, error) {
			captured = params
			return nil, store.NewValidationError(http.StatusNotFound, "All fields are required")
		}).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"description": "fire on the second floor",
		"location":    "28.6139,77.209",
		"severity":    "High",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	// the missing field must not be folded into a default category
	assert.Equal(t, "", captured.Incident)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "All fields are required", resp.Message)
}

func TestCreateReportMissingDescription(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	var captured store.ReportParams
	m.EXPECT().CreateReport(gomock.Any(), schema.PlaceholderImageURL).
		DoAndReturn(func(params store.ReportParams, imageURL string) (*schema.Report, error) {
			captured = params
			return nil, store.NewValidationError(http.StatusNotFound, "All fields are required")
		}).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"Incident":    "fire",
		"location":    "28.6139,77.209",
		"severity":    "High",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	// only SOS submissions get the canned description
	assert.Equal(t, "", captured.Description)
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "All fields are required", resp.Message)
}

func TestCreateReportInvalidLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"description": "bad location",
		"Incident":    "fire",
		"location":    "somewhere in town",
		"severity":    "High",
	}, "", "", nil)

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid location format", resp.Message)
}

func TestCreateReportWithImage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	media := mediamocks.NewMockMediaStore(ctl)
	s := &Server{mongoStore: m, mediaStore: media}

	uploadedURL := "https://cdn.example.com/reports/abc.jpg"
	media.EXPECT().Put(gomock.Any(), gomock.Any(), "image/jpeg", []byte("jpeg-bytes")).
		Return(uploadedURL, nil).Times(1)
	m.EXPECT().CreateReport(gomock.Any(), uploadedURL).
		Return(&schema.Report{Image: uploadedURL}, nil).Times(1)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"description": "fire on the second floor",
		"Incident":    "fire",
		"location":    "28.6139,77.209",
		"severity":    "High",
	} {
		assert.NoError(t, writer.WriteField(k, v))
	}
	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="image"; filename="scene.jpg"`}
	header["Content-Type"] = []string{"image/jpeg"}
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
}

func TestCreateReportUploadFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	media := mediamocks.NewMockMediaStore(ctl)
	s := &Server{mongoStore: mocks.NewMockMongoStore(ctl), mediaStore: media}

	media.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", assert.AnError).Times(1)

	body, contentType := multipartForm(t, map[string]string{
		"username":    "Jane Doe",
		"phoneNumber": "9876543210",
		"description": "fire on the second floor",
		"Incident":    "fire",
		"location":    "28.6139,77.209",
		"severity":    "High",
	}, "image", "scene.jpg", []byte("jpeg-bytes"))

	req := httptest.NewRequest("POST", "/api/users/createuser", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Image upload failed", resp.Message)
}

func TestReportsByPhone(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().ReportsByPhone(int64(9876543210)).Return([]schema.Report{
		{Username: "Jane Doe", PhoneNumber: 9876543210},
	}, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/users/phone/9876543210", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	reports, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, reports, 1)
}

func TestReportsByPhonePlaceholder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store call at all for the placeholder phone
	s := &Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	req := httptest.NewRequest("GET", "/api/users/phone/N%2FA", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "No phone number provided", resp.Message)

	reports, ok := resp.Data.([]interface{})
	assert.True(t, ok)
	assert.Empty(t, reports)
}

func TestReportsByPhoneNonNumeric(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	req := httptest.NewRequest("GET", "/api/users/phone/not-a-phone", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid phone number format", resp.Message)
}

func TestUpdateReportStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().UpdateReportStatus(id.Hex(), "", "", gomock.Nil()).
		Return(&schema.Report{ID: id, Status: true}, nil).Times(1)

	payload, _ := json.Marshal(map[string]interface{}{"_id": id.Hex()})
	req := httptest.NewRequest("PUT", "/api/users/updateStatus", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, true, data["status"])
	assert.NotContains(t, data, "email", "email must never reach API consumers")
}

func TestUpdateReportStatusNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().UpdateReportStatus(id.Hex(), "", "", gomock.Nil()).
		Return(nil, store.NewNotFoundError("Failed to update the status")).Times(1)

	payload, _ := json.Marshal(map[string]interface{}{"_id": id.Hex()})
	req := httptest.NewRequest("PUT", "/api/users/updateStatus", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Failed to update the status", resp.Message)
}

func TestGetReportMiss(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().GetReport("nobody", "nobody@resq.local").Return(nil, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/users/",
		strings.NewReader(`{"username":"nobody","email":"nobody@resq.local"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestGetReportEmptyBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}

	m.EXPECT().GetReport("", "").Return(nil, nil).Times(1)

	req := httptest.NewRequest("GET", "/api/users/", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data)
}

func TestGetReportMalformedBody(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := &Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	req := httptest.NewRequest("GET", "/api/users/", strings.NewReader(`{"username":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Cannot parse request", resp.Message)
}

func TestErrorStackExposure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := &Server{mongoStore: m}
	m.EXPECT().AllReports().Return(nil, assert.AnError).Times(2)

	viper.Set("server.environment", "development")
	req := httptest.NewRequest("GET", "/api/users/all", nil)
	w := httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Stack, "development mode exposes the stack")

	viper.Set("server.environment", "production")
	defer viper.Set("server.environment", "development")
	w = httptest.NewRecorder()
	testRouter(s).ServeHTTP(w, req)

	resp = decodeResponse(t, w)
	assert.Empty(t, resp.Stack, "production mode hides the stack")
}
