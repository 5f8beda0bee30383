package store

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/resq-net/resq-api/schema"
)

// ReportStore covers every operation against the report collection. Each
// operation touches a single document; the collection's per-document
// atomicity is the only consistency guarantee.
type ReportStore interface {
	CreateReport(params ReportParams, imageURL string) (*schema.Report, error)
	AllReports() ([]schema.Report, error)
	ReportsByPhone(phoneNumber int64) ([]schema.Report, error)
	GetReport(username, email string) (*schema.Report, error)
	FirstOpenReport() (*schema.Report, error)
	UpdateReportStatus(id, username, email string, status *bool) (*schema.Report, error)
	UpdateReport(username, email string, params ReportParams) (*schema.Report, error)
	DeleteReport(id string) error
}

// ReportParams carries user-submitted report fields. PhoneNumber stays a
// string here; it is validated and parsed on create.
type ReportParams struct {
	Username    string
	Email       string
	Description string
	PhoneNumber string
	Incident    string
	Location    string
	Severity    string
	Status      *bool
}

// emailProjection strips the reporter's email from every document returned
// to API consumers.
var emailProjection = bson.M{"email": 0}

// ParsePhoneNumber validates that a submitted phone number is a 10-digit
// number and returns its numeric form.
func ParsePhoneNumber(raw string) (int64, error) {
	phone, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || len(strconv.FormatInt(phone, 10)) != 10 {
		return 0, NewValidationError(http.StatusBadRequest, "Phone number must be a valid 10-digit number")
	}
	return phone, nil
}

// CreateReport validates and persists a new incident report. Status
// defaults to open and a placeholder email is synthesized when the
// reporter didn't leave one.
func (m *mongoDB) CreateReport(params ReportParams, imageURL string) (*schema.Report, error) {
	if params.Username == "" || params.Description == "" || params.PhoneNumber == "" ||
		params.Incident == "" || params.Location == "" || params.Severity == "" {
		return nil, NewValidationError(http.StatusNotFound, "All fields are required")
	}

	phone, err := ParsePhoneNumber(params.PhoneNumber)
	if err != nil {
		return nil, err
	}

	email := params.Email
	if email == "" {
		email = schema.SynthesizeEmail(params.Username)
	}

	status := false
	if params.Status != nil {
		status = *params.Status
	}

	now := time.Now().UTC()
	report := schema.Report{
		Username:    params.Username,
		Email:       email,
		PhoneNumber: phone,
		Description: params.Description,
		Incident:    params.Incident,
		Location:    params.Location,
		Severity:    params.Severity,
		Status:      status,
		Image:       imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	result, err := c.InsertOne(ctx, report)
	if err != nil {
		return nil, err
	}

	var created schema.Report
	query := bson.M{"_id": result.InsertedID.(primitive.ObjectID)}
	if err := c.FindOne(ctx, query, options.FindOne().SetProjection(emailProjection)).Decode(&created); err != nil {
		return nil, err
	}

	return &created, nil
}

// AllReports returns every report, newest first.
func (m *mongoDB) AllReports() ([]schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetProjection(emailProjection)
	cur, err := c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	reports := []schema.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// ReportsByPhone returns the reports filed under a phone number, newest
// first.
func (m *mongoDB) ReportsByPhone(phoneNumber int64) ([]schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetProjection(emailProjection)
	cur, err := c.Find(ctx, bson.M{"phoneNumber": phoneNumber}, opts)
	if err != nil {
		return nil, err
	}

	reports := []schema.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// GetReport finds a single report by the username+email pair. A miss is
// not an error: the caller gets a null payload, matching the legacy
// contract.
func (m *mongoDB) GetReport(username, email string) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	var report schema.Report
	query := bson.M{"username": username, "email": email}
	err := c.FindOne(ctx, query, options.FindOne().SetProjection(emailProjection)).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// FirstOpenReport returns the oldest report still open. Kept for backward
// compatibility with the legacy status endpoint.
func (m *mongoDB) FirstOpenReport() (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	var report schema.Report
	opts := options.FindOne().SetSort(bson.M{"createdAt": 1}).SetProjection(emailProjection)
	err := c.FindOne(ctx, bson.M{"status": false}, opts).Decode(&report)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// UpdateReportStatus resolves (or re-flags) a report, looked up by id when
// given and by the username+email pair otherwise. status defaults to
// resolved. Resolving an already-resolved report succeeds and returns the
// same state.
func (m *mongoDB) UpdateReportStatus(id, username, email string, status *bool) (*schema.Report, error) {
	var query bson.M
	switch {
	case id != "":
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, NewValidationError(http.StatusBadRequest, "Invalid report id")
		}
		query = bson.M{"_id": oid}
	case username != "" && email != "":
		query = bson.M{"username": username, "email": email}
	default:
		return nil, NewValidationError(http.StatusBadRequest, "Either _id or username and email are required")
	}

	newStatus := true
	if status != nil {
		newStatus = *status
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	update := bson.M{"$set": bson.M{
		"status":    newStatus,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(emailProjection)

	var updated schema.Report
	err := c.FindOneAndUpdate(ctx, query, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("Failed to update the status")
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// UpdateReport replaces the mutable fields of the report matching the
// username+email pair.
func (m *mongoDB) UpdateReport(username, email string, params ReportParams) (*schema.Report, error) {
	fields := bson.M{"updatedAt": time.Now().UTC()}
	if params.Username != "" {
		fields["username"] = params.Username
	}
	if params.Description != "" {
		fields["description"] = params.Description
	}
	if params.PhoneNumber != "" {
		phone, err := ParsePhoneNumber(params.PhoneNumber)
		if err != nil {
			return nil, err
		}
		fields["phoneNumber"] = phone
	}
	if params.Incident != "" {
		fields["Incident"] = params.Incident
	}
	if params.Location != "" {
		fields["location"] = params.Location
	}
	if params.Severity != "" {
		fields["severity"] = params.Severity
	}
	if params.Status != nil {
		fields["status"] = *params.Status
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	query := bson.M{"username": username, "email": email}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(emailProjection)

	var updated schema.Report
	err := c.FindOneAndUpdate(ctx, query, bson.M{"$set": fields}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, NewNotFoundError("Failed to update the fields")
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteReport removes a report by id. Administrative cleanup only; the
// user flow never deletes.
func (m *mongoDB) DeleteReport(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewValidationError(http.StatusBadRequest, "Invalid report id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.ReportCollection)

	result, err := c.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return NewNotFoundError("The report does not exist")
	}

	return nil
}
