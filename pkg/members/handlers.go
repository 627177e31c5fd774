// Copyright 2026 GymStack Ltd.
// SPDX-License-Identifier: AGPL-3.0

package members

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/gymstack/gym-service/internal/logging"
	"github.com/gymstack/gym-service/internal/monitoring"
	"github.com/gymstack/gym-service/internal/storage"
	"github.com/gymstack/gym-service/internal/tracing"
	"github.com/gymstack/gym-service/internal/types"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/tenants/{id}/members", a.enrollMember)
	mux.Get("/api/v0/tenants/{id}/members", a.listMembers)
	mux.Post("/api/v0/tenants/{id}/members/{memberID}/deactivate", a.deactivateMember)
	mux.Get("/api/v0/tenants/{id}/members/{memberID}/attendance", a.listAttendance)
	mux.Post("/api/v0/tenants/{id}/staff", a.addStaff)
	mux.Get("/api/v0/tenants/{id}/staff", a.listStaff)
	mux.Delete("/api/v0/tenants/{id}/staff/{profileID}", a.removeStaff)
	mux.Post("/api/v0/tenants/{id}/payments", a.recordPayment)
	mux.Get("/api/v0/tenants/{id}/payments", a.listPayments)
}

// RegisterCheckInEndpoints is mounted behind the member role so enrolled
// members can self-check-in without staff privileges.
func (a *API) RegisterCheckInEndpoints(mux chi.Router) {
	mux.Post("/api/v0/tenants/{id}/checkins", a.checkIn)
}

type memberResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	ProfileID string    `json:"profile_id"`
	Active    bool      `json:"active"`
	JoinDate  time.Time `json:"join_date"`
}

func marshalMember(m *types.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		TenantID:  m.TenantID,
		ProfileID: m.ProfileID,
		Active:    m.Active,
		JoinDate:  m.JoinDate,
	}
}

type paymentResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	MemberID    string    `json:"member_id"`
	AmountCents int64     `json:"amount_cents"`
	Method      string    `json:"method,omitempty"`
	Note        string    `json:"note,omitempty"`
	PaidAt      time.Time `json:"paid_at"`
}

func marshalPayment(p *types.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		MemberID:    p.MemberID,
		AmountCents: p.AmountCents,
		Method:      p.Method,
		Note:        p.Note,
		PaidAt:      p.PaidAt,
	}
}

type attendanceResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	MemberID    string    `json:"member_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

func marshalAttendance(att *types.Attendance) attendanceResponse {
	return attendanceResponse{
		ID:          att.ID,
		TenantID:    att.TenantID,
		MemberID:    att.MemberID,
		CheckedInAt: att.CheckedInAt,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrAlreadyEnrolled):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, storage.ErrDuplicateKey):
		http.Error(w, "already exists", http.StatusConflict)
	case errors.Is(err, ErrMemberInactive), errors.Is(err, ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, storage.ErrForeignKeyViolation):
		http.Error(w, "referenced record does not exist", http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (a *API) enrollMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.enrollMember")
	defer span.End()

	var body struct {
		ProfileID string `json:"profile_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.ProfileID == "" {
		http.Error(w, "profile_id is required", http.StatusBadRequest)
		return
	}

	member, err := a.service.EnrollMember(ctx, chi.URLParam(r, "id"), body.ProfileID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, marshalMember(member))
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.listMembers")
	defer span.End()

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to list members: %v", err)
		a.writeError(w, err)
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, marshalMember(m))
	}
	a.writeJSON(w, http.StatusOK, map[string][]memberResponse{"members": resp})
}

func (a *API) deactivateMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.deactivateMember")
	defer span.End()

	if err := a.service.DeactivateMember(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "memberID")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.addStaff")
	defer span.End()

	var body struct {
		ProfileID string `json:"profile_id"`
		Role      string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.ProfileID == "" {
		http.Error(w, "profile_id is required", http.StatusBadRequest)
		return
	}
	if body.Role == "" {
		body.Role = "trainer"
	}

	id, err := a.service.AddStaff(ctx, chi.URLParam(r, "id"), body.ProfileID, body.Role)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (a *API) listStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.listStaff")
	defer span.End()

	staff, err := a.service.ListStaff(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to list staff: %v", err)
		a.writeError(w, err)
		return
	}

	type staffResponse struct {
		ID        string `json:"id"`
		ProfileID string `json:"profile_id"`
		Role      string `json:"role"`
	}
	resp := make([]staffResponse, 0, len(staff))
	for _, m := range staff {
		resp = append(resp, staffResponse{ID: m.ID, ProfileID: m.ProfileID, Role: m.Role})
	}
	a.writeJSON(w, http.StatusOK, map[string][]staffResponse{"staff": resp})
}

func (a *API) removeStaff(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.removeStaff")
	defer span.End()

	if err := a.service.RemoveStaff(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "profileID")); err != nil {
		a.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) recordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.recordPayment")
	defer span.End()

	var body struct {
		MemberID    string    `json:"member_id"`
		AmountCents int64     `json:"amount_cents"`
		Method      string    `json:"method"`
		Note        string    `json:"note"`
		PaidAt      time.Time `json:"paid_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.MemberID == "" {
		http.Error(w, "member_id is required", http.StatusBadRequest)
		return
	}

	payment, err := a.service.RecordPayment(ctx, chi.URLParam(r, "id"), body.MemberID, body.AmountCents, body.Method, body.Note, body.PaidAt)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, marshalPayment(payment))
}

func (a *API) listPayments(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.listPayments")
	defer span.End()

	payments, err := a.service.ListPayments(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.logger.Errorf("failed to list payments: %v", err)
		a.writeError(w, err)
		return
	}

	resp := make([]paymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, marshalPayment(p))
	}
	a.writeJSON(w, http.StatusOK, map[string][]paymentResponse{"payments": resp})
}

func (a *API) checkIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.checkIn")
	defer span.End()

	var body struct {
		MemberID string `json:"member_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.MemberID == "" {
		http.Error(w, "member_id is required", http.StatusBadRequest)
		return
	}

	att, err := a.service.CheckIn(ctx, chi.URLParam(r, "id"), body.MemberID)
	if err != nil {
		a.writeError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, marshalAttendance(att))
}

func (a *API) listAttendance(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "members.API.listAttendance")
	defer span.End()

	records, err := a.service.ListAttendance(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "memberID"))
	if err != nil {
		a.writeError(w, err)
		return
	}

	resp := make([]attendanceResponse, 0, len(records))
	for _, att := range records {
		resp = append(resp, marshalAttendance(att))
	}
	a.writeJSON(w, http.StatusOK, map[string][]attendanceResponse{"attendance": resp})
}
