package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/timesheet-engine-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

var (
	errInvalidYearParam  = errors.New("year must be a number")
	errInvalidMonthParam = errors.New("month must be a number")
)

type TimesheetHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	SaveSnapshot(w http.ResponseWriter, r *http.Request)
	GetSnapshot(w http.ResponseWriter, r *http.Request)
	ListSnapshots(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// Compute implements TimesheetHandler. The computation is read-only; results
// are not persisted until a snapshot is saved explicitly.
func (h *timesheetHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	req, err := computeRequestFromQuery(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	rows, err := h.timesheetService.ComputeMonth(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	wire := make([]timesheet.EmployeePayrollSnapshot, 0, len(rows))
	for _, row := range rows {
		wire = append(wire, timesheet.MarshalPayroll(row))
	}

	response.Success(w, wire)
}

// SaveSnapshot implements TimesheetHandler.
func (h *timesheetHandlerImpl) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	var req timesheet.SaveSnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	snapshot, err := h.timesheetService.SaveSnapshot(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll snapshot saved", mapSnapshotToResponse(snapshot))
}

// GetSnapshot implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Snapshot ID is required", nil)
		return
	}

	snapshot, err := h.timesheetService.GetSnapshot(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapSnapshotToResponse(snapshot))
}

// ListSnapshots implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.timesheetService.ListSnapshots(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	listing := make([]snapshotListItem, 0, len(snapshots))
	for _, s := range snapshots {
		listing = append(listing, snapshotListItem{
			ID:        s.ID,
			Year:      s.Year,
			Month:     int(s.Month),
			Source:    string(s.Source),
			RowCount:  len(s.Rows),
			CreatedBy: s.CreatedBy,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(w, listing)
}

type snapshotResponse struct {
	ID        string                              `json:"id"`
	Year      int                                 `json:"year"`
	Month     int                                 `json:"month"`
	Source    string                              `json:"source"`
	Rows      []timesheet.EmployeePayrollSnapshot `json:"rows"`
	CreatedBy string                              `json:"createdBy"`
	CreatedAt string                              `json:"createdAt"`
}

type snapshotListItem struct {
	ID        string `json:"id"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Source    string `json:"source"`
	RowCount  int    `json:"rowCount"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt"`
}

func mapSnapshotToResponse(s timesheet.PayrollSnapshot) snapshotResponse {
	rows := make([]timesheet.EmployeePayrollSnapshot, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, timesheet.MarshalPayroll(r))
	}
	return snapshotResponse{
		ID:        s.ID,
		Year:      s.Year,
		Month:     int(s.Month),
		Source:    string(s.Source),
		Rows:      rows,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}

func computeRequestFromQuery(r *http.Request) (timesheet.ComputeTimesheetRequest, error) {
	now := time.Now().UTC()
	req := timesheet.ComputeTimesheetRequest{
		Year:   now.Year(),
		Month:  int(now.Month()),
		Source: string(timesheet.SourceShift),
	}

	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			return timesheet.ComputeTimesheetRequest{}, errInvalidYearParam
		}
		req.Year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil {
			return timesheet.ComputeTimesheetRequest{}, errInvalidMonthParam
		}
		req.Month = parsed
	}
	if s := r.URL.Query().Get("source"); s != "" {
		req.Source = s
	}

	return req, nil
}
