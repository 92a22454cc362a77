package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"consign/internal/platform/middleware"
	"consign/internal/submission/models"
	"consign/internal/submission/service"
	id "consign/pkg/domain"
	dErrors "consign/pkg/domain-errors"
	"consign/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

type Service interface {
	CreateSubmission(ctx context.Context, cmd *service.CreateSubmissionCommand) (*models.Submission, error)
	AppendEvent(ctx context.Context, ev models.Event) error
	SubmitSubmission(ctx context.Context, submissionID id.SubmissionID, fileID id.FileID, submittedBy id.UserID) (*models.Submission, error)
	ProjectRegistrationStatus(ctx context.Context, submissionID id.SubmissionID) (*models.RegistrationStatus, error)
	ProjectPomStatus(ctx context.Context, submissionID id.SubmissionID) (*models.PomStatus, error)
	IsSubmittable(ctx context.Context, submissionID id.SubmissionID, fileID id.FileID) (bool, error)
	EvaluateLateFee(ctx context.Context, submissionID id.SubmissionID, deadline time.Time) (*models.LateFeeResult, error)
	ProjectOrganisationStatuses(ctx context.Context, orgID id.OrganisationID) ([]*models.OrganisationSubmissionStatus, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/submissions", h.HandleCreateSubmission)
	r.Post("/v1/submissions/{submission_id}/events", h.HandleAppendEvent)
	r.Post("/v1/submissions/{submission_id}/submit", h.HandleSubmit)
	r.Get("/v1/submissions/{submission_id}/registration-status", h.HandleRegistrationStatus)
	r.Get("/v1/submissions/{submission_id}/pom-status", h.HandlePomStatus)
	r.Get("/v1/submissions/{submission_id}/submittable", h.HandleSubmittable)
	r.Get("/v1/submissions/{submission_id}/late-fee", h.HandleLateFee)
	r.Get("/v1/organisations/{organisation_id}/submissions", h.HandleOrganisationStatuses)
}

// HandleCreateSubmission implements POST /v1/submissions.
func (h *Handler) HandleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateSubmissionRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sub, err := h.service.CreateSubmission(ctx, cmd)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create submission",
			"error", err,
			"code", dErrors.CodeOf(err),
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toSubmissionResponse(sub))
}

// HandleAppendEvent implements POST /v1/submissions/{submission_id}/events.
func (h *Handler) HandleAppendEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[AppendEventRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	ev, err := req.ToEvent(submissionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.service.AppendEvent(ctx, ev); err != nil {
		h.logger.ErrorContext(ctx, "failed to append event",
			"error", err,
			"code", dErrors.CodeOf(err),
			"submission_id", submissionID,
			"kind", req.Kind,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusAccepted, map[string]any{
		"submission_id": submissionID.String(),
		"kind":          req.Kind,
	})
}

// HandleSubmit implements POST /v1/submissions/{submission_id}/submit.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	req, ok := httputil.DecodeAndPrepare[SubmitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	fileID, err := id.ParseFileID(req.FileID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	submittedBy, err := id.ParseUserID(req.SubmittedBy)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	sub, err := h.service.SubmitSubmission(ctx, submissionID, fileID, submittedBy)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeFileNotReady) {
			h.logger.ErrorContext(ctx, "failed to submit submission",
				"error", err,
				"submission_id", submissionID,
				"request_id", requestID,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// HandleRegistrationStatus implements GET /v1/submissions/{submission_id}/registration-status.
func (h *Handler) HandleRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	status, err := h.service.ProjectRegistrationStatus(ctx, submissionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toRegistrationStatusResponse(status))
}

// HandlePomStatus implements GET /v1/submissions/{submission_id}/pom-status.
func (h *Handler) HandlePomStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	status, err := h.service.ProjectPomStatus(ctx, submissionID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toPomStatusResponse(status))
}

// HandleSubmittable implements GET /v1/submissions/{submission_id}/submittable?file_id=...
func (h *Handler) HandleSubmittable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	fileID, err := id.ParseFileID(r.URL.Query().Get("file_id"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "file_id query parameter is required"))
		return
	}

	submittable, err := h.service.IsSubmittable(ctx, submissionID, fileID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &SubmittableResponse{
		SubmissionID:  submissionID.String(),
		FileID:        fileID.String(),
		IsSubmittable: submittable,
	})
}

// HandleLateFee implements GET /v1/submissions/{submission_id}/late-fee?deadline=RFC3339.
func (h *Handler) HandleLateFee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	submissionID, ok := h.submissionID(w, r)
	if !ok {
		return
	}

	deadline, err := time.Parse(time.RFC3339, r.URL.Query().Get("deadline"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "deadline query parameter must be an RFC 3339 timestamp"))
		return
	}

	result, err := h.service.EvaluateLateFee(ctx, submissionID, deadline)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, &LateFeeResponse{
		IsLateFeeApplicable:      result.IsLateFeeApplicable,
		IsOriginalSubmissionLate: result.IsOriginalSubmissionLate,
	})
}

// HandleOrganisationStatuses implements GET /v1/organisations/{organisation_id}/submissions.
func (h *Handler) HandleOrganisationStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgID, err := id.ParseOrganisationID(chi.URLParam(r, "organisation_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	statuses, err := h.service.ProjectOrganisationStatuses(ctx, orgID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"organisation_id": orgID.String(),
		"submissions":     toOrganisationStatusResponses(statuses),
	})
}

func (h *Handler) submissionID(w http.ResponseWriter, r *http.Request) (id.SubmissionID, bool) {
	submissionID, err := id.ParseSubmissionID(chi.URLParam(r, "submission_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.SubmissionID{}, false
	}
	return submissionID, true
}
