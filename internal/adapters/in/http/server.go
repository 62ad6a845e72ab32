package http

import (
	"errors"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers) (*Server, error) {
	if h.CreateJob == nil || h.AcceptJob == nil || h.AdvanceJobStatus == nil || h.VerifyOtp == nil ||
		h.CancelJob == nil || h.TriggerPanic == nil || h.CustomerJobs == nil || h.WorkerJobs == nil ||
		h.AvailableJobs == nil || h.WalletBalance == nil || h.WalletTransactions == nil {
		return nil, errors.New("every HTTP handler is required")
	}
	return &Server{h: h}, nil
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.CreateJobJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	details, err := detailsFrom(body)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCreateJobCommand(caller, details)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.h.CreateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, jobResponse(created, caller.ID()))
}

// GetCustomerJobs handles GET /api/v1/jobs/customer.
func (s *Server) GetCustomerJobs(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetCustomerJobsQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.h.CustomerJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobViewsResponse(views))
}

// GetWorkerJobs handles GET /api/v1/jobs/worker.
func (s *Server) GetWorkerJobs(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetWorkerJobsQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.h.WorkerJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobViewsResponse(views))
}

// GetAvailableJobs handles GET /api/v1/jobs/available.
func (s *Server) GetAvailableJobs(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetAvailableJobsQuery(caller)
	if err != nil {
		return writeError(ctx, err)
	}

	views, err := s.h.AvailableJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobViewsResponse(views))
}

// AcceptJob handles POST /api/v1/jobs/{jobId}/accept.
func (s *Server) AcceptJob(ctx echo.Context, jobID servers.JobId) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	id, err := pathJobID(jobID)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewAcceptJobCommand(id, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	accepted, err := s.h.AcceptJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobResponse(accepted, caller.ID()))
}

// UpdateJobStatus handles PUT /api/v1/jobs/{jobId}/status.
func (s *Server) UpdateJobStatus(ctx echo.Context, jobID servers.JobId) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	id, err := pathJobID(jobID)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.UpdateJobStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	cmd, err := commands.NewAdvanceJobStatusCommand(id, caller.ID(), job.Status(body.Status))
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.AdvanceJobStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobResponse(updated, caller.ID()))
}

// VerifyOtp handles POST /api/v1/jobs/{jobId}/verify-otp.
func (s *Server) VerifyOtp(ctx echo.Context, jobID servers.JobId) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	id, err := pathJobID(jobID)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.VerifyOtpJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	cmd, err := commands.NewVerifyOtpCommand(id, caller.ID(), body.Otp)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.VerifyOtp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobResponse(result.Job, caller.ID()))
}

// CancelJob handles POST /api/v1/jobs/{jobId}/cancel.
func (s *Server) CancelJob(ctx echo.Context, jobID servers.JobId) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	id, err := pathJobID(jobID)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewCancelJobCommand(id, caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.h.CancelJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, jobResponse(cancelled, caller.ID()))
}

// GetWalletBalance handles GET /api/v1/wallet/balance.
func (s *Server) GetWalletBalance(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetWalletBalanceQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	balance, err := s.h.WalletBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.WalletBalance{
		Balance:       balance.Balance.Float64(),
		TotalEarnings: balance.TotalEarnings.Float64(),
	})
}

// GetWalletTransactions handles GET /api/v1/wallet/transactions.
func (s *Server) GetWalletTransactions(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}
	query, err := queries.NewGetWalletTransactionsQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.h.WalletTransactions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Transaction, len(entries))
	for i, entry := range entries {
		response[i] = servers.Transaction{
			Id:          entry.ID.Bytes(),
			Type:        servers.TransactionType(entry.Type),
			Amount:      entry.Amount.Float64(),
			JobId:       entry.JobID.Bytes(),
			Description: entry.Description,
			CreatedAt:   entry.CreatedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// TriggerPanic handles POST /api/v1/safetap/panic.
func (s *Server) TriggerPanic(ctx echo.Context) error {
	caller, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.TriggerPanicJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	jobID, err := pathJobID(body.JobId)
	if err != nil {
		return writeError(ctx, err)
	}
	location, err := panicLocation(body.Latitude, body.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}
	notes := ""
	if body.Notes != nil {
		notes = *body.Notes
	}

	cmd, err := commands.NewTriggerPanicCommand(jobID, caller.ID(), location, notes)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.TriggerPanic.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.PanicResponse{
		AlertId: result.AlertID.Bytes(),
		JobId:   result.JobID.Bytes(),
		Message: result.Message,
	}
	if result.EmergencyCenterID != nil {
		centerID := result.EmergencyCenterID.Bytes()
		response.EmergencyCenterId = &centerID
	}
	return ctx.JSON(http.StatusCreated, response)
}

func pathJobID(id servers.JobId) (kernel.UUID, error) {
	jobID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("jobId", err)
	}
	return jobID, nil
}

// panicLocation accepts both coordinates or neither.
func panicLocation(lat, lon *float64) (*kernel.GeoPoint, error) {
	switch {
	case lat == nil && lon == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError("latitude")
	case lon == nil:
		return nil, errs.NewValueIsRequiredError("longitude")
	}
	point, err := kernel.NewGeoPoint(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
