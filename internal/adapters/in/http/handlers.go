package http

import (
	"context"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/job"
)

type CreateJobHandler interface {
	Handle(ctx context.Context, cmd commands.CreateJobCommand) (*job.Job, error)
}

type AcceptJobHandler interface {
	Handle(ctx context.Context, cmd commands.AcceptJobCommand) (*job.Job, error)
}

type AdvanceJobStatusHandler interface {
	Handle(ctx context.Context, cmd commands.AdvanceJobStatusCommand) (*job.Job, error)
}

type VerifyOtpHandler interface {
	Handle(ctx context.Context, cmd commands.VerifyOtpCommand) (commands.VerifyOtpResult, error)
}

type CancelJobHandler interface {
	Handle(ctx context.Context, cmd commands.CancelJobCommand) (*job.Job, error)
}

type TriggerPanicHandler interface {
	Handle(ctx context.Context, cmd commands.TriggerPanicCommand) (commands.TriggerPanicResult, error)
}

type CustomerJobsHandler interface {
	Handle(ctx context.Context, query queries.GetCustomerJobsQuery) ([]queries.JobView, error)
}

type WorkerJobsHandler interface {
	Handle(ctx context.Context, query queries.GetWorkerJobsQuery) ([]queries.JobView, error)
}

type AvailableJobsHandler interface {
	Handle(ctx context.Context, query queries.GetAvailableJobsQuery) ([]queries.JobView, error)
}

type WalletBalanceHandler interface {
	Handle(ctx context.Context, query queries.GetWalletBalanceQuery) (queries.GetWalletBalanceQueryResponse, error)
}

type WalletTransactionsHandler interface {
	Handle(ctx context.Context, query queries.GetWalletTransactionsQuery) ([]queries.GetWalletTransactionsQueryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateJob          CreateJobHandler
	AcceptJob          AcceptJobHandler
	AdvanceJobStatus   AdvanceJobStatusHandler
	VerifyOtp          VerifyOtpHandler
	CancelJob          CancelJobHandler
	TriggerPanic       TriggerPanicHandler
	CustomerJobs       CustomerJobsHandler
	WorkerJobs         WorkerJobsHandler
	AvailableJobs      AvailableJobsHandler
	WalletBalance      WalletBalanceHandler
	WalletTransactions WalletTransactionsHandler
}
