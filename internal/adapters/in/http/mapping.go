package http

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/job"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"
)

func detailsFrom(body servers.NewJob) (job.Details, error) {
	price, err := kernel.MoneyFromFloat(body.Price)
	location, locErr := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err = errors.Join(err, locErr); err != nil {
		return job.Details{}, err
	}

	details := job.Details{
		ServiceType:   body.ServiceType,
		Price:         price,
		WorkersNeeded: body.WorkersNeeded,
		Location:      location,
		Address:       body.Address,
	}
	if body.Description != nil {
		details.Description = *body.Description
	}
	return details, nil
}

// jobResponse renders j for viewerID; the OTP is only shown to the customer.
func jobResponse(j *job.Job, viewerID kernel.UUID) servers.Job {
	d := j.Details()
	response := servers.Job{
		Id:            j.ID().Bytes(),
		CustomerId:    j.CustomerID().Bytes(),
		Status:        servers.JobStatus(j.Status()),
		ServiceType:   d.ServiceType,
		Description:   optional(d.Description),
		Otp:           optional(j.VisibleOTP(viewerID)),
		Price:         d.Price.Float64(),
		WorkersNeeded: d.WorkersNeeded,
		Latitude:      d.Location.Latitude(),
		Longitude:     d.Location.Longitude(),
		Address:       d.Address,
		CreatedAt:     j.CreatedAt(),
		AcceptedAt:    j.AcceptedAt(),
		CompletedAt:   j.CompletedAt(),
	}
	if workerID := j.WorkerID(); workerID != nil {
		id := workerID.Bytes()
		response.WorkerId = &id
	}
	return response
}

func jobViewsResponse(views []queries.JobView) []servers.Job {
	response := make([]servers.Job, len(views))
	for i, v := range views {
		response[i] = servers.Job{
			Id:            v.ID.Bytes(),
			CustomerId:    v.CustomerID.Bytes(),
			Status:        servers.JobStatus(v.Status),
			ServiceType:   v.ServiceType,
			Description:   optional(v.Description),
			Otp:           optional(v.OTP),
			Price:         v.Price.Float64(),
			WorkersNeeded: v.WorkersNeeded,
			Latitude:      v.Location.Latitude(),
			Longitude:     v.Location.Longitude(),
			Address:       v.Address,
			CreatedAt:     v.CreatedAt,
			AcceptedAt:    v.AcceptedAt,
			CompletedAt:   v.CompletedAt,
		}
		if v.WorkerID != nil {
			id := v.WorkerID.Bytes()
			response[i].WorkerId = &id
		}
	}
	return response
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrOtpIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
