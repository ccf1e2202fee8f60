// Package http implements the inbound HTTP surface: the REST handlers
// declared by the OpenAPI contract and the server-sent event stream.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"printflow/internal/core/application/usecases/commands"
	"printflow/internal/core/application/usecases/queries"
	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/job"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/transition"
	"printflow/internal/core/domain/services"
	"printflow/internal/generated/servers"
	"printflow/internal/pkg/errs"
	"printflow/internal/realtime"
)

const heartbeatInterval = 25 * time.Second

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createJobHandler       commands.CreateJobCommandHandler
	applyTransitionHandler commands.ApplyTransitionCommandHandler

	// Query handlers
	listVisibleJobsHandler queries.ListVisibleJobsQueryHandler
	getJobHistoryHandler   queries.GetJobHistoryQueryHandler

	// Event streaming
	registry *realtime.Registry
	hub      *SSEHub
}

// NewServer creates a new HTTP server with the required command and query
// handlers plus the event streaming plumbing.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	applyTransitionHandler commands.ApplyTransitionCommandHandler,
	listVisibleJobsHandler queries.ListVisibleJobsQueryHandler,
	getJobHistoryHandler queries.GetJobHistoryQueryHandler,
	registry *realtime.Registry,
	hub *SSEHub,
) *Server {
	return &Server{
		createJobHandler:       createJobHandler,
		applyTransitionHandler: applyTransitionHandler,
		listVisibleJobsHandler: listVisibleJobsHandler,
		getJobHistoryHandler:   getJobHistoryHandler,
		registry:               registry,
		hub:                    hub,
	}
}

// actorFromHeaders builds the requesting actor from the identity headers.
func actorFromHeaders(id openapi_types.UUID, roleName string, machineTypeName *string) (actor.Actor, error) {
	actorID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return actor.Actor{}, err
	}

	role, err := actor.RoleFromString(roleName)
	if err != nil {
		return actor.Actor{}, err
	}

	machineType := actor.MachineTypeUnknown
	if machineTypeName != nil {
		machineType, err = actor.MachineTypeFromString(*machineTypeName)
		if err != nil {
			return actor.Actor{}, err
		}
	}

	return actor.NewActor(actorID, role, machineType)
}

// writeError maps domain errors onto distinct HTTP statuses so clients can
// tell a missing job from a forbidden one and an impossible transition from
// a machine mismatch.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthorizedForJob),
		errors.Is(err, commands.ErrRoleCannotCreateJobs):
		status = http.StatusForbidden
	case errors.Is(err, job.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, job.ErrWrongMachineType):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, commands.ErrConcurrentModification):
		status = http.StatusLocked
	case errors.Is(err, job.ErrCommentRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context, params servers.CreateJobParams) error {
	requester, err := actorFromHeaders(params.XActorId, params.XActorRole, params.XMachineType)
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewJob
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	machineType, err := actor.MachineTypeFromString(string(body.MachineType))
	if err != nil {
		return writeError(ctx, err)
	}

	attachmentRef := ""
	if body.AttachmentRef != nil {
		attachmentRef = *body.AttachmentRef
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreateJobCommand(jobID, requester, machineType, attachmentRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createJobHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.JobCreated{Id: jobID.Bytes()})
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(ctx echo.Context, params servers.ListJobsParams) error {
	requester, err := actorFromHeaders(params.XActorId, params.XActorRole, params.XMachineType)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListVisibleJobsQuery(requester)
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.listVisibleJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Job, len(jobs))
	for i, j := range jobs {
		response[i] = jobToResponse(j)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApplyTransition handles POST /api/v1/jobs/{jobId}/transitions.
func (s *Server) ApplyTransition(ctx echo.Context, jobId openapi_types.UUID, params servers.ApplyTransitionParams) error {
	requester, err := actorFromHeaders(params.XActorId, params.XActorRole, params.XMachineType)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.NewTransition
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	to, err := job.StatusFromString(string(body.To))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyTransitionCommand(jobID, requester, to, body.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.applyTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, appliedRecordToResponse(record))
}

// GetJobHistory handles GET /api/v1/jobs/{jobId}/history.
func (s *Server) GetJobHistory(ctx echo.Context, jobId openapi_types.UUID, params servers.GetJobHistoryParams) error {
	requester, err := actorFromHeaders(params.XActorId, params.XActorRole, params.XMachineType)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := kernel.UUIDFromBytes(jobId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetJobHistoryQuery(jobID, requester)
	if err != nil {
		return writeError(ctx, err)
	}

	records, err := s.getJobHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.TransitionRecord, len(records))
	for i, record := range records {
		response[i] = recordToResponse(record)
	}

	return ctx.JSON(http.StatusOK, response)
}

// StreamJobEvents handles GET /api/v1/jobs/events.
// The connection stays open until the client goes away; events rendered for
// this actor arrive as SSE data frames, with comment frames as heartbeats.
func (s *Server) StreamJobEvents(ctx echo.Context, params servers.StreamJobEventsParams) error {
	requester, err := actorFromHeaders(params.XActorId, params.XActorRole, params.XMachineType)
	if err != nil {
		return writeError(ctx, err)
	}

	var jobIDs []kernel.UUID
	if params.JobId != nil {
		jobIDs = make([]kernel.UUID, 0, len(*params.JobId))
		for _, raw := range *params.JobId {
			id, idErr := kernel.UUIDFromBytes(raw[:])
			if idErr != nil {
				return writeError(ctx, idErr)
			}
			jobIDs = append(jobIDs, id)
		}
	}

	// The role room is on unless the client explicitly opts out to follow
	// specific jobs only.
	roleRoom := true
	if params.RoleRoom != nil {
		roleRoom = *params.RoleRoom
	}

	connectionID := uuid.NewString()
	payloads := s.hub.Register(connectionID)
	defer s.hub.Unregister(connectionID)

	if err = s.registry.Add(realtime.Subscription{
		ConnectionID: connectionID,
		Actor:        requester,
		RoleRoom:     roleRoom,
		JobIDs:       jobIDs,
	}); err != nil {
		return writeError(ctx, err)
	}
	defer s.registry.Remove(connectionID)

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)
	response.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil

		case payload := <-payloads:
			if _, err = fmt.Fprintf(response, "data: %s\n\n", payload); err != nil {
				return nil
			}
			response.Flush()

		case <-heartbeat.C:
			if _, err = fmt.Fprint(response, ": heartbeat\n\n"); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

func jobToResponse(j queries.ListVisibleJobsQueryResponse) servers.Job {
	actions := make([]servers.Status, len(j.AvailableActions))
	for i, action := range j.AvailableActions {
		actions[i] = servers.Status(action.String())
	}

	response := servers.Job{
		Id:               j.ID.Bytes(),
		Status:           servers.Status(j.Status.String()),
		MachineType:      servers.MachineType(j.MachineType.String()),
		AvailableActions: actions,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}

	if j.OwnerID != nil {
		ownerID := j.OwnerID.Bytes()
		response.OwnerId = &ownerID
	}
	if j.AttachmentRef != "" {
		attachmentRef := j.AttachmentRef
		response.AttachmentRef = &attachmentRef
	}

	return response
}

func appliedRecordToResponse(record transition.Record) servers.TransitionRecord {
	response := servers.TransitionRecord{
		To:         servers.Status(record.To().String()),
		ActorRole:  servers.Role(record.ActorRole().String()),
		Comment:    record.Comment(),
		OccurredAt: record.OccurredAt(),
	}

	actorID := record.ActorID().Bytes()
	response.ActorId = &actorID

	if record.From() != nil {
		from := servers.Status(record.From().String())
		response.From = &from
	}

	return response
}

func recordToResponse(record queries.GetJobHistoryQueryResponse) servers.TransitionRecord {
	response := servers.TransitionRecord{
		To:         servers.Status(record.To.String()),
		ActorRole:  servers.Role(record.ActorRole.String()),
		Comment:    record.Comment,
		OccurredAt: record.OccurredAt,
	}

	actorID := record.ActorID.Bytes()
	response.ActorId = &actorID

	if record.From != nil {
		from := servers.Status(record.From.String())
		response.From = &from
	}

	return response
}
