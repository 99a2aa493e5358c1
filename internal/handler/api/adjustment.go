package api

import (
	"errors"
	"net/http"

	reqdto "homeshine/internal/handler/dto/request"
	resdto "homeshine/internal/handler/dto/response"
	"homeshine/internal/handler/httperr"
	"homeshine/internal/handler/middleware"
	"homeshine/internal/pkg/errs"
	"homeshine/internal/usecase/commands"
	"homeshine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingIdentity = errs.New("authenticated identity missing from context")

type AdjustmentHandler struct {
	adjustmentCommands commands.AdjustmentCommands
	adjustmentQueries  queries.AdjustmentQueries
}

func NewAdjustmentHandler(adjustmentCommands commands.AdjustmentCommands, adjustmentQueries queries.AdjustmentQueries) *AdjustmentHandler {
	return &AdjustmentHandler{
		adjustmentCommands: adjustmentCommands,
		adjustmentQueries:  adjustmentQueries,
	}
}

// @Summary Create adjustment request
// @Description Contest a home's recorded size for an assigned appointment
// @Tags adjustment-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAdjustmentRequest true "Adjustment request"
// @Success 201 {object} resdto.CreateAdjustmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /adjustment-requests [post]
func (h *AdjustmentHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	var req reqdto.CreateAdjustmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentCommands.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrDuplicateAdjustment):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "An unresolved adjustment request already exists for this appointment", nil)
		case errors.Is(err, commands.ErrNotAssignedCleaner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only an assigned cleaner may contest this appointment", nil)
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Header("Location", "/adjustment-requests/"+result.RequestID.String())
	c.JSON(http.StatusCreated, resdto.FromCreateAdjustmentResult(result))
}

// @Summary List pending adjustment requests
// @Description Homeowners see their own open requests; escalation authority sees everything awaiting a ruling
// @Tags adjustment-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AdjustmentListResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /adjustment-requests/pending [get]
func (h *AdjustmentHandler) ListPending(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	items, err := h.adjustmentQueries.ListPending(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, queries.ErrAccessDenied) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, toListResponse(items))
}

// @Summary Get adjustment request
// @Description Get one adjustment request, visible to its parties and escalation authority
// @Tags adjustment-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.AdjustmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /adjustment-requests/{id} [get]
func (h *AdjustmentHandler) GetRequest(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	view, err := h.adjustmentQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAdjustmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Adjustment request not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAdjustmentView(view))
}

// @Summary Homeowner decision
// @Description Approve or dispute the cleaner's size claim
// @Tags adjustment-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.HomeownerResponseRequest true "Decision"
// @Success 200 {object} resdto.HomeownerDecisionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /adjustment-requests/{id}/homeowner-response [post]
func (h *AdjustmentHandler) HomeownerRespond(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	var req reqdto.HomeownerResponseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentCommands.HomeownerRespond(c.Request.Context(), userID, id, req)
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRespondResult(result))
}

// @Summary Escalation decision
// @Description Final, binding ruling on a disputed or expired request
// @Tags adjustment-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body reqdto.OwnerResolveRequest true "Ruling"
// @Success 200 {object} resdto.OwnerResolveResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /adjustment-requests/{id}/owner-resolve [post]
func (h *AdjustmentHandler) OwnerResolve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	role, roleOK := middleware.GetUserRole(c)
	if !ok || !roleOK {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID format", nil)
		return
	}

	var req reqdto.OwnerResolveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.adjustmentCommands.OwnerResolve(c.Request.Context(), userID, role, id, req)
	if err != nil {
		h.respondDecisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResolveResult(result))
}

// @Summary Home adjustment history
// @Description All adjustment requests ever filed against a home
// @Tags adjustment-requests
// @Produce json
// @Security BearerAuth
// @Param homeId path string true "Home ID"
// @Success 200 {array} resdto.AdjustmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /homes/{homeId}/adjustment-history [get]
func (h *AdjustmentHandler) HomeHistory(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingIdentity, "Internal server error", nil)
		return
	}

	homeID, err := uuid.Parse(c.Param("homeId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid home ID format", nil)
		return
	}

	items, err := h.adjustmentQueries.HomeHistory(c.Request.Context(), actor, homeID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrHomeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Home not found", nil)
		case errors.Is(err, queries.ErrAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, toListResponse(items))
}

func (h *AdjustmentHandler) respondDecisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAdjustmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Adjustment request not found", nil)
	case errors.Is(err, commands.ErrNotHomeowner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the request's homeowner may respond", nil)
	case errors.Is(err, commands.ErrEscalationAuthorityRequired):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Escalation authority required", nil)
	case errors.Is(err, commands.ErrInvalidRequestStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func actorFromContext(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{ID: userID, Role: role}, true
}

func toListResponse(items []*queries.AdjustmentListItem) []*resdto.AdjustmentListResponse {
	response := make([]*resdto.AdjustmentListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromAdjustmentListItem(item)
	}
	return response
}
