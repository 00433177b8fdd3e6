package api

import (
	"errors"
	"net/http"
	"strconv"

	"petstay/internal/domain/user"
	reqdto "petstay/internal/handler/dto/request"
	resdto "petstay/internal/handler/dto/response"
	"petstay/internal/handler/middleware"
	"petstay/internal/usecase/commands"
	"petstay/internal/usecase/queries"
	"petstay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
	quotes   queries.QuoteQueries
}

func NewReservationHandler(cmd commands.ReservationCommands, q queries.ReservationQueries, quotes queries.QuoteQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmd,
		queries:  q,
		quotes:   quotes,
	}
}

// @Summary Create reservation
// @Description Book a stay for up to three pets
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), actor, commands.CreateReservationInput{
		CustomerID: req.CustomerID,
		PetIDs:     req.PetIDs,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CouponCode: req.GetCouponCode(),
		Note:       req.GetNote(),
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get reservation
// @Description Get reservation detail with pets, pricing and audit history
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
		case errors.Is(err, queries.ErrReservationAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List reservations
// @Description Customers see their own reservations; staff may list all or filter by customer/status
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param customer_id query string false "Customer ID (staff only)"
// @Param status query string false "Status filter (staff only)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	limit := parseInt32(c.Query("limit"), 0)
	offset := parseInt32(c.Query("offset"), 0)

	var items []*queries.ReservationListItem
	var err error
	switch {
	case c.Query("customer_id") != "":
		customerID, parseErr := uuid.Parse(c.Query("customer_id"))
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID format"})
			return
		}
		items, err = h.queries.ListByCustomer(c.Request.Context(), actor, customerID, limit, offset)
	case actor.IsStaff():
		var status *string
		if s := c.Query("status"); s != "" {
			status = &s
		}
		items, err = h.queries.ListAll(c.Request.Context(), actor, status, limit, offset)
	default:
		items, err = h.queries.ListByCustomer(c.Request.Context(), actor, actor.ID, limit, offset)
	}
	if err != nil {
		if errors.Is(err, queries.ErrReservationAccess) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Update reservation
// @Description Replace pets and dates while the reservation is still mutable
// @Tags reservations
// @Accept json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update request"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.commands.Update(c.Request.Context(), actor, id, commands.UpdateReservationInput{
		PetIDs:    req.PetIDs,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Note:      req.Note,
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete reservation
// @Description Hard delete, only while the reservation has never left the created state
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.Delete(c.Request.Context(), actor, id)
	})
}

// @Summary Apply coupon
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/coupon [post]
func (h *ReservationHandler) ApplyCoupon(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req reqdto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.ApplyCoupon(c.Request.Context(), actor, id, req.Code); err != nil {
		respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove coupon
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/coupon [delete]
func (h *ReservationHandler) RemoveCoupon(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.RemoveCoupon(c.Request.Context(), actor, id)
	})
}

// @Summary Grant manual discount
// @Description Staff-entered discount; replaces any coupon discount
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ManualDiscountRequest true "Discount amount"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/discount [post]
func (h *ReservationHandler) GrantManualDiscount(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req reqdto.ManualDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.GrantManualDiscount(c.Request.Context(), actor, id, req.AmountCents); err != nil {
		respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear manual discount
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/discount [delete]
func (h *ReservationHandler) ClearManualDiscount(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.ClearManualDiscount(c.Request.Context(), actor, id)
	})
}

// @Summary Confirm reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.Confirm(c.Request.Context(), actor, id)
	})
}

// @Summary Request payment
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/request-payment [post]
func (h *ReservationHandler) RequestPayment(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.RequestPayment(c.Request.Context(), actor, id)
	})
}

// @Summary Submit payment proof
// @Description Attach the payment artifact while payment is pending
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.PaymentProofRequest true "Proof reference"
// @Success 204 "No Content"
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations/{id}/payment-proof [post]
func (h *ReservationHandler) SubmitPaymentProof(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req reqdto.PaymentProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	err = h.commands.SubmitPaymentProof(c.Request.Context(), actor, id, commands.SubmitPaymentProofInput{
		ArtifactRef: req.ArtifactRef,
		Note:        req.GetNote(),
	})
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Approve payment
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/approve-payment [post]
func (h *ReservationHandler) ApprovePayment(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.ApprovePayment(c.Request.Context(), actor, id)
	})
}

// @Summary Finalize reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/finalize [post]
func (h *ReservationHandler) Finalize(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.Finalize(c.Request.Context(), actor, id)
	})
}

// @Summary Cancel reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.runCommand(c, func(actor user.Actor, id uuid.UUID) error {
		return h.commands.Cancel(c.Request.Context(), actor, id)
	})
}

// @Summary Quote a stay
// @Description Price a prospective stay, optionally previewing a coupon
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 422 {object} map[string]string
// @Router /reservations/quote [post]
func (h *ReservationHandler) Quote(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.quotes.Preview(c.Request.Context(), queries.QuoteInput{
		CustomerID: actor.ID,
		PetIDs:     req.PetIDs,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		CouponCode: req.GetCouponCode(),
	})
	if err != nil {
		if errors.Is(err, queries.ErrQuoteInvalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quote input invalid"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

func (h *ReservationHandler) runCommand(c *gin.Context, fn func(actor user.Actor, id uuid.UUID) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := fn(actor, id); err != nil {
		respondReservationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID format"})
		return uuid.Nil, err
	}
	return id, nil
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 0 {
		return fallback
	}
	return int32(v)
}

func respondReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, commands.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
	case errors.Is(err, commands.ErrPetNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pet not found for customer"})
	case errors.Is(err, commands.ErrForbiddenRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "Operation not allowed for this role"})
	case errors.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid lifecycle transition"})
	case errors.Is(err, commands.ErrImmutableState):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation can no longer be modified"})
	case errors.Is(err, commands.ErrManualDiscountSet):
		c.JSON(http.StatusConflict, gin.H{"error": "Manual discount must be cleared first"})
	case errors.Is(err, commands.ErrIneligibleCoupon):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Coupon is not eligible",
			"reason": commands.CouponIneligibilityReason(err),
		})
	case errors.Is(err, commands.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Reservation validation failed"})
	case errors.Is(err, shared.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation is being modified, retry"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
