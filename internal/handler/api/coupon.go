package api

import (
	"errors"
	"net/http"

	reqdto "petstay/internal/handler/dto/request"
	resdto "petstay/internal/handler/dto/response"
	"petstay/internal/usecase/commands"
	"petstay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	commands commands.CouponCommands
	queries  queries.CouponQueries
}

func NewCouponHandler(cmd commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		commands: cmd,
		queries:  q,
	}
}

// @Summary Create coupon
// @Description Staff-only coupon creation
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CouponRequest true "Coupon definition"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		respondCouponError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update coupon
// @Tags coupons
// @Accept json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.CouponRequest true "Coupon definition"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /coupons/{id} [put]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := parseCouponID(c)
	if err != nil {
		return
	}

	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.commands.Update(c.Request.Context(), id, req.ToInput()); err != nil {
		respondCouponError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Deactivate(c *gin.Context) {
	id, err := parseCouponID(c)
	if err != nil {
		return
	}
	if err := h.commands.Deactivate(c.Request.Context(), id); err != nil {
		respondCouponError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Activate coupon
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /coupons/{id}/activate [post]
func (h *CouponHandler) Activate(c *gin.Context) {
	id, err := parseCouponID(c)
	if err != nil {
		return
	}
	if err := h.commands.Activate(c.Request.Context(), id); err != nil {
		respondCouponError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get coupon
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := parseCouponID(c)
	if err != nil {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCouponError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponView(view))
}

// @Summary List coupons
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param include_inactive query bool false "Include deactivated coupons"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	limit := parseInt32(c.Query("limit"), 0)
	offset := parseInt32(c.Query("offset"), 0)

	views, err := h.queries.List(c.Request.Context(), includeInactive, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.CouponResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromCouponView(view)
	}
	c.JSON(http.StatusOK, response)
}

func parseCouponID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID format"})
		return uuid.Nil, err
	}
	return id, nil
}

func respondCouponError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCouponNotFound), errors.Is(err, queries.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
	case errors.Is(err, commands.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
	case errors.Is(err, commands.ErrCouponValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Coupon validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
