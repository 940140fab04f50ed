package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/rental-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/rental-marketplace/internal/middleware"
	ucReview "github.com/BruksfildServices01/rental-marketplace/internal/usecase/review"
)

type ReviewHandler struct {
	create  *ucReview.CreateReview
	remove  *ucReview.DeleteReview
	queries *ucReview.Queries
}

func NewReviewHandler(create *ucReview.CreateReview, remove *ucReview.DeleteReview, queries *ucReview.Queries) *ReviewHandler {
	return &ReviewHandler{create: create, remove: remove, queries: queries}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}
	out, err := h.create.Execute(c.Request.Context(), middleware.IdentityFrom(c), payload)
	writeOutcome(c, out, err)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	out, err := h.remove.Execute(c.Request.Context(), middleware.IdentityFrom(c), c.Param("id"))
	writeOutcome(c, out, err)
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (h *ReviewHandler) PropertyReviews(c *gin.Context) {
	reviews, err := h.queries.FetchPropertyReviews(c.Request.Context(), c.Param("id"))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) PropertyRating(c *gin.Context) {
	rating, err := h.queries.FetchPropertyRating(c.Request.Context(), c.Param("id"))
	if writeQueryError(c, err) {
		return
	}
	httpresp.OK(c, rating)
}

func (h *ReviewHandler) Mine(c *gin.Context) {
	reviews, err := h.queries.FetchReviewsByUser(c.Request.Context(), middleware.IdentityFrom(c))
	if writeQueryError(c, err) {
		return
	}
	httpresp.List(c, reviews)
}

// Eligibility answers whether the review form should be offered, and returns
// the caller's review when there is one.
func (h *ReviewHandler) Eligibility(c *gin.Context) {
	ctx := c.Request.Context()
	ident := middleware.IdentityFrom(c)
	propertyID := c.Param("id")

	can, err := h.queries.CanReview(ctx, ident, propertyID)
	if writeQueryError(c, err) {
		return
	}

	existing, err := h.queries.FindExistingReview(ctx, ident, propertyID)
	if writeQueryError(c, err) {
		return
	}

	httpresp.OK(c, gin.H{
		"can_review": can,
		"review":     existing,
	})
}
