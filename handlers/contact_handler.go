package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/lumbunggroup/lumbung-backend/errors"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
)

// ContactHandler serves the contact form schema and one-shot submissions.
type ContactHandler struct {
	schema    *contact.FormSchema
	deliverer contact.Deliverer
	metrics   *services.ContactMetrics
	timeout   time.Duration
}

// NewContactHandler creates a ContactHandler. metrics may be nil; a zero
// timeout leaves the delivery bound only by the request context.
func NewContactHandler(schema *contact.FormSchema, deliverer contact.Deliverer, metrics *services.ContactMetrics, timeout time.Duration) *ContactHandler {
	return &ContactHandler{
		schema:    schema,
		deliverer: deliverer,
		metrics:   metrics,
		timeout:   timeout,
	}
}

// GetSchema godoc
// @Summary      Contact form schema
// @Description  Field definitions, labels, placeholders and category options for rendering the contact form
// @Tags         contact
// @Produce      json
// @Success      200  {object}  types.ContactSchemaResponse
// @Router       /contact/schema [get]
func (h *ContactHandler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, types.NewContactSchemaResponse(h.schema))
}

// Submit godoc
// @Summary      Submit the contact form
// @Description  Validates the submission and hands it to the delivery channel, waiting for the outcome
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactSubmission  true  "Field values keyed by field key"
// @Success      200   {object}  types.StatusResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      422   {object}  types.ErrorResponse
// @Failure      502   {object}  types.ErrorResponse
// @Failure      504   {object}  types.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req types.ContactSubmission
	if !bindJSONOrError(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	opts := []contact.ControllerOption{contact.WithLogger(logger.GetLogger())}
	if h.metrics != nil {
		opts = append(opts, contact.WithTransitionHook(h.metrics.Hook()))
	}
	ctrl := contact.NewController(h.schema, h.deliverer, opts...)
	defer ctrl.Dispose()

	done, err := ctrl.SubmitValues(ctx, req)
	if err != nil {
		_ = c.Error(apperrors.ValidationFailed("Unknown form field", err.Error()))
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			_ = c.Error(apperrors.Timeout("Sending took too long, please try again"))
			return
		}
		_ = c.Error(apperrors.DeliveryFailed(ctx.Err()))
		return
	}

	state := ctrl.State()
	switch state.Phase {
	case contact.PhaseSuccess:
		c.JSON(http.StatusOK, types.StatusResponse{Status: "success", Message: state.Notice()})
	case contact.PhaseFailed:
		_ = c.Error(apperrors.DeliveryFailed(stderrors.New(state.Reason)))
	default:
		_ = c.Error(apperrors.FieldValidationFailed(ctrl.Errors().Errors()))
	}
}
