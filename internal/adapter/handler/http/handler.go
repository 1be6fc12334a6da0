package http

import (
	"net/http"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData:  http.StatusBadRequest,
	domain.ErrBadRequest:     http.StatusBadRequest,
	domain.ErrEmptyOrder:     http.StatusBadRequest,
	domain.ErrUnknownPayment: http.StatusBadRequest,

	domain.ErrInsufficientBalance: http.StatusPaymentRequired,
	domain.ErrStateConflict:       http.StatusConflict,
	domain.ErrRefundWindowClosed:  http.StatusUnprocessableEntity,
	domain.ErrCourseNotInOrder:    http.StatusUnprocessableEntity,
	domain.ErrGatewayUnavailable:  http.StatusBadGateway,
}

var errorCodeMap = map[error]string{
	domain.ErrDataNotFound:        "not_found",
	domain.ErrConflictingData:     "conflict",
	domain.ErrBadRequest:          "validation",
	domain.ErrEmptyOrder:          "validation",
	domain.ErrUnknownPayment:      "validation",
	domain.ErrInsufficientBalance: "insufficient_funds",
	domain.ErrStateConflict:       "state_conflict",
	domain.ErrRefundWindowClosed:  "refund_window_closed",
	domain.ErrCourseNotInOrder:    "course_not_in_order",
	domain.ErrGatewayUnavailable:  "gateway_unavailable",
	domain.ErrForbidden:           "forbidden",
}

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{
		Success: false,
		Code:    "validation",
		Message: domain.ErrBadRequest.Error(),
	})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("aborting request", zap.Error(err))
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{
		Success: false,
		Code:    codeFor(err),
		Message: err.Error(),
	})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, errorResponse{
		Success: false,
		Code:    codeFor(err),
		Message: err.Error(),
	})
}

func codeFor(err error) string {
	if code, ok := errorCodeMap[err]; ok {
		return code
	}
	return "internal"
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
