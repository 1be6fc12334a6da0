package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type orderLineRequest struct {
	CourseID uint64 `json:"course_id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	Lines         []orderLineRequest `json:"lines"`
	VoucherCode   string             `json:"voucher_code,omitempty"`
	PaymentMethod string             `json:"payment_method"`
	Contact       string             `json:"contact,omitempty"`
}

type orderLineResponse struct {
	CourseID  uint64          `json:"course_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type orderResponse struct {
	ID             uint64              `json:"id"`
	Lines          []orderLineResponse `json:"lines"`
	TotalAmount    decimal.Decimal     `json:"total_amount"`
	DiscountAmount decimal.Decimal     `json:"discount_amount"`
	FinalAmount    decimal.Decimal     `json:"final_amount"`
	PaymentMethod  string              `json:"payment_method"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	PaidAt         *time.Time          `json:"paid_at,omitempty"`
	RedirectURL    string              `json:"redirect_url,omitempty"`
}

func newOrderResponse(order *domain.Order, redirect *port.Redirect) orderResponse {
	lines := make([]orderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, orderLineResponse{
			CourseID:  l.CourseID,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	resp := orderResponse{
		ID:             order.ID,
		Lines:          lines,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		FinalAmount:    order.FinalAmount,
		PaymentMethod:  string(order.PaymentMethod),
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt,
		PaidAt:         order.PaidAt,
	}
	if redirect != nil {
		resp.RedirectURL = redirect.URL
	}
	return resp
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	lines := make([]port.OrderLineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, port.OrderLineInput{CourseID: l.CourseID, Quantity: l.Quantity})
	}

	result, err := oh.service.PlaceOrder(ctx, port.PlaceOrderInput{
		BuyerID:       getAuthPayload(ctx).UserID,
		Lines:         lines,
		VoucherCode:   req.VoucherCode,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Contact:       req.Contact,
		ClientIP:      ctx.ClientIP(),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, newOrderResponse(result.Order, result.Redirect), http.StatusCreated)
}

type cartItemResponse struct {
	CourseID uint64 `json:"course_id"`
	Quantity int    `json:"quantity"`
}

func (oh *OrderHandler) GetCart(ctx *gin.Context) {
	items, err := oh.service.GetCart(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, cartItemResponse{CourseID: item.CourseID, Quantity: item.Quantity})
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, *getAuthPayload(ctx), orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order, nil))
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	payload := getAuthPayload(ctx)

	buyerID := payload.UserID
	if raw := ctx.Query("buyer"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
		buyerID = id
	}
	limit, _ := strconv.ParseUint(ctx.DefaultQuery("limit", "20"), 10, 64)
	offset, _ := strconv.ParseUint(ctx.DefaultQuery("offset", "0"), 10, 64)

	list, err := oh.service.ListOrders(ctx, *payload, buyerID, limit, offset)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResponse(o, nil))
	}
	oh.handleSuccess(ctx, result)
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.CancelOrder(ctx, getAuthPayload(ctx).UserID, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order, nil))
}

type refundRequest struct {
	CourseID uint64 `json:"course_id"`
}

func (oh *OrderHandler) RefundOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	req := refundRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.RefundOrder(ctx, getAuthPayload(ctx).UserID, orderID, req.CourseID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, newOrderResponse(order, nil))
}
