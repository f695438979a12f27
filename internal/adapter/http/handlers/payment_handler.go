package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "payment_service/internal/adapter/http/dto/request"
	response "payment_service/internal/adapter/http/dto/response"
	"payment_service/internal/domain/failure"
	"payment_service/internal/usecase"
	"payment_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler exposes the payment lifecycle over HTTP.
type PaymentHandler struct {
	process usecase.IProcessPaymentUseCase
	cancel  usecase.ICancelPaymentUseCase
	refund  usecase.IRefundPaymentUseCase
	get     usecase.IGetPaymentUseCase
	list    usecase.IListPaymentsUseCase
	log     *zap.Logger
}

func NewPaymentHandler(
	process usecase.IProcessPaymentUseCase,
	cancel usecase.ICancelPaymentUseCase,
	refund usecase.IRefundPaymentUseCase,
	get usecase.IGetPaymentUseCase,
	list usecase.IListPaymentsUseCase,
	log *zap.Logger,
) *PaymentHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentHandler{process: process, cancel: cancel, refund: refund, get: get, list: list, log: log}
}

// ProcessPayment godoc
// @Summary      Process a payment
// @Description  Validates the payment, submits it to the gateway and persists it. The body is selected by paymentType.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.ProcessPaymentRequest  true  "Payment"
// @Success      201      {object}  response.ProcessPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments [post]
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Warn("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainError(errInvalidPaymentPayload.Code, errInvalidPaymentPayload.Message, err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		appErr := pkg.NewDomainError(errInvalidPaymentPayload.Code, errInvalidPaymentPayload.Message, err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.log.Info("[payment][handler] process start", zap.String("order_id", in.OrderID), zap.String("payment_type", string(in.PaymentType)))
	res, err := h.process.Execute(c.Request.Context(), in)
	if err != nil {
		h.fail(c, "process", err)
		return
	}

	c.JSON(http.StatusCreated, response.FromProcessResult(res))
}

// ListPayments godoc
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Param        page  query     int  false  "Zero-based page"  default(0)
// @Param        size  query     int  false  "Page size"        default(20)
// @Success      200   {object}  response.PageResponse
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	page := queryInt(c, "page", 0)
	size := queryInt(c, "size", usecase.DefaultPageSize)

	c.JSON(http.StatusOK, response.FromPage(h.list.FindPayments(c.Request.Context(), page, size)))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// CancelPayment godoc
// @Summary      Cancel a payment
// @Description  Only PROCESSING and COMPLETED payments can be cancelled.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/{id}/cancel [post]
func (h *PaymentHandler) CancelPayment(c *gin.Context) {
	p, err := h.cancel.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "cancel", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RefundPayment godoc
// @Summary      Refund a payment
// @Description  Only PROCESSING and COMPLETED payments can be refunded.
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /payments/{id}/refund [post]
func (h *PaymentHandler) RefundPayment(c *gin.Context) {
	p, err := h.refund.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "refund", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPaymentsByOrderID godoc
// @Summary      List the payments of an order
// @Tags         payments
// @Produce      json
// @Param        orderId  path      string  true  "Order id"
// @Success      200      {array}   response.PaymentResponse
// @Failure      404      {object}  pkg.HTTPError
// @Router       /payments/order/{orderId} [get]
func (h *PaymentHandler) GetPaymentsByOrderID(c *gin.Context) {
	items, err := h.list.GetByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.fail(c, "list-by-order", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(items))
}

// GetPaymentsByCustomerID godoc
// @Summary      List the payments of a customer
// @Tags         payments
// @Produce      json
// @Param        customerId  path      string  true  "Customer id"
// @Success      200         {array}   response.PaymentResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/customer/{customerId} [get]
func (h *PaymentHandler) GetPaymentsByCustomerID(c *gin.Context) {
	items, err := h.list.GetByCustomerID(c.Request.Context(), c.Param("customerId"))
	if err != nil {
		h.fail(c, "list-by-customer", err)
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(items))
}

func (h *PaymentHandler) fail(c *gin.Context, op string, err error) {
	appErr := mapPaymentError(err)
	h.log.Warn("[payment][handler] "+op+" failed",
		zap.String("path", c.FullPath()), zap.Int("status", appErr.HTTPStatus), zap.Error(err))
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapPaymentError(err error) *pkg.AppError {
	var fe *failure.Error
	message := "An internal error occurred"
	if errors.As(err, &fe) && fe.Message != "" {
		message = fe.Message
	}

	switch failure.KindOf(err) {
	case failure.KindValidation:
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT", message, http.StatusBadRequest)
	case failure.KindNotFound:
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", message, http.StatusNotFound)
	case failure.KindProcessing:
		return pkg.NewDomainError("PAYMENT_PROCESSING_FAILED", "Payment could not be processed", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil {
		return def
	}
	return v
}
