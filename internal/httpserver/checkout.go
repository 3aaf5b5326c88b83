package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"robux-storefront/internal/checkout"
	"robux-storefront/internal/domain"
)

type checkoutView struct {
	Step           checkout.Step         `json:"step"`
	Cart           domain.CartSnapshot   `json:"cart"`
	Recipient      string                `json:"recipient,omitempty"`
	ContactAddress string                `json:"contactAddress,omitempty"`
	ContactMasked  bool                  `json:"contactMasked"`
	PaymentMethod  domain.PaymentMethod  `json:"paymentMethod,omitempty"`
	PaymentMethods []checkout.MethodInfo `json:"paymentMethods"`
	QRReference    string                `json:"qrReference,omitempty"`
	OrderID        string                `json:"orderId"`
}

func viewOf(w *checkout.Wizard) checkoutView {
	address, masked := w.DisplayContactAddress()
	view := checkoutView{
		Step:           w.Step(),
		Cart:           w.Snapshot(),
		Recipient:      w.Recipient(),
		ContactAddress: address,
		ContactMasked:  masked,
		PaymentMethod:  w.SelectedMethod(),
		PaymentMethods: checkout.Methods(),
		OrderID:        w.OrderNonce(),
	}
	if view.Step == checkout.StepAwaitingQRConfirmation {
		view.QRReference = w.QRReference()
	}
	return view
}

func (h *handlers) openCheckout(c *gin.Context) {
	w := h.deps.Checkout.Open(c.Request.Context(), sessionID(c))
	c.JSON(http.StatusCreated, viewOf(w))
}

func (h *handlers) getCheckout(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

type recipientRequest struct {
	Handle string `json:"handle"`
}

func (h *handlers) submitRecipient(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	var req recipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if err := w.SubmitRecipient(req.Handle); err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

func (h *handlers) checkoutBack(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	if err := w.Back(); err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

type contactRequest struct {
	Address string `json:"address"`
}

func (h *handlers) setContact(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if err := w.SetContactAddress(req.Address); err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

type paymentRequest struct {
	Method domain.PaymentMethod `json:"method" binding:"required"`
}

func (h *handlers) selectPayment(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "payment method required"})
		return
	}
	if err := w.SelectPayment(c.Request.Context(), req.Method); err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

func (h *handlers) confirmQRPaid(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	if err := w.ConfirmQRPaid(c.Request.Context()); err != nil {
		h.checkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(w))
}

func (h *handlers) checkoutQR(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	if w.Step() != checkout.StepAwaitingQRConfirmation {
		c.JSON(http.StatusConflict, gin.H{"message": "no payment reference at this step"})
		return
	}
	png, err := w.QRPNG(256)
	if err != nil {
		h.logger.Printf("render payment qr: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "qr rendering failed"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *handlers) getReceipt(c *gin.Context) {
	w, ok := h.deps.Checkout.Get(sessionID(c))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "no active checkout"})
		return
	}
	summary, err := w.Summary()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"message": "order not completed yet"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) closeCheckout(c *gin.Context) {
	h.deps.Checkout.Close(sessionID(c))
	c.Status(http.StatusNoContent)
}

// checkoutError maps wizard errors onto HTTP statuses: validation
// failures are 422 with an inline message, out-of-order actions 409.
func (h *handlers) checkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyRecipient), errors.Is(err, checkout.ErrUnknownMethod):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": err.Error()})
	case errors.Is(err, checkout.ErrInvalidTransition), errors.Is(err, checkout.ErrClosed):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		h.logger.Printf("checkout action failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "checkout action failed"})
	}
}
