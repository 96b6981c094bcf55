package public

import (
	"errors"
	"net/http"

	"github.com/freshmart/freshmart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError binds a service error to an HTTP response.
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			msg := rule.message
			if msg == "" {
				msg = err.Error()
			}
			respondError(c, rule.status, msg, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackMsg, err)
}

// An empty message means the error's own text is used, which keeps the
// product name attached to stock failures.
var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, message: "quantity must be a positive integer"},
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "product not found"},
	{target: service.ErrInsufficientStock, status: http.StatusBadRequest},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "cart not found"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, status: http.StatusBadRequest, message: "cart is empty"},
	{target: service.ErrInsufficientStock, status: http.StatusBadRequest},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, status: http.StatusBadRequest, message: "invalid email address"},
	{target: service.ErrWeakPassword, status: http.StatusBadRequest},
	{target: service.ErrEmailExists, status: http.StatusBadRequest, message: "email already registered"},
	{target: service.ErrInvalidCredentials, status: http.StatusUnauthorized, message: "invalid email or password"},
	{target: service.ErrUserDisabled, status: http.StatusForbidden, message: "account disabled"},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: "user not found"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, http.StatusInternalServerError, "cart operation failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, http.StatusInternalServerError, "checkout failed")
}

func respondAuthError(c *gin.Context, err error) {
	respondWithMappedError(c, err, authErrorRules, http.StatusInternalServerError, "authentication failed")
}
