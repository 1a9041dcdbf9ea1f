package api

import (
	"errors"
	"net/http"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
	"easebooking/internal/domain/review"
	"easebooking/internal/handler/httperr"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/config"
	"easebooking/internal/pkg/cookie"
	"easebooking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase failures onto HTTP responses. A session
// expiry additionally drops the session cookie so the browser lands on
// the sign-in page instead of retrying with a dead token.
func respondError(c *gin.Context, cookieCfg config.CookieConfig, err error) {
	if errors.Is(err, errs.ErrSessionExpired) {
		cookie.ClearAccessToken(c, cookieCfg)
		httperr.AbortWithError(c, http.StatusUnauthorized, err,
			"Session expired, please sign in again", gin.H{"redirect": "/login"})
		return
	}

	switch {
	case errors.Is(err, errs.ErrPastVisitDate),
		errors.Is(err, errs.ErrInvalidQuantity),
		errors.Is(err, booking.ErrInvalidVisitDate),
		errors.Is(err, review.ErrInvalidRating),
		errors.Is(err, review.ErrEmptyComment),
		errors.Is(err, review.ErrCommentTooLong),
		errors.Is(err, place.ErrNameTooShort),
		errors.Is(err, place.ErrDescriptionTooShort),
		errors.Is(err, place.ErrLocationRequired),
		errors.Is(err, place.ErrTimingsRequired),
		errors.Is(err, place.ErrPriceOutOfRange),
		errors.Is(err, place.ErrUnrecognizedMapsURL):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, errs.ErrReviewNotEligible),
		errors.Is(err, errs.ErrRoleForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errors.Is(err, errs.ErrPlaceNotFound),
		errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, errs.ErrVerificationRejected):
		httperr.AbortWithError(c, http.StatusPaymentRequired, err,
			"Payment verification failed", remoteDetail(err))
	case errors.Is(err, errs.ErrCheckoutKeyMissing),
		errors.Is(err, errs.ErrCheckoutUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err,
			"Checkout is currently unavailable", remoteDetail(err))
	case errors.Is(err, errs.ErrBackendUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err,
			"Booking service is currently unavailable", remoteDetail(err))
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			"Internal server error", nil)
	}
}

func remoteDetail(err error) any {
	if msg := infra.RemoteMessageOf(err); msg != "" {
		return gin.H{"remoteMessage": msg}
	}
	return nil
}
