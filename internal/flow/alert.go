package flow

import "errors"

// AlertMessage returns the user-facing text for err, or "" when err is nil.
func AlertMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidPhoneNumber):
		return "Please enter a valid 10-digit mobile number"
	case errors.Is(err, ErrIncompleteOtp):
		return "Please enter the complete OTP"
	case errors.Is(err, ErrSendFailed):
		return "We couldn't send the code. Please try again"
	case errors.Is(err, ErrVerifyFailed):
		return "We couldn't verify the code. Please try again"
	}
	return "Something went wrong. Please try again"
}
