package flow

import "errors"

var (
	// ErrInvalidPhoneNumber is returned when a phone number shorter than
	// PhoneLength digits is submitted.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
	// ErrIncompleteOtp is returned when verification is requested before every
	// OTP slot holds a digit.
	ErrIncompleteOtp = errors.New("incomplete otp")
	// ErrNonNumericDigit is returned when an OTP slot is given anything other
	// than an empty string or a single decimal digit.
	ErrNonNumericDigit = errors.New("otp slot accepts a single decimal digit")
	// ErrSlotOutOfRange is returned for an OTP slot index outside [0, OtpLength).
	ErrSlotOutOfRange = errors.New("otp slot out of range")
	// ErrWrongStep is returned when an operation is not available in the current step.
	ErrWrongStep = errors.New("operation not available in current step")
	// ErrBusy is returned when a submission is attempted while another is pending.
	ErrBusy = errors.New("submission already in progress")
	// ErrStaleResult is returned by Finish for a request the flow no longer waits on.
	ErrStaleResult = errors.New("stale submission result")
	// ErrSendFailed wraps a backend failure while sending the code.
	ErrSendFailed = errors.New("sending code failed")
	// ErrVerifyFailed wraps a backend failure while verifying the code.
	ErrVerifyFailed = errors.New("verifying code failed")
)

// IsValidation reports whether err is one of the two user-correctable
// validation failures.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidPhoneNumber) || errors.Is(err, ErrIncompleteOtp)
}
