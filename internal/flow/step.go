// Package flow holds the phone/OTP login state machine. It knows nothing about
// rendering; presentation layers drive it through Controller and read State.
package flow

// Step is the discrete phase of the login flow.
type Step int

const (
	// PhoneEntry collects the mobile number. It is the initial step.
	PhoneEntry Step = iota
	// OtpEntry collects the one-time passcode sent to the number.
	OtpEntry
	// Success is terminal; nothing leaves it.
	Success
)

func (s Step) String() string {
	switch s {
	case PhoneEntry:
		return "PHONE"
	case OtpEntry:
		return "OTP"
	case Success:
		return "SUCCESS"
	}
	return "UNKNOWN"
}

// Steps lists every step in flow order.
func Steps() []Step {
	return []Step{PhoneEntry, OtpEntry, Success}
}
