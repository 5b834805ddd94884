package flow

import (
	"strings"
	"unicode/utf8"
)

const (
	// PhoneLength is the number of digits a mobile number must have.
	PhoneLength = 10
	// OtpLength is the number of one-digit slots in the passcode.
	OtpLength = 4
)

// State is the complete login flow record. Transition methods never modify
// the receiver; they return the next state or an error with the receiver
// left as it was.
type State struct {
	Step        Step
	PhoneNumber string
	OtpDigits   [OtpLength]string
	Busy        bool
}

// FocusAdvance asks the presentation layer to move input focus to Slot.
type FocusAdvance struct {
	Slot int
}

// NewState returns the state a flow starts in.
func NewState() State {
	return State{Step: PhoneEntry}
}

// Otp returns the concatenation of all OTP slots.
func (s State) Otp() string {
	return strings.Join(s.OtpDigits[:], "")
}

// SanitizePhone strips every non-digit character from raw and truncates the
// result to PhoneLength digits.
func SanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == PhoneLength {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SetPhoneNumber stores the sanitized form of raw. The number is frozen
// while a submission for it is pending.
func (s State) SetPhoneNumber(raw string) (State, error) {
	if s.Step != PhoneEntry {
		return s, ErrWrongStep
	}
	if s.Busy {
		return s, ErrBusy
	}
	s.PhoneNumber = SanitizePhone(raw)
	return s, nil
}

// BeginPhoneSubmit validates the number and marks the flow busy.
func (s State) BeginPhoneSubmit() (State, error) {
	if s.Step != PhoneEntry {
		return s, ErrWrongStep
	}
	if s.Busy {
		return s, ErrBusy
	}
	if len(s.PhoneNumber) < PhoneLength {
		return s, ErrInvalidPhoneNumber
	}
	s.Busy = true
	return s, nil
}

// CompletePhoneSubmit ends a successful phone submission.
func (s State) CompletePhoneSubmit() (State, error) {
	if s.Step != PhoneEntry {
		return s, ErrWrongStep
	}
	s.Busy = false
	s.Step = OtpEntry
	return s, nil
}

// ChangeNumber returns to PhoneEntry. The number and the digits entered so
// far are kept so the user can edit them.
func (s State) ChangeNumber() (State, error) {
	if s.Step != OtpEntry {
		return s, ErrWrongStep
	}
	s.Busy = false
	s.Step = PhoneEntry
	return s, nil
}

// SetOtpDigit stores value in slot index. A non-nil FocusAdvance is returned
// when a digit was entered and a following slot exists.
func (s State) SetOtpDigit(index int, value string) (State, *FocusAdvance, error) {
	if s.Step != OtpEntry {
		return s, nil, ErrWrongStep
	}
	if index < 0 || index >= OtpLength {
		return s, nil, ErrSlotOutOfRange
	}
	if !validDigit(value) {
		return s, nil, ErrNonNumericDigit
	}
	s.OtpDigits[index] = value
	if value != "" && index < OtpLength-1 {
		return s, &FocusAdvance{Slot: index + 1}, nil
	}
	return s, nil, nil
}

// BeginVerify checks that every slot is filled and marks the flow busy.
func (s State) BeginVerify() (State, error) {
	if s.Step != OtpEntry {
		return s, ErrWrongStep
	}
	if s.Busy {
		return s, ErrBusy
	}
	if utf8.RuneCountInString(s.Otp()) < OtpLength {
		return s, ErrIncompleteOtp
	}
	s.Busy = true
	return s, nil
}

// CompleteVerify ends a successful verification.
func (s State) CompleteVerify() (State, error) {
	if s.Step != OtpEntry {
		return s, ErrWrongStep
	}
	s.Busy = false
	s.Step = Success
	return s, nil
}

// BeginResend marks the flow busy while a new code is requested.
func (s State) BeginResend() (State, error) {
	if s.Step != OtpEntry {
		return s, ErrWrongStep
	}
	if s.Busy {
		return s, ErrBusy
	}
	s.Busy = true
	return s, nil
}

// Settle clears Busy without moving the flow.
func (s State) Settle() State {
	s.Busy = false
	return s
}

func validDigit(v string) bool {
	if v == "" {
		return true
	}
	return len(v) == 1 && v[0] >= '0' && v[0] <= '9'
}
