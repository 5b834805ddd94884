package flow

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/logging"
)

// Call identifies the backend operation behind a Request.
type Call int

const (
	CallSendCode Call = iota
	CallVerifyCode
	CallResendCode
)

func (c Call) String() string {
	switch c {
	case CallSendCode:
		return "send_code"
	case CallVerifyCode:
		return "verify_code"
	case CallResendCode:
		return "resend_code"
	}
	return "unknown"
}

// Request is a submission waiting on the backend.
type Request struct {
	ID   string
	Call Call

	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
	result Result
}

// Result is the outcome of a Request, handed back to Controller.Finish.
type Result struct {
	RequestID string
	Call      Call
	SessionID string
	Err       error

	gen uint64
}

// Wait blocks until the backend answers or ctx is done.
func (r *Request) Wait(ctx context.Context) Result {
	select {
	case <-r.done:
		return r.result
	case <-ctx.Done():
		return Result{RequestID: r.ID, Call: r.Call, Err: ctx.Err(), gen: r.gen}
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transitions and failures.
func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// Controller owns a login flow's State and drives it through the backend.
// It is not safe for concurrent use; call it from a single goroutine (for
// instance a bubbletea Update loop) and hand Request results back via Finish.
type Controller struct {
	id      string
	state   State
	backend Backend
	logger  logging.Logger

	gen       uint64
	pending   *Request
	sessionID string
}

// NewController creates a flow in its initial state.
func NewController(backend Backend, opts ...Option) *Controller {
	c := &Controller{
		id:      uuid.NewString(),
		state:   NewState(),
		backend: backend,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the flow instance identifier used in logs.
func (c *Controller) ID() string { return c.id }

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// SessionID returns the session issued by a successful verification.
func (c *Controller) SessionID() string { return c.sessionID }

// SetPhoneNumber stores raw with non-digits stripped.
func (c *Controller) SetPhoneNumber(raw string) error {
	next, err := c.state.SetPhoneNumber(raw)
	if err != nil {
		return err
	}
	c.state = next
	return nil
}

// SubmitPhone validates the number and starts sending the code.
func (c *Controller) SubmitPhone(ctx context.Context) (*Request, error) {
	next, err := c.state.BeginPhoneSubmit()
	if err != nil {
		c.reject(CallSendCode, err)
		return nil, err
	}
	c.state = next
	phone := next.PhoneNumber
	return c.start(ctx, CallSendCode, func(ctx context.Context) (string, error) {
		return "", c.backend.SendCode(ctx, phone)
	}), nil
}

// ChangeNumber goes back to PhoneEntry. A verification still in flight is
// cancelled and its result will be reported stale.
func (c *Controller) ChangeNumber() error {
	next, err := c.state.ChangeNumber()
	if err != nil {
		return err
	}
	c.abandon()
	c.transition(next)
	return nil
}

// SetOtpDigit stores value in slot index.
func (c *Controller) SetOtpDigit(index int, value string) (*FocusAdvance, error) {
	next, advance, err := c.state.SetOtpDigit(index, value)
	if err != nil {
		return nil, err
	}
	c.state = next
	c.logger.Debug("otp digit set", map[string]any{"flow_id": c.id, "slot": index, "filled": value != ""})
	return advance, nil
}

// VerifyOtp checks that the code is complete and starts verifying it.
func (c *Controller) VerifyOtp(ctx context.Context) (*Request, error) {
	next, err := c.state.BeginVerify()
	if err != nil {
		c.reject(CallVerifyCode, err)
		return nil, err
	}
	c.state = next
	phone, code := next.PhoneNumber, next.Otp()
	return c.start(ctx, CallVerifyCode, func(ctx context.Context) (string, error) {
		return c.backend.VerifyCode(ctx, phone, code)
	}), nil
}

// ResendOtp asks the backend for a fresh code without leaving OtpEntry.
func (c *Controller) ResendOtp(ctx context.Context) (*Request, error) {
	next, err := c.state.BeginResend()
	if err != nil {
		return nil, err
	}
	c.state = next
	phone := next.PhoneNumber
	return c.start(ctx, CallResendCode, func(ctx context.Context) (string, error) {
		return "", c.backend.SendCode(ctx, phone)
	}), nil
}

// Finish applies the outcome of a request. Results for requests that were
// abandoned return ErrStaleResult and change nothing. Backend failures clear
// Busy, keep the current step and are returned wrapped in ErrSendFailed or
// ErrVerifyFailed.
func (c *Controller) Finish(res Result) error {
	if c.pending == nil || res.gen != c.gen {
		c.logger.Debug("stale result dropped", map[string]any{"flow_id": c.id, "request_id": res.RequestID})
		return ErrStaleResult
	}
	c.pending = nil

	if res.Err != nil {
		c.state = c.state.Settle()
		kind := ErrSendFailed
		if res.Call == CallVerifyCode {
			kind = ErrVerifyFailed
		}
		c.logger.Error("submission failed", map[string]any{
			"flow_id":    c.id,
			"request_id": res.RequestID,
			"call":       res.Call.String(),
			"error":      res.Err.Error(),
		})
		return fmt.Errorf("%w: %w", kind, res.Err)
	}

	var (
		next State
		err  error
	)
	switch res.Call {
	case CallSendCode:
		next, err = c.state.CompletePhoneSubmit()
	case CallVerifyCode:
		next, err = c.state.CompleteVerify()
	default:
		next = c.state.Settle()
	}
	if err != nil {
		return err
	}
	if res.Call == CallVerifyCode {
		c.sessionID = res.SessionID
	}
	c.transition(next)
	return nil
}

// Run waits for req and applies its result.
func (c *Controller) Run(ctx context.Context, req *Request) error {
	return c.Finish(req.Wait(ctx))
}

func (c *Controller) start(ctx context.Context, call Call, fn func(context.Context) (string, error)) *Request {
	c.gen++
	rctx, cancel := context.WithCancel(ctx)
	req := &Request{
		ID:     uuid.NewString(),
		Call:   call,
		gen:    c.gen,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	c.pending = req

	c.logger.Info("submission started", map[string]any{
		"flow_id":    c.id,
		"request_id": req.ID,
		"call":       call.String(),
		"phone":      MaskPhone(c.state.PhoneNumber),
	})

	go func() {
		defer cancel()
		session, err := fn(rctx)
		req.result = Result{RequestID: req.ID, Call: call, SessionID: session, Err: err, gen: req.gen}
		close(req.done)
	}()
	return req
}

func (c *Controller) abandon() {
	if c.pending == nil {
		return
	}
	c.pending.cancel()
	c.logger.Info("submission abandoned", map[string]any{"flow_id": c.id, "request_id": c.pending.ID})
	c.pending = nil
	c.gen++
}

func (c *Controller) transition(next State) {
	if next.Step != c.state.Step {
		c.logger.Info("step changed", map[string]any{
			"flow_id": c.id,
			"from":    c.state.Step.String(),
			"to":      next.Step.String(),
		})
	}
	c.state = next
}

func (c *Controller) reject(call Call, err error) {
	if !IsValidation(err) {
		return
	}
	c.logger.Warn("validation failed", map[string]any{
		"flow_id": c.id,
		"call":    call.String(),
		"error":   err.Error(),
	})
}

// MaskPhone hides all but the last four digits of phone.
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := make([]byte, len(phone))
	for i := range phone {
		if i < len(phone)-4 {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}
	return string(masked)
}
