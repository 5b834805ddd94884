package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/logging"
)

// DefaultRedirectDelay is how long the success screen stays up before the program exits.
const DefaultRedirectDelay = 1500 * time.Millisecond

// ErrCancelled is reported by LoginModel.Err when the user quits before logging in.
var ErrCancelled = errors.New("login cancelled")

// Options configures a LoginModel.
type Options struct {
	Brand         Brand
	CountryCode   string
	Version       string
	RedirectDelay time.Duration
	Logger        logging.Logger
}

// LoginModel is the top-level bubbletea model. The flow.Controller decides
// which step is active; LoginModel routes input to that step's Screen and
// carries submissions out against the controller.
type LoginModel struct {
	ctx     context.Context
	styles  *StyleSet
	ctrl    *flow.Controller
	screens map[flow.Step]Screen
	opts    Options

	alert  string
	notice string
	width  int
	height int
	done   bool
	err    error
}

// NewLoginModel creates the model. ctx bounds every backend request and
// should be cancelled when the program exits.
func NewLoginModel(ctx context.Context, styles *StyleSet, ctrl *flow.Controller, screens map[flow.Step]Screen, opts Options) LoginModel {
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = DefaultRedirectDelay
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return LoginModel{
		ctx:     ctx,
		styles:  styles,
		ctrl:    ctrl,
		screens: screens,
		opts:    opts,
		width:   80,
		height:  24,
	}
}

// Init activates the screen for the controller's current step.
func (m LoginModel) Init() tea.Cmd {
	return m.enter()
}

func (m LoginModel) current() Screen {
	return m.screens[m.ctrl.State().Step]
}

// enter prepares the active screen after a step change.
func (m LoginModel) enter() tea.Cmd {
	screen := m.current()
	if screen == nil {
		return nil
	}
	cmds := []tea.Cmd{screen.Sync(m.ctrl.State()), screen.Init()}
	if m.ctrl.State().Step == flow.Success {
		cmds = append(cmds, tea.Tick(m.opts.RedirectDelay, func(time.Time) tea.Msg { return RedirectMsg{} }))
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the login flow.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			// Success is terminal; quitting early only skips the redirect delay.
			if m.ctrl.State().Step == flow.Success {
				m.done = true
				return m, tea.Quit
			}
			m.err = ErrCancelled
			m.opts.Logger.Info("login cancelled", map[string]any{
				"flow_id": m.ctrl.ID(),
				"step":    m.ctrl.State().Step.String(),
			})
			return m, tea.Quit
		}
		m.alert = ""
		m.notice = ""

	case ActionMsg:
		return m.handleAction(msg.Action)

	case ResultMsg:
		return m.handleResult(msg.Result)

	case RedirectMsg:
		m.done = true
		return m, tea.Quit
	}

	step := m.ctrl.State().Step
	if screen := m.screens[step]; screen != nil {
		updated, cmd := screen.Update(msg)
		m.screens[step] = updated
		return m, cmd
	}
	return m, nil
}

func (m LoginModel) handleAction(action Action) (tea.Model, tea.Cmd) {
	var (
		req *flow.Request
		err error
	)
	switch action {
	case ActionSendCode:
		req, err = m.ctrl.SubmitPhone(m.ctx)
	case ActionVerify:
		req, err = m.ctrl.VerifyOtp(m.ctx)
	case ActionResend:
		req, err = m.ctrl.ResendOtp(m.ctx)
	case ActionChangeNumber:
		if err := m.ctrl.ChangeNumber(); err != nil {
			return m, nil
		}
		m.alert = ""
		return m, m.enter()
	default:
		return m, nil
	}

	if err != nil {
		if flow.IsValidation(err) {
			m.alert = flow.AlertMessage(err)
		}
		// Busy and wrong-step rejections are the disabled-button case: nothing to report.
		return m, nil
	}

	return m, tea.Batch(m.current().Sync(m.ctrl.State()), awaitResult(m.ctx, req))
}

func (m LoginModel) handleResult(res flow.Result) (tea.Model, tea.Cmd) {
	before := m.ctrl.State().Step
	err := m.ctrl.Finish(res)
	if errors.Is(err, flow.ErrStaleResult) {
		return m, nil
	}
	if err != nil {
		m.alert = flow.AlertMessage(err)
		return m, m.current().Sync(m.ctrl.State())
	}

	if m.ctrl.State().Step != before {
		return m, m.enter()
	}
	if res.Call == flow.CallResendCode {
		m.notice = "A new code was sent to " + m.opts.CountryCode + " " + m.ctrl.State().PhoneNumber
	}
	return m, m.current().Sync(m.ctrl.State())
}

func awaitResult(ctx context.Context, req *flow.Request) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Result: req.Wait(ctx)}
	}
}

// View renders the entire login UI.
func (m LoginModel) View() string {
	var out string

	out += "\n" + RenderBanner(m.styles, m.opts.Brand, m.opts.Version, m.width)

	state := m.ctrl.State()
	out += RenderProgress(flow.Steps(), m.screens, state.Step, m.styles, m.width)
	out += "\n"

	if screen := m.current(); screen != nil {
		out += screen.View(m.width)
	}

	if m.alert != "" {
		out += "\n  " + m.styles.ErrorTxt.Render("✗ "+m.alert) + "\n"
	}
	if m.notice != "" {
		out += "\n  " + m.styles.SuccessTxt.Render("✓ "+m.notice) + "\n"
	}
	out += "\n"

	return out
}

// State returns the controller's current state.
func (m LoginModel) State() flow.State {
	return m.ctrl.State()
}

// SessionID returns the session issued on success.
func (m LoginModel) SessionID() string {
	return m.ctrl.SessionID()
}

// Alert returns the validation message currently shown, if any.
func (m LoginModel) Alert() string {
	return m.alert
}

// Err returns ErrCancelled when the user quit before logging in.
func (m LoginModel) Err() error {
	return m.err
}

// Done returns true once the flow reached Success and the redirect fired.
func (m LoginModel) Done() bool {
	return m.done
}
