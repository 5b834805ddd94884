package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vishnuelayi/AgriIQ-Demo/internal/config"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/flow"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/logging"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui"
	"github.com/vishnuelayi/AgriIQ-Demo/internal/tui/screens"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with a mobile number and OTP",
	Long:  "Walk through the mobile number, one-time passcode and confirmation steps. Use --non-interactive with --phone and --otp for scripted runs.",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().Bool("non-interactive", false, "run without the TUI (requires --phone and --otp)")
	loginCmd.Flags().String("phone", "", "mobile number")
	loginCmd.Flags().String("otp", "", "one-time passcode")
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	ctrl := flow.NewController(flow.NewSimulatedBackend(cfg.Delay), flow.WithLogger(logger))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")
	if nonInteractive {
		phone, _ := cmd.Flags().GetString("phone")
		otp, _ := cmd.Flags().GetString("otp")
		return runHeadless(ctx, cmd.OutOrStdout(), ctrl, cfg.CountryCode, phone, otp)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("login needs an interactive terminal; use --non-interactive with --phone and --otp")
	}
	return runInteractive(ctx, cmd.OutOrStdout(), cfg, ctrl, logger)
}

func openLogger(lc config.LogConfig) (logging.Logger, func() error, error) {
	if lc.File == "" {
		return logging.Discard(), func() error { return nil }, nil
	}
	l, closeFn, err := logging.OpenFile(lc.File, lc.Verbose)
	if err != nil {
		return nil, nil, err
	}
	return l, closeFn, nil
}

func runInteractive(ctx context.Context, out io.Writer, cfg *config.Config, ctrl *flow.Controller, logger logging.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	styles := tui.NewStyleSet(tui.DetectTheme(cfg.Theme))
	model := tui.NewLoginModel(ctx, styles, ctrl, screens.All(styles, ctrl, cfg.CountryCode), tui.Options{
		Brand:       tui.Brand{Name: cfg.Brand.Name, Tagline: cfg.Brand.Tagline},
		CountryCode: cfg.CountryCode,
		Version:     appVersion,
		Logger:      logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running login: %w", err)
	}

	result, ok := final.(tui.LoginModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", final)
	}
	if err := result.Err(); err != nil {
		return err
	}
	if !result.Done() {
		return tui.ErrCancelled
	}

	fmt.Fprintf(out, "Logged in as %s %s (session %s)\n", cfg.CountryCode, result.State().PhoneNumber, result.SessionID())
	return nil
}

// runHeadless drives the same controller the TUI uses, printing each step.
func runHeadless(ctx context.Context, out io.Writer, ctrl *flow.Controller, countryCode, phone, otp string) error {
	if phone == "" || otp == "" {
		return fmt.Errorf("--non-interactive requires --phone and --otp")
	}

	if err := ctrl.SetPhoneNumber(phone); err != nil {
		return err
	}
	fmt.Fprintf(out, "Sending OTP to %s %s...\n", countryCode, ctrl.State().PhoneNumber)
	if err := submit(ctx, ctrl, ctrl.SubmitPhone); err != nil {
		return err
	}
	fmt.Fprintf(out, "Step: %s\n", ctrl.State().Step)

	runes := []rune(otp)
	if len(runes) > flow.OtpLength {
		return fmt.Errorf("otp has %d digits, want %d", len(runes), flow.OtpLength)
	}
	for i, r := range runes {
		if _, err := ctrl.SetOtpDigit(i, string(r)); err != nil {
			return fmt.Errorf("otp digit %d: %w", i+1, err)
		}
	}

	fmt.Fprintln(out, "Verifying code...")
	if err := submit(ctx, ctrl, ctrl.VerifyOtp); err != nil {
		return err
	}
	fmt.Fprintf(out, "Step: %s\n", ctrl.State().Step)
	fmt.Fprintf(out, "Login Successful! Session %s\n", ctrl.SessionID())
	return nil
}

func submit(ctx context.Context, ctrl *flow.Controller, start func(context.Context) (*flow.Request, error)) error {
	req, err := start(ctx)
	if err != nil {
		if flow.IsValidation(err) {
			return fmt.Errorf("%s: %w", flow.AlertMessage(err), err)
		}
		return err
	}
	if err := ctrl.Run(ctx, req); err != nil {
		if errors.Is(err, flow.ErrSendFailed) || errors.Is(err, flow.ErrVerifyFailed) {
			return fmt.Errorf("%s: %w", flow.AlertMessage(err), err)
		}
		return err
	}
	return nil
}
