package cli

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/command"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change profile and global configuration",
	}
	cmd.AddCommand(newSettingsShowCommand(rootOpts))
	cmd.AddCommand(newSettingsSetCommand(rootOpts))
	return cmd
}

func newSettingsShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current profile and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			state := s.handler.Store().Snapshot()
			payload := map[string]any{
				"profile":  state.Profile,
				"settings": state.Settings,
				"theme":    state.Theme,
			}
			var b strings.Builder
			fmt.Fprintf(&b, "Company:             %s\n", state.Profile.CompanyName)
			fmt.Fprintf(&b, "Currency:            %s\n", state.Settings.Currency)
			fmt.Fprintf(&b, "Low Stock Threshold: %d\n", state.Settings.LowStockThreshold)
			fmt.Fprintf(&b, "Theme:               %s", state.Theme)
			return out.SuccessText(b.String(), payload)
		},
	}
}

func newSettingsSetCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		company     string
		imagePath   string
		currency    string
		threshold   string
		newPassword string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save profile and configuration settings",
		Long: `Save all settings at once, like the settings screen does.

Omitted flags keep their current values. --image reads an image file and
stores it inline as a data URI. --new-password rotates the master
password.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			state := s.handler.Store().Snapshot()
			in := command.SettingsInput{
				CompanyName:  state.Profile.CompanyName,
				ProfileImage: state.Profile.ProfileImage,
				Currency:     state.Settings.Currency,
				Threshold:    fmt.Sprintf("%d", state.Settings.LowStockThreshold),
				NewPassword:  newPassword,
			}
			if cmd.Flags().Changed("company") {
				in.CompanyName = company
			}
			if cmd.Flags().Changed("currency") {
				in.Currency = currency
			}
			if cmd.Flags().Changed("threshold") {
				in.Threshold = threshold
			}
			if cmd.Flags().Changed("image") {
				uri, err := imageDataURI(imagePath)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to read image", err)
				}
				in.ProfileImage = uri
			}

			if err := s.handler.SaveSettings(cmd.Context(), in); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("settings saved", s.handler.Store().Snapshot().Settings)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to profile image")
	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol")
	cmd.Flags().StringVar(&threshold, "threshold", "", "low stock alert threshold")
	cmd.Flags().StringVar(&newPassword, "new-password", "", "rotate the master password")
	return cmd
}

// imageDataURI inlines an image file as a data URI, the storage form the
// profile uses.
func imageDataURI(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mime := "image/png"
	if strings.HasSuffix(strings.ToLower(path), ".jpg") || strings.HasSuffix(strings.ToLower(path), ".jpeg") {
		mime = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
