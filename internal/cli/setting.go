package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var settingView = view[domain.Setting]{
	headers: []string{"ID", "KEY", "VALUE", "DESCRIPTION"},
	row: func(s domain.Setting) []string {
		return []string{s.ID.String(), s.Key, s.Value, orDash(s.Description)}
	},
}

// NewSettingCmd создаёт группу команд для управления настройками.
func NewSettingCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setting",
		Short: "Manage dashboard settings",
	}

	cmd.AddCommand(
		newListCmd("List all settings", (*Client).ListSettings, settingView, clientFn, outputFn),
		newSettingCreateCmd(clientFn, outputFn),
		newShowCmd("setting", (*Client).GetSetting, settingView, clientFn, outputFn),
		newSettingSetCmd(clientFn, outputFn),
	)

	return cmd
}

func newSettingCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.SettingCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			setting, err := clientFn().CreateSetting(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Setting created: %s", setting.ID))
			settingView.print(out, setting)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Key, "key", "", "Setting key (required)")
	cmd.Flags().StringVar(&req.Value, "value", "", "Setting value (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("value")

	return cmd
}

func newSettingSetCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "set ID VALUE",
		Short: "Change a setting value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			setting, err := clientFn().SetSetting(args[0], args[1])
			if err != nil {
				return err
			}

			out.Success("Setting updated")
			settingView.print(out, setting)
			return nil
		},
	}
}
