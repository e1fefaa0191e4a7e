package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

// secretView не показывает значения в таблице; --json выводит запись целиком.
var secretView = view[domain.Secret]{
	headers: []string{"ID", "KEY", "ENVIRONMENT", "VALUE", "LAST_UPDATED"},
	row: func(s domain.Secret) []string {
		updated := "-"
		if s.LastUpdated != nil {
			updated = s.LastUpdated.Format("2006-01-02 15:04:05")
		}
		return []string{s.ID.String(), s.Key, s.Environment, mask(s.Value), updated}
	},
}

// NewSecretCmd создаёт группу команд для управления секретами.
func NewSecretCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage vault secrets",
	}

	cmd.AddCommand(
		newListCmd("List all secrets", (*Client).ListSecrets, secretView, clientFn, outputFn),
		newSecretCreateCmd(clientFn, outputFn),
		newShowCmd("secret", (*Client).GetSecret, secretView, clientFn, outputFn),
		newSecretRotateCmd(clientFn, outputFn),
	)

	return cmd
}

func newSecretCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.SecretCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			secret, err := clientFn().CreateSecret(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Secret created: %s", secret.ID))
			secretView.print(out, secret)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Key, "key", "", "Secret key (required)")
	cmd.Flags().StringVar(&req.Value, "value", "", "Secret value (required)")
	cmd.Flags().StringVar(&req.Environment, "environment", "", "Environment name (required)")
	cmd.MarkFlagRequired("key")
	cmd.MarkFlagRequired("value")
	cmd.MarkFlagRequired("environment")

	return cmd
}

func newSecretRotateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate ID VALUE",
		Short: "Replace a secret value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			secret, err := clientFn().RotateSecret(args[0], args[1])
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Secret rotated: %s", secret.Key))
			secretView.print(out, secret)
			return nil
		},
	}
}

// mask оставляет видимыми последние 4 символа.
func mask(value string) string {
	const visible = 4
	if len(value) <= visible {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-visible) + value[len(value)-visible:]
}
