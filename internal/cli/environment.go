package cli

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var environmentView = view[domain.Environment]{
	headers: []string{"ID", "NAME", "PROJECT", "STATUS", "VERSION", "URL", "SERVERS"},
	row: func(e domain.Environment) []string {
		return []string{
			e.ID.String(),
			e.Name,
			e.ProjectID.String(),
			orDash(e.Status),
			orDash(e.Version),
			orDash(e.URL),
			strconv.Itoa(len(e.Servers)),
		}
	},
}

// NewEnvironmentCmd создаёт группу команд для управления окружениями.
func NewEnvironmentCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "environment",
		Aliases: []string{"env"},
		Short:   "Manage environments",
	}

	cmd.AddCommand(
		newListCmd("List all environments", (*Client).ListEnvironments, environmentView, clientFn, outputFn),
		newEnvironmentCreateCmd(clientFn, outputFn),
		newShowCmd("environment", (*Client).GetEnvironment, environmentView, clientFn, outputFn),
	)

	return cmd
}

func newEnvironmentCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.EnvironmentCreate
	var projectID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			id, err := uuid.Parse(projectID)
			if err != nil {
				return fmt.Errorf("invalid value for --project: %s", projectID)
			}
			req.ProjectID = id

			env, err := clientFn().CreateEnvironment(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Environment created: %s", env.ID))
			environmentView.print(out, env)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Environment name (required)")
	cmd.Flags().StringVar(&projectID, "project", "", "Project ID (required)")
	cmd.Flags().StringVar(&req.URL, "url", "", "Environment URL (required)")
	cmd.Flags().StringVar(&req.Version, "version", "", "Deployed version (required)")
	cmd.Flags().StringVar(&req.Resources.CPU, "cpu", "", "Allocated CPU (required)")
	cmd.Flags().StringVar(&req.Resources.Memory, "memory", "", "Allocated memory (required)")
	cmd.Flags().StringVar(&req.Resources.Storage, "storage", "", "Allocated storage (required)")
	for _, name := range []string{"name", "project", "url", "version", "cpu", "memory", "storage"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}
