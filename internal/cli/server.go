package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var serverView = view[domain.Server]{
	headers: []string{"ID", "NAME", "TYPE", "STATUS", "REGION", "PRIVATE_IP"},
	row: func(s domain.Server) []string {
		return []string{s.ID.String(), s.Name, s.Type, string(s.Status), s.Region, orDash(s.PrivateIP)}
	},
}

// NewServerCmd создаёт группу команд для управления серверами.
func NewServerCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Manage servers",
	}

	cmd.AddCommand(
		newListCmd("List all servers", (*Client).ListServers, serverView, clientFn, outputFn),
		newServerCreateCmd(clientFn, outputFn),
		newShowCmd("server", (*Client).GetServer, serverView, clientFn, outputFn),
		newServerActionCmd(clientFn, outputFn),
	)

	return cmd
}

func newServerCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.ServerCreate
	var environmentID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			if environmentID != "" {
				id, err := uuid.Parse(environmentID)
				if err != nil {
					return fmt.Errorf("invalid value for --environment: %s", environmentID)
				}
				req.EnvironmentID = &id
			}

			server, err := clientFn().CreateServer(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Server created: %s", server.ID))
			serverView.print(out, server)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Server name (required)")
	cmd.Flags().StringVar(&req.Type, "type", "", "Server type, e.g. EC2 (required)")
	cmd.Flags().StringVar(&req.Region, "region", "", "Region (required)")
	cmd.Flags().StringVar(&req.PrivateIP, "private-ip", "", "Private IP (required)")
	cmd.Flags().StringVar(&environmentID, "environment", "", "Environment ID")
	for _, name := range []string{"name", "type", "region", "private-ip"} {
		cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newServerActionCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:       "action ID start|stop|reboot",
		Short:     "Start, stop or reboot a server",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"start", "stop", "reboot"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			action, ok := domain.ParseServerAction(args[1])
			if !ok {
				return fmt.Errorf("unknown action %q, expected start, stop or reboot", args[1])
			}

			server, err := clientFn().ServerAction(args[0], action)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Server %s: %s", server.ID, server.Status))
			serverView.print(out, server)
			return nil
		},
	}
}
