package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var clientView = view[domain.Client]{
	headers: []string{"ID", "NAME", "STATUS", "PROJECTS", "ENVIRONMENTS"},
	row: func(c domain.Client) []string {
		return []string{c.ID.String(), c.Name, c.Status, strconv.Itoa(len(c.Projects)), strconv.Itoa(c.EnvironmentCount)}
	},
}

// NewClientCmd создаёт группу команд для управления клиентами.
func NewClientCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newListCmd("List all clients", (*Client).ListClients, clientView, clientFn, outputFn),
		newClientCreateCmd(clientFn, outputFn),
		newShowCmd("client", (*Client).GetClient, clientView, clientFn, outputFn),
	)

	return cmd
}

func newClientCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.ClientCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			client, err := clientFn().CreateClient(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Client created: %s", client.ID))
			clientView.print(out, client)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Client name (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&req.Status, "status", "", "Status (default active)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("description")

	return cmd
}
