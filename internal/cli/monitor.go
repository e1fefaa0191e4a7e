package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var monitorView = view[domain.Monitor]{
	headers: []string{"ID", "NAME", "URL", "STATUS", "UPTIME", "RESPONSE_MS", "INCIDENTS"},
	row: func(m domain.Monitor) []string {
		return []string{
			m.ID.String(),
			m.Name,
			m.URL,
			orDash(m.Status),
			strconv.FormatFloat(m.Uptime, 'f', 2, 64) + "%",
			strconv.FormatFloat(m.ResponseTime, 'f', 0, 64),
			strconv.Itoa(m.Incidents),
		}
	},
}

// NewMonitorCmd создаёт группу команд для управления мониторами.
func NewMonitorCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Manage uptime monitors",
	}

	cmd.AddCommand(
		newListCmd("List all monitors", (*Client).ListMonitors, monitorView, clientFn, outputFn),
		newMonitorCreateCmd(clientFn, outputFn),
		newShowCmd("monitor", (*Client).GetMonitor, monitorView, clientFn, outputFn),
	)

	return cmd
}

func newMonitorCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.MonitorCreate

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new monitor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			monitor, err := clientFn().CreateMonitor(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Monitor created: %s", monitor.ID))
			monitorView.print(out, monitor)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Monitor name (required)")
	cmd.Flags().StringVar(&req.URL, "url", "", "URL to check (required)")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("url")

	return cmd
}
