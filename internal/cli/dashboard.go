package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// NewStatsCmd создаёт команду сводки дашборда.
func NewStatsCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := clientFn().Stats()
			if err != nil {
				return err
			}

			outputFn().Details([][2]string{
				{"Clients", strconv.FormatInt(stats.Clients, 10)},
				{"Projects", strconv.FormatInt(stats.Projects, 10)},
				{"Servers", strconv.FormatInt(stats.Servers, 10)},
				{"Health", strconv.Itoa(stats.Health) + "%"},
			}, stats)
			return nil
		},
	}
}

// NewGenerateCmd создаёт команду генерации инфраструктурного кода.
func NewGenerateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var context string

	cmd := &cobra.Command{
		Use:   "generate PROMPT...",
		Short: "Generate Docker, Terraform or Nginx config",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			resp, err := clientFn().Generate(GenerateRequest{
				Prompt:  strings.Join(args, " "),
				Context: context,
			})
			if err != nil {
				return err
			}

			out.Success(resp.Explanation)
			out.Text(strings.TrimSpace(resp.Code), resp)
			return nil
		},
	}

	cmd.Flags().StringVar(&context, "context", "", "Additional context for the request")

	return cmd
}

// NewHealthCmd создаёт команду проверки состояния API.
func NewHealthCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API and database health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			resp, err := clientFn().Health()
			if err != nil {
				return err
			}

			if resp.Error != "" {
				out.Error(resp.Error)
			}
			out.Details([][2]string{
				{"Status", resp.Status},
				{"Message", resp.Message},
				{"Database", resp.Database},
			}, resp)
			return nil
		},
	}
}
