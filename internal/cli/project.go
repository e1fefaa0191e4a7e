package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/domain"
)

var projectView = view[domain.Project]{
	headers: []string{"ID", "NAME", "CLIENT", "STATUS", "PROGRESS", "TECHNOLOGY"},
	row: func(p domain.Project) []string {
		return []string{
			p.ID.String(),
			p.Name,
			p.ClientID.String(),
			orDash(p.Status),
			strconv.Itoa(p.Progress) + "%",
			orDash(strings.Join(p.Technology, ",")),
		}
	},
}

// NewProjectCmd создаёт группу команд для управления проектами.
func NewProjectCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newListCmd("List all projects", (*Client).ListProjects, projectView, clientFn, outputFn),
		newProjectCreateCmd(clientFn, outputFn),
		newShowCmd("project", (*Client).GetProject, projectView, clientFn, outputFn),
	)

	return cmd
}

func newProjectCreateCmd(clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	var req domain.ProjectCreate
	var clientID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := outputFn()

			id, err := uuid.Parse(clientID)
			if err != nil {
				return fmt.Errorf("invalid value for --client: %s", clientID)
			}
			req.ClientID = id

			project, err := clientFn().CreateProject(req)
			if err != nil {
				return err
			}

			out.Success(fmt.Sprintf("Project created: %s", project.ID))
			projectView.print(out, project)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Project name (required)")
	cmd.Flags().StringVar(&clientID, "client", "", "Client ID (required)")
	cmd.Flags().StringVar(&req.Description, "description", "", "Description (required)")
	cmd.Flags().StringVar(&req.Repository, "repository", "", "Repository URL (required)")
	cmd.Flags().StringSliceVar(&req.Technology, "technology", nil, "Technologies, comma separated")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("client")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("repository")

	return cmd
}
