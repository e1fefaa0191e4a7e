package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// view описывает табличное представление записи.
type view[T any] struct {
	headers []string
	row     func(T) []string
}

func (v view[T]) rows(items []T) [][]string {
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = v.row(item)
	}
	return rows
}

func (v view[T]) print(out *Output, item *T) {
	out.Print(v.headers, [][]string{v.row(*item)}, item)
}

// newListCmd создаёт команду list для ресурса.
func newListCmd[T any](short string, list func(*Client) ([]T, error), v view[T], clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := list(clientFn())
			if err != nil {
				return err
			}

			outputFn().Print(v.headers, v.rows(items), items)
			return nil
		},
	}
}

// newShowCmd создаёт команду show ID для ресурса.
func newShowCmd[T any](entity string, get func(*Client, string) (*T, error), v view[T], clientFn func() *Client, outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: fmt.Sprintf("Show %s details", entity),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := get(clientFn(), args[0])
			if err != nil {
				if IsNotFound(err) {
					return fmt.Errorf("%s %s not found", entity, args[0])
				}
				return err
			}

			v.print(outputFn(), item)
			return nil
		},
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
