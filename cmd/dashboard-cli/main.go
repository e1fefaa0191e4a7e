// Dashboard CLI — инструмент командной строки для управления
// клиентами, проектами, окружениями и инфраструктурой через HTTP API.
//
// Использование:
//
//	dashboard [--api-url URL] [--json] <command> <subcommand> [flags]
//
// Команды:
//
//	client       Управление клиентами
//	project      Управление проектами
//	environment  Управление окружениями
//	server       Управление серверами
//	monitor      Управление мониторами
//	setting      Управление настройками
//	secret       Управление секретами
//	stats        Сводка дашборда
//	generate     Генерация инфраструктурного кода
//	health       Проверка API
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "DragonOps dashboard CLI",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultURL := "http://localhost:8080"
	if v := os.Getenv("DASHBOARD_API_URL"); v != "" {
		defaultURL = v
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", defaultURL, "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *cli.Client { return cli.NewClient(apiURL) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewClientCmd(clientFn, outputFn),
		cli.NewProjectCmd(clientFn, outputFn),
		cli.NewEnvironmentCmd(clientFn, outputFn),
		cli.NewServerCmd(clientFn, outputFn),
		cli.NewMonitorCmd(clientFn, outputFn),
		cli.NewSettingCmd(clientFn, outputFn),
		cli.NewSecretCmd(clientFn, outputFn),
		cli.NewStatsCmd(clientFn, outputFn),
		cli.NewGenerateCmd(clientFn, outputFn),
		cli.NewHealthCmd(clientFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
