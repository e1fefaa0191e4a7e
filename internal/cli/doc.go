// Package cli реализует инструмент командной строки дашборда.
//
// # Обзор
//
// CLI — клиентская утилита для работы с API дашборда.
// Работает только через HTTP. Из внутренних пакетов импортирует лишь domain:
// это модель данных, которую API отдаёт как есть.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для API. Инкапсулирует запросы, разбор ответов и ошибок
// ({"detail": "..."} и список ошибок валидации для 422).
//
//	client := cli.NewClient("http://localhost:8080")
//	servers, err := client.ListServers()
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) — по умолчанию
//   - JSON — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: dashboard server list --json | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - client, project, environment, monitor: list, create, show
//   - server: list, create, show, action
//   - setting: list, create, show, set
//   - secret: list, create, show, rotate
//   - stats, generate, health
//
// Каждая группа создаётся через фабричную функцию (NewServerCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
