// Package api содержит HTTP API дашборда.
//
// Структура:
//   - handler.go      — Handler с DI (хранилища, publisher, logger, метрики)
//   - store.go        — интерфейсы хранилищ, которые реализует пакет repo
//   - routes.go       — регистрация маршрутов
//   - middleware.go   — middleware (logging, recovery, metrics, CORS)
//   - response.go     — JSON-ответы и ошибки в формате {"detail": ...}
//   - validate.go     — декодирование и валидация тела запроса (422)
//   - resource.go     — общие list/get/create/update для ресурсов
//   - dto.go          — ответы, которых нет в domain
//   - *_handler.go    — обработчики ресурсных групп
//
// Политика ошибок:
//   - list: ошибка хранилища логируется, клиент получает [] и 200
//   - get/create/update: 404 для отсутствующей записи, 400 с текстом ошибки хранилища
//   - тело запроса не прошло валидацию: 422
//   - stats и health всегда отвечают 200
package api
