// Package mq публикует события об изменениях в RabbitMQ.
//
// Структура:
//   - connection.go — соединение с RabbitMQ и канал
//   - topology.go   — объявление exchange
//   - publisher.go  — публикация событий
//
// Все события уходят в topic exchange dragonops.events,
// routing key совпадает с типом события (server.action, client.created...).
//
// Публикация опциональна: без AMQP_URL API работает без publisher.
// Потребителей в этом сервисе нет.
package mq
