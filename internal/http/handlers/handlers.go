// Package handlers содержит HTTP-обработчики шлюза: аутентификация,
// проксирование каталога Marvel, избранные комиксы и health-проверки.
//
// Обработчики не содержат бизнес-логики: разбор запроса, вызов сервисного
// слоя и запись единого JSON-конверта через пакет response.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"comics-gateway/internal/marvel"
	"comics-gateway/internal/service"
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	service *service.Service
	catalog *marvel.Client

	started time.Time
}

func New(svc *service.Service, catalog *marvel.Client) *Handlers {
	return &Handlers{
		service: svc,
		catalog: catalog,
		started: time.Now(),
	}
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
