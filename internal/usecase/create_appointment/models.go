package create_appointment

import "time"

// Request модель запроса на создание встречи
// Дата и время начала заданы по стенным часам клиента в его таймзоне
type Request struct {
	UserID          int64     // ID пользователя, создающего встречу
	Title           string    // Название встречи
	Description     string    // Описание
	Location        string    // Место проведения
	Type            string    // Тип встречи
	CustomerID      int64     // ID клиента
	ContactID       int64     // ID контакта
	Date            time.Time // Календарная дата встречи (без времени)
	Hour            int       // Час начала по локальному времени клиента
	Minute          int       // Минута начала
	DurationMinutes int       // Длительность в минутах
	Timezone        string    // IANA таймзона клиента
}

// Response модель ответа с созданной встречей
type Response struct {
	ID              int64     // ID созданной встречи
	Title           string    // Название
	Description     string    // Описание
	Location        string    // Место проведения
	Type            string    // Тип встречи
	CustomerID      int64     // ID клиента
	ContactID       int64     // ID контакта
	UserID          int64     // ID пользователя
	Start           time.Time // Начало (UTC)
	End             time.Time // Конец (UTC)
	DurationMinutes int       // Длительность в минутах

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
