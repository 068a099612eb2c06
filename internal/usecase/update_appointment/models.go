package update_appointment

import "time"

// Request модель запроса на обновление встречи
// Обновление моделируется как пересоздание под тем же идентификатором:
// все поля задаются заново, прежняя версия встречи при проверке
// пересечений игнорируется
type Request struct {
	ID              int64     // ID обновляемой встречи
	UserID          int64     // ID пользователя, выполняющего обновление
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

// Response модель ответа с обновленной встречей
type Response struct {
	ID              int64     // ID встречи
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
