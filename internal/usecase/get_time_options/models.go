package get_time_options

import "time"

// Request модель запроса на получение опций времени
type Request struct {
	Timezone string    // IANA таймзона клиента
	Date     time.Time // Календарная дата, на которую планируется встреча
}

// Response модель ответа с опциями часов и минут для выбора времени начала
type Response struct {
	Date       time.Time    // Дата, на которую запрашивались опции
	Timezone   string       // Таймзона клиента
	Unscaled   bool         // Режим деградации: полный диапазон часов без ограничений минут
	LocalOpen  time.Time    // Открытие компании в таймзоне клиента
	LocalClose time.Time    // Закрытие компании в таймзоне клиента
	Hours      []HourOption // Доступные часы начала с наборами минут
}

// HourOption час начала и допустимые минуты внутри него
type HourOption struct {
	Hour    int      // Час дня (0-23)
	Minutes []string // Минуты в виде строк с ведущим нулем ("00".."59")
}
