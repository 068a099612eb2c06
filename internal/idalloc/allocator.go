package idalloc

import (
	"context"
	"errors"
	"math"
)

// ErrExhausted возвращается, когда в пространстве положительных идентификаторов
// не осталось свободного значения. Фатально для одной попытки создания записи,
// но не для процесса.
var ErrExhausted = errors.New("idalloc: identifier space exhausted")

// ExistsFunc сообщает, занят ли идентификатор-кандидат в хранилище
type ExistsFunc func(ctx context.Context, id int64) (bool, error)

// Allocate возвращает наименьший свободный положительный идентификатор.
// Поиск начинается с max(currentCount, 1) и монотонно растет, пока exists
// не вернет false. Возвращаемый идентификатор никогда не равен 0.
// Ошибки exists (ошибки хранилища) возвращаются вызывающему без изменений.
func Allocate(ctx context.Context, currentCount int64, exists ExistsFunc) (int64, error) {
	id := currentCount
	if id < 1 {
		id = 1
	}

	// Кандидат проверяется до инкремента, чтобы math.MaxInt64 тоже был доступен
	for {
		taken, err := exists(ctx, id)
		if err != nil {
			return 0, err
		}
		if !taken {
			return id, nil
		}
		if id == math.MaxInt64 {
			return 0, ErrExhausted
		}
		id++
	}
}
