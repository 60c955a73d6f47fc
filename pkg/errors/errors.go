package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrConflict   = fmt.Errorf("запись с таким значением уже существует")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Целостность данных: внешний ключ указывает на несуществующую запись
	ErrForeignKeyViolation = fmt.Errorf("нарушение ссылочной целостности")

	// Пользователи
	ErrLoginTaken = fmt.Errorf("логин уже зарегистрирован")
)

// HttpError несёт HTTP-код, сообщение для клиента и внутреннюю ошибку для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}
