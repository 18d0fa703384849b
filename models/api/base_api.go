package apimodels

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

var validate = validator.New()

// ValidateStruct проверка по тегам validate, ошибки собираются в одно сообщение
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return errors.New(strings.Join(messages, "; "))
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("не указано поле %v", fieldErr.Field())
	case "max":
		return fmt.Sprintf("поле %v превышает допустимую длину %v", fieldErr.Field(), fieldErr.Param())
	case "gte", "lte", "min":
		return fmt.Sprintf("поле %v вне допустимого диапазона", fieldErr.Field())
	case "uuid":
		return fmt.Sprintf("поле %v должно быть идентификатором", fieldErr.Field())
	}
	return fmt.Sprintf("некорректное значение поля %v", fieldErr.Field())
}
