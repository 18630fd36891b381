package bot

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/ports/errcode"
	reportsvc "github.com/NastyaGoryachaya/crypto-price-history/internal/service/report"
)

// fromReaderError — сводит ошибку читателя отчётов к коду
func fromReaderError(err error) errcode.Code {
	switch {
	case errors.Is(err, reportsvc.ErrAssetNotFound):
		return errcode.NotFoundAsset
	case errors.Is(err, reportsvc.ErrInvalidPeriod):
		return errcode.InvalidPeriod
	default:
		return errcode.Internal
	}
}

// translateBotError — человекочитаемый текст для кода ошибки
func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.NotFoundAsset:
		return "Такой монеты нет. Список монет: /coins"
	case errcode.InvalidPeriod:
		return "Не понял даты. Пример: /report btc 2024-01-01 2024-02-01"
	default:
		return "Что-то пошло не так, попробуй позже"
	}
}
