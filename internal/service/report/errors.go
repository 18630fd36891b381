package report

import "errors"

var (
	// ErrAssetNotFound — монеты с таким символом нет; единственная жёсткая ошибка отчёта
	ErrAssetNotFound = errors.New("asset not found")
	// ErrInvalidPeriod — границу периода не удалось разобрать как дату
	ErrInvalidPeriod = errors.New("invalid period bound")
)
