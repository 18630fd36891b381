package httptransport

import (
	"errors"

	"github.com/NastyaGoryachaya/crypto-price-history/internal/ports/errcode"
	reportsvc "github.com/NastyaGoryachaya/crypto-price-history/internal/service/report"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, reportsvc.ErrAssetNotFound):
		return errcode.NotFoundAsset
	case errors.Is(err, reportsvc.ErrInvalidPeriod):
		return errcode.InvalidPeriod
	default:
		return errcode.Internal
	}
}
