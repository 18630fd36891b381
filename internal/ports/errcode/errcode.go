package errcode

type Code string

const (
	NotFoundAsset Code = "NOT_FOUND_ASSET"

	InvalidPeriod Code = "INVALID_PERIOD"

	BadRequest Code = "BAD_REQUEST"
	Internal   Code = "INTERNAL_ERROR"
)
