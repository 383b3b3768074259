package gacha

import (
	"errors"
	"fmt"
)

// ErrConfig is the umbrella for every construction-time failure. The
// sub-kind sentinels below wrap it, so callers can match either the broad
// class or the exact rule that failed:
//
//	errors.Is(err, gacha.ErrConfig)          // any bad config
//	errors.Is(err, gacha.ErrZeroWeightPool)  // this specific rule
var ErrConfig = errors.New("invalid gacha config")

var (
	ErrMissingTierRate = fmt.Errorf("%w: missing tier rate", ErrConfig)
	ErrInvalidTierRate = fmt.Errorf("%w: invalid tier rates", ErrConfig)
	ErrEmptyPool       = fmt.Errorf("%w: empty pool", ErrConfig)
	ErrNegativeWeight  = fmt.Errorf("%w: negative weight", ErrConfig)
	ErrZeroWeightPool  = fmt.Errorf("%w: zero-weight pool", ErrConfig)
	ErrProbSum         = fmt.Errorf("%w: probabilities do not sum to one", ErrConfig)
	ErrScaleOverflow   = fmt.Errorf("%w: value too large for safe scaling", ErrConfig)
	ErrDuplicateItem   = fmt.Errorf("%w: duplicate item name", ErrConfig)
)

// Query-time errors. These never occur in a validated engine except through
// a bad argument, so there is no retry story; fix the name or the target.
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrTierNotFound         = errors.New("tier not found")
	ErrUnsupportedOperation = errors.New("operation not supported in flat mode")
)
