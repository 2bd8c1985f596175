package chainhash

import "github.com/efficientgo/core/errors"

// ErrAllocation is returned, wrapped, by Put when the table needed to grow and could not. The table is unchanged by the failed Put.
var ErrAllocation = errors.Newf("chainhash: cannot allocate bucket array")
