package inversion_test

import "math/big"

func bigOf(v int) *big.Int { return big.NewInt(int64(v)) }
