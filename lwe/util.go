package lwe

import "math/big"

func bigFromUint64(x uint64) *big.Int {
	return big.NewInt(0).SetUint64(x)
}
