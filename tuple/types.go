package tuple

import (
	"math/big"

	"github.com/govalues/decimal"
)

// Concrete tuple families. The suffix names the component type:
// b int8, s int16, i int32, l int64, f float32, d float64, Bigd decimal,
// Bigi big integer, o any, Str string, Bo bool, c UTF-16 code unit.
type (
	Vec2b    = Vec2[int8]
	Vec2s    = Vec2[int16]
	Vec2i    = Vec2[int32]
	Vec2l    = Vec2[int64]
	Vec2f    = Vec2[float32]
	Vec2d    = Vec2[float64]
	Vec2Bigd = Vec2[decimal.Decimal]
	Vec2Bigi = Vec2[*big.Int]
	Vec2o    = Vec2[any]
	Vec2Str  = Vec2[string]
	Vec2Bo   = Vec2[bool]
	Vec2c    = Vec2[uint16]

	Vec3b    = Vec3[int8]
	Vec3s    = Vec3[int16]
	Vec3i    = Vec3[int32]
	Vec3l    = Vec3[int64]
	Vec3f    = Vec3[float32]
	Vec3d    = Vec3[float64]
	Vec3Bigd = Vec3[decimal.Decimal]
	Vec3Bigi = Vec3[*big.Int]
	Vec3o    = Vec3[any]
	Vec3Str  = Vec3[string]
	Vec3Bo   = Vec3[bool]
	Vec3c    = Vec3[uint16]

	Vec4b    = Vec4[int8]
	Vec4s    = Vec4[int16]
	Vec4i    = Vec4[int32]
	Vec4l    = Vec4[int64]
	Vec4f    = Vec4[float32]
	Vec4d    = Vec4[float64]
	Vec4Bigd = Vec4[decimal.Decimal]
	Vec4Bigi = Vec4[*big.Int]
	Vec4o    = Vec4[any]
	Vec4Str  = Vec4[string]
	Vec4Bo   = Vec4[bool]
	Vec4c    = Vec4[uint16]
)
