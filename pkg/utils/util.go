package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenHashID 生成对外展示的短码（兑换单号等），避免暴露自增ID
func GenHashID(salt string, id int) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, _ := hashids.NewWithData(hd)
	e, _ := h.Encode([]int{id})
	return e
}
