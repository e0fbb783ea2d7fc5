package util

import (
	"github.com/go-playground/validator/v10"
)

var areaTypes = map[string]struct{}{
	"retail": {}, "food": {}, "service": {}, "anchor": {}, "common": {},
	"corridor": {}, "elevator": {}, "escalator": {}, "stairs": {},
	"restroom": {}, "storage": {}, "office": {}, "parking": {}, "other": {},
}

// ValidateAreaType 校验区域类型是否为建模器支持的类型
func ValidateAreaType(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	if value == "" {
		return true
	}
	_, found := areaTypes[value]
	return found
}
