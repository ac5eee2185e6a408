package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalid 记录字段校验失败（对外导出）
var ErrInvalid = errors.New("invalid record")

// DateLayout 出生日期格式
const DateLayout = "2006-01-02"

// fieldRule 单个字段的校验规则（内部使用）
type fieldRule struct {
	name     string
	value    string
	required bool
	maxLen   int
}

// checkFields 按规则逐个校验字段，返回第一个错误
func checkFields(entity string, rules ...fieldRule) error {
	for _, r := range rules {
		v := strings.TrimSpace(r.value)
		if r.required && v == "" {
			return fmt.Errorf("%w: %s.%s 不能为空", ErrInvalid, entity, r.name)
		}
		if r.maxLen > 0 && utf8.RuneCountInString(r.value) > r.maxLen {
			return fmt.Errorf("%w: %s.%s 长度超过%d", ErrInvalid, entity, r.name, r.maxLen)
		}
	}
	return nil
}
