package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound 记录不存在，各存储后端统一返回该哨兵错误
var ErrNotFound = errors.New("record not found")

// translate 将 gorm 的未找到错误转换为统一哨兵
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
