package repository

import (
	"fmt"
	"strings"
)

// whereBuilder собирает WHERE-условия из необязательных параметров запроса.
// Условия записываются с плейсхолдером ?, он сразу заменяется на нумерованный $N.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) And(cond string, args ...any) {
	n := len(b.args)
	for strings.Contains(cond, "?") {
		n++
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", n), 1)
	}
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
}

// Clause возвращает готовый WHERE-фрагмент (или пустую строку) и аргументы
func (b *whereBuilder) Clause() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// Next возвращает номер следующего плейсхолдера, для LIMIT/OFFSET в хвосте запроса
func (b *whereBuilder) Next() int {
	return len(b.args) + 1
}

func likePattern(s string) string {
	return "%" + s + "%"
}
