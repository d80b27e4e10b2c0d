// Package format turns a valid Rust file into dense fixed-width lines.
//
// Назначение: упаковка IR в строки ширины W, добивка строк до W за счёт
// пустых операторов, лишних скобок, пробела и хвостового комментария, вывод.
// Не делает: разбор (internal/syntax), лексинг (internal/lexer), IO с файлами.
// Зависимости: internal/ir, internal/syntax, internal/lexer, internal/observ.
package format
