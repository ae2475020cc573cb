// Package lessons reúne a cola comum das lições executáveis: carregar a
// configuração, montar clientes autenticados (administrativo e de sessão) e
// formatar registros para o log.
package lessons
