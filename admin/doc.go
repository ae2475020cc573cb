// Package admin cuida do provisionamento administrativo que as lições fazem
// antes de qualquer operação de dados: criar e remover tabelas, declarar
// índices secundários globais e esperar o estado ACTIVE do serviço.
//
// O padrão das lições é `EnsureFresh`: se a tabela já existe de uma execução
// anterior, ela é removida e recriada do zero, para que cada lição comece de
// um estado conhecido.
//
// O pacote também gera chaves de sessão (NewSessionKey). O DynamoDB Local
// separa os dados por access key id, então uma chave recém-gerada equivale a
// um banco de dados isolado e descartável para a lição.
package admin
