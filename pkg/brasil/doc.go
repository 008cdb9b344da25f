// Package brasil reúne funções puras para dados no padrão brasileiro:
// extração de dígitos, máscaras (CPF, CNPJ, telefone, CEP, data),
// validação de CPF/CNPJ, DDD e telefone, e conversão de números, datas e
// valores em reais.
//
// Nenhuma função guarda estado; todas podem ser chamadas concorrentemente.
package brasil
