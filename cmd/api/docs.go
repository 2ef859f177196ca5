package main

// @title        Nota Fiscal API
// @version      1.0
// @description  Emissão de NF-e e NFS-e: cadastro de itens, validação com numeração,
// @description  geração do XML, transmissão ao provedor configurado, cancelamento,
// @description  inutilização de faixas e impressão do DANFE.

// @contact.name  Equipe Fiscal

// @BasePath  /api/v1

// @tag.name         Notas Fiscais
// @tag.description  Ciclo de vida das notas: draft, validated, authorized, denied, canceled
// @tag.name         Configurações Fiscais
// @tag.description  Ambiente, provedor, credenciais e certificado A1 por empresa
// @tag.name         auth
// @tag.description  Login do operador e renovação do token JWT

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Token JWT obtido em /auth/login, enviado como "Bearer {token}"
