package constants

// Templates padrão dos documentos quando o admin ainda não configurou os
// próprios nas configurações. Os placeholders são interpolados pelo cliente.
const (
	DefaultTemplateBilling = "COBRANÇA\n\n{{empresa}}\nCNPJ: {{cnpj}}\n\n" +
		"Pagador: {{pagador}}\nVeículo: {{placa}} - {{marca}} {{modelo}}\n" +
		"Valor: R$ {{valor}}\nVencimento: {{vencimento}}\n\n{{dados_bancarios}}"

	DefaultTemplateInvoice = "NOTA\n\n{{empresa}}\nCNPJ: {{cnpj}}\n\n" +
		"Referente à estadia do veículo {{placa}} - {{marca}} {{modelo}}\n" +
		"Pagador: {{pagador}}\nValor: R$ {{valor}}"
)
