package ai

import (
	"fmt"

	"github.com/radarclientes/radar-service/internal/domain"
)

// SystemMessage frames every generation; responses come back in pt-BR
// because the product targets Brazilian small businesses.
const SystemMessage = "Você é um consultor de marketing especializado em pequenos negócios brasileiros. Responda sempre em português do Brasil de forma clara e prática."

// ReportSystemMessage is the shorter frame used for executive reports.
const ReportSystemMessage = "Você é um consultor de marketing especializado em pequenos negócios brasileiros. Responda de forma clara e prática."

// MarketPrompt builds the prompt for a market insight request. Unknown types
// fall back to trends.
func MarketPrompt(insightType domain.InsightType, niche, city string) string {
	location := ""
	if city != "" {
		location = " em " + city
	}

	switch insightType {
	case domain.InsightComplaints:
		return fmt.Sprintf(`Analise as principais reclamações e dores dos clientes no nicho de %s%s.

Forneça:
1. As 5 principais reclamações dos clientes
2. Problemas comuns com concorrentes
3. Expectativas não atendidas

Formato: JSON com as chaves "reclamacoes", "problemas_concorrentes", "expectativas"`, niche, location)
	case domain.InsightOpportunities:
		return fmt.Sprintf(`Identifique oportunidades de negócio para o nicho de %s%s.

Forneça:
1. 3 nichos de público pouco explorados
2. 3 serviços/produtos com alta demanda e pouca oferta
3. 3 estratégias para se diferenciar da concorrência

Formato: JSON com as chaves "publicos", "gaps_mercado", "diferenciais"`, niche, location)
	default:
		return fmt.Sprintf(`Analise as principais tendências de mercado para o nicho de %s%s no Brasil.

Forneça:
1. Os 5 serviços/produtos mais procurados atualmente
2. 3 tendências emergentes
3. Oportunidades sazonais para os próximos meses

Formato: JSON com as chaves "servicos_populares", "tendencias", "oportunidades"`, niche, location)
	}
}

// StrategyPrompt builds the prompt for a strategy request. Unknown types fall
// back to campaign.
func StrategyPrompt(strategyType domain.StrategyType, niche string) string {
	switch strategyType {
	case domain.StrategyContent:
		return fmt.Sprintf(`Crie 5 ideias de conteúdo para redes sociais de um negócio no nicho de %s.

Para cada ideia inclua:
1. Tipo (Reels, Carrossel, Stories, Post)
2. Tema/Título
3. Gancho inicial (primeiras palavras)
4. Hashtags sugeridas

Formato: JSON array com as chaves "tipo", "tema", "gancho", "hashtags"`, niche)
	case domain.StrategyPromotion:
		return fmt.Sprintf(`Crie 3 estratégias promocionais para um negócio no nicho de %s.

Para cada estratégia inclua:
1. Nome da promoção
2. Mecânica (como funciona)
3. Duração sugerida
4. Resultados esperados

Formato: JSON array com as chaves "nome", "mecanica", "duracao", "resultados"`, niche)
	default:
		return fmt.Sprintf(`Crie uma campanha de marketing para um negócio no nicho de %s.

Inclua:
1. Nome criativo da campanha
2. Objetivo principal
3. Público-alvo específico
4. Oferta irresistível
5. Chamada para ação
6. Canais recomendados

Formato: JSON com as chaves "nome", "objetivo", "publico", "oferta", "cta", "canais"`, niche)
	}
}

// ReportPrompt builds the executive-report prompt from dashboard numbers.
func ReportPrompt(period domain.ReportPeriod, niche string, totalLeads, totalCampaigns, totalPages, totalVisits, totalConversions int, conversionRate float64) string {
	periodText := map[domain.ReportPeriod]string{
		domain.ReportDaily:   "do dia",
		domain.ReportWeekly:  "da semana",
		domain.ReportMonthly: "do mês",
	}[period]
	if periodText == "" {
		periodText = "semanal"
	}

	return fmt.Sprintf(`Gere um relatório executivo %s para um negócio do nicho %s.

Dados atuais:
- Total de leads: %d
- Campanhas ativas: %d
- Páginas de captura: %d
- Visitas totais: %d
- Conversões: %d
- Taxa de conversão: %.2f%%

Inclua:
1. Resumo executivo (2-3 frases)
2. Principais conquistas
3. Pontos de atenção
4. 3 recomendações práticas para a próxima semana

Use linguagem simples e direta, como se falasse com um empresário ocupado.`,
		periodText, niche, totalLeads, totalCampaigns, totalPages, totalVisits, totalConversions, conversionRate)
}
