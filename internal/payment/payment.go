package payment

import (
	"fmt"

	"github.com/jobmoz/job-board/internal/job"
)

const (
	PlanFree   = "free"
	PlanBronze = "bronze"
	PlanSilver = "silver"
	PlanGold   = "gold"

	Currency = "MT"
)

type Method string

const (
	MethodMPesa      Method = "M-Pesa"
	MethodEMola      Method = "e-Mola"
	MethodVisa       Method = "Visa"
	MethodMastercard Method = "Mastercard"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "completed"
	TransactionPending   TransactionStatus = "pending"
	TransactionFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"`
	Amount      string            `json:"amount"`
	Method      Method            `json:"method"`
	Description string            `json:"description"`
	Status      TransactionStatus `json:"status"`
}

type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Color       string   `json:"color"`
	Recommended bool     `json:"recommended,omitempty"`
}

type AIPricing struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type AdType string

const (
	AdSubscription AdType = "subscription"
	AdCPC          AdType = "cpc"
	AdCPM          AdType = "cpm"
)

type AdPricing struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Price   string `json:"price"`
	Type    AdType `json:"type"`
	Details string `json:"details"`
}

var plans = []Plan{
	{ID: PlanFree, Name: "Gratuito", Price: "0 MT", Duration: "Mensal", Features: []string{"3 vagas / mês", "Sem destaque", "Gestão básica"}, Color: "bg-slate-100"},
	{ID: PlanBronze, Name: "Bronze", Price: "450 MT", Duration: "Mensal (30 dias)", Features: []string{"15 vagas totais", "4 destaques básicos", "Validade: 30 dias", "Acesso a CVs"}, Color: "bg-orange-100"},
	{ID: PlanSilver, Name: "Prata", Price: "1.000 MT", Duration: "2 Meses (60 dias)", Features: []string{"40 vagas totais", "7 destaques premium", "Análise básica de CV", "Melhor posicionamento", "Validade: 60 dias"}, Color: "bg-slate-200"},
	{ID: PlanGold, Name: "Ouro", Price: "2.500 MT", Duration: "75 Dias", Features: []string{"Vagas ilimitadas", "Destaques ilimitados", "Anúncios grátis (30 dias)", "Relatórios avançados", "Suporte Prioritário"}, Color: "bg-yellow-100", Recommended: true},
}

var aiPricing = []AIPricing{
	{ID: "single", Title: "Pack Único", Price: "50 MT", Description: "1 Foto editada"},
	{ID: "pack5", Title: "Pack Económico", Price: "150 MT", Description: "5 Fotos editadas (30 MT/foto)"},
	{ID: "sub", Title: "Assinatura IA", Price: "300 MT", Description: "Fotos ilimitadas / mês"},
}

var adPricing = []AdPricing{
	{ID: "banner", Title: "Banner Topo", Price: "1.200 MT", Type: AdSubscription, Details: "Mensal"},
	{ID: "sidebar", Title: "Sidebar", Price: "800 MT", Type: AdSubscription, Details: "Mensal"},
	{ID: "footer", Title: "Rodapé", Price: "600 MT", Type: AdSubscription, Details: "Mensal"},
	{ID: "native", Title: "Anúncio Nativo", Price: "1.000 MT", Type: AdSubscription, Details: "Entre vagas (Mensal)"},
	{ID: "cpc", Title: "Custo por Clique (CPC)", Price: "5 MT", Type: AdCPC, Details: "Por clique único"},
	{ID: "cpm", Title: "CPM", Price: "80 - 150 MT", Type: AdCPM, Details: "Por 1000 impressões"},
}

var transactions = []Transaction{
	{ID: "t1", Date: "2024-05-01", Amount: "450 MT", Method: MethodMPesa, Description: "Pacote Bronze", Status: TransactionCompleted},
	{ID: "t2", Date: "2024-04-01", Amount: "150 MT", Method: MethodEMola, Description: "Pack 5 Fotos IA", Status: TransactionCompleted},
}

func Plans() []Plan {
	res := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		res[i] = p
	}
	return res
}

func PlanByID(id string) (Plan, error) {
	for _, p := range Plans() {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("plan %q not found", id)
}

// PlanToAmount returns the price of a plan in meticais.
func PlanToAmount(id string) int64 {
	p, err := PlanByID(id)
	if err != nil {
		return 0
	}
	return job.MinSalary(p.Price)
}

func AIPricingOptions() []AIPricing {
	return append([]AIPricing(nil), aiPricing...)
}

func AdPricingOptions() []AdPricing {
	return append([]AdPricing(nil), adPricing...)
}

// Transactions returns the payment history shown to companies.
func Transactions() []Transaction {
	return append([]Transaction(nil), transactions...)
}
