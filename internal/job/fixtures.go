package job

var Provinces = []string{
	"Maputo Cidade", "Maputo Província", "Gaza", "Inhambane",
	"Sofala", "Manica", "Tete", "Zambézia", "Nampula",
	"Cabo Delgado", "Niassa",
}

var Categories = []string{
	"Tecnologia & TI", "Finanças & Contabilidade", "Engenharia",
	"Saúde", "Vendas & Marketing", "Recursos Humanos", "Administração", "Logística",
}

// MockJobs is the listing the site ships with.
var MockJobs = []Job{
	{
		ID:          "1",
		Title:       "Desenvolvedor Senior React",
		Company:     "TechMoz Solutions",
		Location:    "Maputo Cidade",
		Type:        TypeFullTime,
		SalaryRange: "80.000 - 120.000 MZN",
		PostedAt:    "2024-05-10",
		Description: "Procuramos um desenvolvedor experiente em React e TypeScript para liderar nossa equipe de frontend. O candidato ideal deve ter forte conhecimento em arquitetura de software e otimização de performance.",
		Requirements: []string{
			"5+ anos de experiência em React",
			"TypeScript avançado",
			"Experiência com Tailwind CSS",
			"Inglês fluente",
		},
		Featured:        true,
		Sector:          "Tecnologia & TI",
		ApplicantsCount: 12,
	},
	{
		ID:          "2",
		Title:       "Contabilista Sénior",
		Company:     "Banco Nacional",
		Location:    "Beira, Sofala",
		Type:        TypeFullTime,
		SalaryRange: "60.000 - 90.000 MZN",
		PostedAt:    "2024-05-12",
		Description: "Gestão de contas e auditoria interna. Responsável por garantir a conformidade com as normas fiscais moçambicanas.",
		Requirements: []string{
			"Licenciatura em Contabilidade",
			"Certificação OCAM",
			"Experiência em PHC ou Primavera",
		},
		Sector:          "Finanças & Contabilidade",
		ApplicantsCount: 8,
	},
	{
		ID:          "3",
		Title:       "Gestor de Vendas",
		Company:     "Distribuidora do Norte",
		Location:    "Nampula",
		Type:        TypePartTime,
		SalaryRange: "Comissão + Ajuda de Custo",
		PostedAt:    "2024-05-14",
		Description: "Expansão de mercado na zona norte. Procuramos alguém dinâmico e com viatura própria.",
		Requirements: []string{
			"Experiência em vendas FMCG",
			"Carta de condução",
			"Disponibilidade para viajar",
		},
		Sector:          "Vendas & Marketing",
		ApplicantsCount: 25,
	},
	{
		ID:          "4",
		Title:       "Engenheiro Civil",
		Company:     "Construções Zambeze",
		Location:    "Tete",
		Type:        TypeFullTime,
		SalaryRange: "100.000+ MZN",
		PostedAt:    "2024-05-15",
		Description: "Supervisão de obras de infraestrutura e gestão de equipas no terreno.",
		Requirements: []string{
			"Inscrição na Ordem dos Engenheiros",
			"Experiência em obras de estradas",
			"Domínio de AutoCAD",
		},
		Featured:        true,
		Sector:          "Engenharia",
		ApplicantsCount: 5,
	},
}
