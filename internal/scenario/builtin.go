package scenario

import "github.com/alexanderramin/prazo/internal/domain"

// Phase keys shared by the built-in tracks. Overrides address phases by key.
const (
	PhaseConformity         = "conformity_check"
	PhaseAdditionalElements = "additional_elements"
	PhasePublicConsultation = "public_consultation"
	PhaseTechnicalAppraisal = "technical_appraisal"
	PhasePriorHearing       = "prior_hearing"
)

// Builtin returns the statutory tracks shipped with the tool. Each call
// returns fresh values; callers may modify them freely.
func Builtin() []domain.Scenario {
	return []domain.Scenario{
		{
			Name:           "general",
			Title:          "Procedimento geral — 150 dias úteis",
			StatutoryLimit: 150,
			Phases: []domain.Phase{
				{Key: PhaseConformity, Name: "Apreciação da conformidade", Duration: 30, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhaseAdditionalElements, Name: "Pedido de elementos adicionais", Duration: 45, Unit: domain.CalendarDay, ClockEffect: domain.SuspendsBudget},
				{Key: PhasePublicConsultation, Name: "Consulta pública", Duration: 30, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhaseTechnicalAppraisal, Name: "Parecer técnico final", Duration: 40, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhasePriorHearing, Name: "Audiência prévia", Duration: 10, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
			},
		},
		{
			Name:           "industrial",
			Title:          "Regime industrial prioritário — 90 dias úteis",
			StatutoryLimit: 90,
			Phases: []domain.Phase{
				{Key: PhaseConformity, Name: "Apreciação da conformidade", Duration: 20, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhaseAdditionalElements, Name: "Pedido de elementos adicionais", Duration: 30, Unit: domain.CalendarDay, ClockEffect: domain.SuspendsBudget},
				{Key: PhasePublicConsultation, Name: "Consulta pública", Duration: 30, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhaseTechnicalAppraisal, Name: "Parecer técnico final", Duration: 20, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhasePriorHearing, Name: "Audiência prévia", Duration: 10, Unit: domain.WorkingDay, ClockEffect: domain.SuspendsBudget},
			},
		},
		{
			Name:           "recape",
			Title:          "Verificação da conformidade ambiental do projeto de execução — 50 dias úteis",
			StatutoryLimit: 50,
			Phases: []domain.Phase{
				{Key: PhaseConformity, Name: "Apreciação da conformidade", Duration: 10, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
				{Key: PhasePublicConsultation, Name: "Consulta pública", Duration: 15, Unit: domain.WorkingDay, ClockEffect: domain.ConsumesBudget},
			},
		},
	}
}
